// Package ec2 adapts the AWS EC2 API to the enumerate.Inventory
// boundary. Filters are translated into DescribeInstances tag filters
// and renames are written with CreateTags.
package ec2
