// Package hcloud adapts the Hetzner Cloud API to the enumerate.Inventory
// boundary. The target tag is stored as a server label; filters are
// translated into a label selector.
package hcloud
