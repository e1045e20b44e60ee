// Package filters normalizes the user-supplied filter map into the forms
// the inventory backends expect: a Hetzner Cloud label selector string
// and EC2 tag filter terms.
package filters
