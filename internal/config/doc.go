// Package config loads and validates the hostenum configuration file.
//
// Settings come from hostenum.yaml, overridden by environment variables
// for credentials and finally by command-line flags in the handlers.
package config
