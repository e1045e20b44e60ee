// Package main is the entry point for the hostenum CLI.
//
// hostenum assigns stable hostnames drawn from a numeric range pattern
// (e.g. web[01:99]) to cloud instances whose name tag does not already
// conform, leaving conforming instances untouched.
//
// Commands: init, plan, apply, version, completion.
//
// For detailed usage information, run:
//
//	hostenum --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/hostenum/cmd/hostenum/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
