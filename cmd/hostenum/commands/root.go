// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated
// to handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the hostenum CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hostenum",
		Short: "Enumerate cloud instances with pattern-based hostnames",
		Long: `hostenum assigns stable hostnames drawn from a numeric range pattern
(e.g. web[01:99]) to cloud instances whose name tag does not already
conform. Conforming instances are left untouched; the rest receive the
next free ids in the range, padded to the pattern's width.`,
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Plan())
	cmd.AddCommand(Apply())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
