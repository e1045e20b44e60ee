package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hostenum/cmd/hostenum/handlers"
)

// Init returns the command that writes a starter configuration file.
func Init() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create hostenum.yaml interactively",
		Long: `Walk through the enumeration settings and write them to
hostenum.yaml in the current directory.

Credentials are never written to the file; supply them via HCLOUD_TOKEN
or the AWS credential chain.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Init(force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing hostenum.yaml")
	return cmd
}
