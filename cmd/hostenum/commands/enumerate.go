package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hostenum/cmd/hostenum/handlers"
)

// bindEnumerationFlags registers the flags shared by plan and apply.
func bindEnumerationFlags(cmd *cobra.Command, opts *handlers.Options) {
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to configuration file (default: hostenum.yaml)")
	cmd.Flags().StringVarP(&opts.Pattern, "pattern", "p", "", "Range pattern, e.g. web[01:99] (overrides config)")
	cmd.Flags().StringVarP(&opts.Tag, "tag", "t", "", "Tag or label key holding the hostname (overrides config)")
	cmd.Flags().StringVar(&opts.Provider, "provider", "", "Inventory backend: hcloud or ec2 (overrides config)")
	cmd.Flags().StringArrayVarP(&opts.Filters, "filter", "f", nil, "Restrict the population, key=value (repeatable)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Report format: text or json (overrides config)")
}

// Plan returns the command that shows the rename plan without applying it.
func Plan() *cobra.Command {
	var opts handlers.Options

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show which instances would be renamed",
		Long: `Classify the instance population against the pattern and show the
rename plan without touching anything.

Examples:
  # Plan using hostenum.yaml in the current directory
  hostenum plan

  # Plan against EC2 with everything on the command line
  hostenum plan --provider ec2 --pattern web[01:99] --tag Name --filter env=production`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), opts)
		},
	}

	bindEnumerationFlags(cmd, &opts)
	return cmd
}

// Apply returns the command that renames all non-conforming instances.
func Apply() *cobra.Command {
	var opts handlers.Options
	var yes bool

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Rename non-conforming instances",
		Long: `Classify the instance population against the pattern, then write a
fresh conforming name to every instance whose tag does not match.

The whole population is classified before any tag is written, and all
fresh names are allocated in one batch, so renames never collide with
existing conforming names.

Examples:
  # Apply using hostenum.yaml, asking for confirmation
  hostenum apply

  # Apply without confirmation
  hostenum apply --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), opts, yes)
		},
	}

	bindEnumerationFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
