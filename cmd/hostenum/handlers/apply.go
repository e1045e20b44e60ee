package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

// Apply classifies the population and writes a fresh conforming name to
// every non-conforming instance. Without --yes it asks for confirmation
// first, which requires an interactive terminal.
func Apply(ctx context.Context, opts Options, yes bool) error {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	inv, err := newInventory(ctx, cfg)
	if err != nil {
		return err
	}

	plan, err := buildPlan(ctx, cfg, inv)
	if err != nil {
		return err
	}

	if len(plan.Changes) == 0 {
		out, err := renderReport(cfg, plan, false)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, out)
		return nil
	}

	if !yes {
		if !isatty.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("refusing to rename %d instances without confirmation: pass --yes or run interactively", len(plan.Changes))
		}

		preview, err := renderReport(cfg, plan, false)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, preview)

		var proceed bool
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Rename %d instances?", len(plan.Changes))).
			Value(&proceed)
		if err := confirm.Run(); err != nil {
			return err
		}
		if !proceed {
			fmt.Fprintln(os.Stdout, "Aborted, nothing changed.")
			return nil
		}
	}

	if err := plan.Apply(ctx, inv, cfg.Tag); err != nil {
		return err
	}

	out, err := renderReport(cfg, plan, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}
