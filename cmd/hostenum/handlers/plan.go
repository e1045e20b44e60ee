package handlers

import (
	"context"
	"fmt"
	"os"
)

// Plan loads the configuration, classifies the population, and prints
// the rename plan without touching anything.
func Plan(ctx context.Context, opts Options) error {
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

	out, err := renderReport(cfg, plan, false)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, out)
	return nil
}
