package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/hostenum/internal/config"
	"github.com/imamik/hostenum/internal/enumerate"
	ec2inv "github.com/imamik/hostenum/internal/platform/ec2"
	hcloudinv "github.com/imamik/hostenum/internal/platform/hcloud"
	"github.com/imamik/hostenum/internal/pattern"
)

// newInventory builds the inventory backend selected by the config.
func newInventory(ctx context.Context, cfg *config.Config) (enumerate.Inventory, error) {
	switch cfg.Provider {
	case config.ProviderHCloud:
		return hcloudinv.NewClient(cfg.HCloud.Token), nil
	case config.ProviderEC2:
		return ec2inv.NewClient(ctx, cfg.EC2.Region, cfg.EC2.AccessKey, cfg.EC2.SecretKey)
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// buildPlan lists the population and plans the renames for one batch.
func buildPlan(ctx context.Context, cfg *config.Config, inv enumerate.Inventory) (*enumerate.Plan, error) {
	desc, err := pattern.Parse(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	instances, err := inv.List(ctx, cfg.Tag, cfg.Filters)
	if err != nil {
		return nil, err
	}

	return enumerate.BuildPlan(desc, instances)
}
