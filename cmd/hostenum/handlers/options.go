// Package handlers implements the CLI command logic: loading
// configuration, driving the enumeration core against an inventory
// backend, and rendering reports.
package handlers

import (
	"github.com/imamik/hostenum/internal/config"
)

// Options carries the flag values shared by plan and apply. Non-empty
// fields override the corresponding config file values.
type Options struct {
	ConfigPath string
	Pattern    string
	Tag        string
	Provider   string
	Filters    []string
	Output     string
}

// resolveConfig loads the configuration file, applies flag overrides,
// and validates the result.
func resolveConfig(opts Options) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Pattern != "" {
		cfg.Pattern = opts.Pattern
	}
	if opts.Tag != "" {
		cfg.Tag = opts.Tag
	}
	if opts.Provider != "" {
		cfg.Provider = opts.Provider
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if len(opts.Filters) > 0 {
		filters, err := config.ParseFilters(opts.Filters)
		if err != nil {
			return nil, err
		}
		cfg.Filters = filters
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
