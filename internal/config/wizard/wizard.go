// Package wizard collects enumeration settings interactively for the
// init command.
package wizard

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/hostenum/internal/config"
	"github.com/imamik/hostenum/internal/pattern"
)

// ProviderOptions lists the selectable inventory backends.
var ProviderOptions = []huh.Option[string]{
	huh.NewOption("Hetzner Cloud (server labels)", config.ProviderHCloud),
	huh.NewOption("AWS EC2 (instance tags)", config.ProviderEC2),
}

// Run walks the user through the settings and returns a ready Config.
// Credentials are not collected; they stay in the environment.
func Run() (*config.Config, error) {
	cfg := config.Default()
	var filtersRaw string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Range pattern").
				Description("Prefix plus id range, e.g. web[01:99]. Leading zeros fix the padding width.").
				Value(&cfg.Pattern).
				Validate(validatePattern),
			huh.NewInput().
				Title("Tag key").
				Description("Label or tag key holding the hostname.").
				Value(&cfg.Tag).
				Validate(notEmpty),
			huh.NewSelect[string]().
				Title("Provider").
				Options(ProviderOptions...).
				Value(&cfg.Provider),
			huh.NewInput().
				Title("Filters").
				Description("Optional comma-separated key=value pairs restricting the instance population.").
				Value(&filtersRaw).
				Validate(validateFilters),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}

	filters, err := parseFilterList(filtersRaw)
	if err != nil {
		return nil, err
	}
	cfg.Filters = filters

	return cfg, nil
}

func validatePattern(s string) error {
	_, err := pattern.Parse(s)
	return err
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("value must not be empty")
	}
	return nil
}

func validateFilters(s string) error {
	_, err := parseFilterList(s)
	return err
}

func parseFilterList(s string) (map[string]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var terms []string
	for _, part := range strings.Split(s, ",") {
		terms = append(terms, strings.TrimSpace(part))
	}
	return config.ParseFilters(terms)
}
