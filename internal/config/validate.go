package config

import (
	"fmt"
	"strings"

	"github.com/imamik/hostenum/internal/pattern"
)

// Validate checks the configuration and returns a single error listing
// every problem found.
func (c *Config) Validate() error {
	var problems []string

	if c.Pattern == "" {
		problems = append(problems, "pattern is required (e.g. web[01:99])")
	} else if _, err := pattern.Parse(c.Pattern); err != nil {
		problems = append(problems, err.Error())
	}

	if c.Tag == "" {
		problems = append(problems, "tag is required")
	}

	switch c.Provider {
	case ProviderHCloud:
		if c.HCloud.Token == "" {
			problems = append(problems, "hcloud token is required (set HCLOUD_TOKEN)")
		}
	case ProviderEC2:
		// Region and credentials may come from the AWS default chain.
	default:
		problems = append(problems, fmt.Sprintf("unknown provider %q: must be %s or %s", c.Provider, ProviderHCloud, ProviderEC2))
	}

	switch c.Output {
	case OutputText, OutputJSON:
	default:
		problems = append(problems, fmt.Sprintf("unknown output %q: must be %s or %s", c.Output, OutputText, OutputJSON))
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("invalid configuration:\n  - %s", strings.Join(problems, "\n  - "))
}
