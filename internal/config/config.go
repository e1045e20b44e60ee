package config

import (
	"fmt"
	"strings"
)

// Supported inventory providers.
const (
	ProviderHCloud = "hcloud"
	ProviderEC2    = "ec2"
)

// Supported report output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultPath is the configuration file looked up when no --config flag
// is given.
const DefaultPath = "hostenum.yaml"

// Config holds all settings for one enumeration run.
type Config struct {
	// Pattern is the range pattern fresh names are drawn from,
	// e.g. "web[01:99]".
	Pattern string `yaml:"pattern"`
	// Tag is the key of the tag or label holding the hostname.
	Tag string `yaml:"tag"`
	// Provider selects the inventory backend.
	Provider string `yaml:"provider"`
	// Filters restrict the instance population; semantics depend on the
	// provider (label selector on hcloud, tag filters on EC2).
	Filters map[string]string `yaml:"filters,omitempty"`
	// Output selects the report format.
	Output string `yaml:"output,omitempty"`

	HCloud HCloudConfig `yaml:"hcloud,omitempty"`
	EC2    EC2Config    `yaml:"ec2,omitempty"`
}

// HCloudConfig holds Hetzner Cloud credentials.
type HCloudConfig struct {
	// Token is the API token. Usually supplied via HCLOUD_TOKEN rather
	// than the config file.
	Token string `yaml:"token,omitempty"`
}

// EC2Config holds AWS settings. Static keys are optional; the default
// AWS credential chain applies when they are empty.
type EC2Config struct {
	Region    string `yaml:"region,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
}

// Default returns a Config with the opinionated defaults: the Name tag
// on Hetzner Cloud, text output.
func Default() *Config {
	return &Config{
		Tag:      "Name",
		Provider: ProviderHCloud,
		Output:   OutputText,
	}
}

// ParseFilters parses repeatable key=value flag values into a filter
// map. Later duplicates win.
func ParseFilters(terms []string) (map[string]string, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	out := make(map[string]string, len(terms))
	for _, term := range terms {
		key, value, ok := strings.Cut(term, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q: expected key=value", term)
		}
		out[key] = value
	}
	return out, nil
}
