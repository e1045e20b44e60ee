package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration from path. An empty path falls back to
// DefaultPath; if that default file does not exist, Load returns the
// defaults so flags alone can drive a run. An explicitly given path must
// exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// No config file is fine, flags must fill in the rest.
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv overrides credentials and region from the environment. The
// environment wins over the config file so tokens stay out of YAML.
func applyEnv(cfg *Config) {
	if token := os.Getenv("HCLOUD_TOKEN"); token != "" {
		cfg.HCloud.Token = token
	}
	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.EC2.Region = region
	} else if region := os.Getenv("AWS_DEFAULT_REGION"); region != "" {
		cfg.EC2.Region = region
	}
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		cfg.EC2.AccessKey = key
	}
	if secret := os.Getenv("AWS_SECRET_ACCESS_KEY"); secret != "" {
		cfg.EC2.SecretKey = secret
	}
}
