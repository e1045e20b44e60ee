package handlers

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imamik/hostenum/internal/config"
	"github.com/imamik/hostenum/internal/config/wizard"
)

// Init runs the interactive wizard and writes the result to
// hostenum.yaml in the current directory.
func Init(force bool) error {
	if _, err := os.Stat(config.DefaultPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.DefaultPath)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := wizard.Run()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling configuration: %w", err)
	}

	if err := os.WriteFile(config.DefaultPath, data, 0600); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultPath, err)
	}

	fmt.Printf("Wrote %s. Set HCLOUD_TOKEN or AWS credentials, then run 'hostenum plan'.\n", config.DefaultPath)
	return nil
}
