// Package scaffold creates a fresh rota.yml in the working directory.
package scaffold

import (
	"embed"
	"fmt"
	"os"

	"github.com/rotaboard/rota/internal/config"
)

//go:embed templates/*
var templatesFS embed.FS

// ConfigFileName is the configuration file the CLI looks for.
const ConfigFileName = "rota.yml"

// Initialize writes the template rota.yml into the current directory.
// An existing file is only replaced when force is true. The written file is
// loaded back through the config package so a broken template can never
// ship silently.
func Initialize(force bool) error {
	if _, err := os.Stat(ConfigFileName); err == nil {
		if !force {
			return fmt.Errorf("%s already exists (use --force to replace it)", ConfigFileName)
		}
		fmt.Printf("⚠️  Replacing existing %s...\n", ConfigFileName)
		if err := os.Remove(ConfigFileName); err != nil {
			return fmt.Errorf("failed to remove %s: %w", ConfigFileName, err)
		}
	}

	content, err := templatesFS.ReadFile("templates/" + ConfigFileName)
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	if err := os.WriteFile(ConfigFileName, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}

	if _, err := config.Load(ConfigFileName); err != nil {
		return fmt.Errorf("generated config failed validation: %w", err)
	}

	return nil
}
