package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// config holds the wrapper's settings. Values come from defaults, then the
// config file, then command-line flags.
type config struct {
	// Format is the printf verb applied to results.
	Format string `json:"format"`
	// Echo prints the postfix notation alongside each result.
	Echo bool `json:"echo"`
	// Single accepts a bare digit as an expression.
	Single bool `json:"single"`
	// Prompt is the input prompt of the interactive calculator.
	Prompt string `json:"prompt"`
}

func defaultConfig() config {
	return config{
		Format: "%g",
		Prompt: "> ",
	}
}

// loadConfig reads settings from name. With an empty name it falls back to
// $CALCULATOR_CONFIG and then calculator/config.json under the user config
// directory; in the fallback cases a missing file yields the defaults.
func loadConfig(name string) (config, error) {
	cfg := defaultConfig()
	explicit := name != ""
	if name == "" {
		name = os.Getenv("CALCULATOR_CONFIG")
	}
	if name == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		name = filepath.Join(dir, "calculator", "config.json")
	}
	b, err := os.ReadFile(name)
	switch {
	case err == nil: // do nothing
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return cfg, nil
	default:
		return cfg, fmt.Errorf("loading config: %w", err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", name, err)
	}
	return cfg, nil
}
