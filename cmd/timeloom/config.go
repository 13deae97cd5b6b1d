package main

import (
	"errors"
	"os"

	"timeloom/internal/config"
)

// loadConfig reads timeloom.yaml, falling back to defaults when the file
// does not exist yet. Corrupt or invalid config is fatal.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(config.DefaultPath)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
