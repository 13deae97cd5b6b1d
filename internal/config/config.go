package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "timeloom.yaml"

	defaultDSN            = "sqlite://timeloom.db"
	defaultAnthropicModel = "claude-3-5-sonnet-latest"
	defaultAnthropicURL   = "https://api.anthropic.com"
	defaultOpenAIModel    = "gpt-4o-2024-11-20"
	defaultOpenAIURL      = "https://api.openai.com"
)

type Config struct {
	Version   int           `yaml:"version"`
	Database  Database      `yaml:"database"`
	Anthropic BackendConfig `yaml:"anthropic"`
	OpenAI    BackendConfig `yaml:"openai"`
	ExportDir string        `yaml:"export_dir"`
}

type Database struct {
	DSN string `yaml:"dsn"`
}

type BackendConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Default returns a config with every field but the API keys filled in.
func Default() *Config {
	cfg := &Config{Version: 1}
	applyDefaults(cfg)
	return cfg
}

// Load reads and validates the config file. A missing file is reported via
// os.IsNotExist on the wrapped error so the caller can fall back to Default
// and prompt for keys; anything else is fatal at startup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = defaultDSN
	}
	if cfg.Anthropic.Model == "" {
		cfg.Anthropic.Model = defaultAnthropicModel
	}
	if cfg.Anthropic.BaseURL == "" {
		cfg.Anthropic.BaseURL = defaultAnthropicURL
	}
	if cfg.OpenAI.Model == "" {
		cfg.OpenAI.Model = defaultOpenAIModel
	}
	if cfg.OpenAI.BaseURL == "" {
		cfg.OpenAI.BaseURL = defaultOpenAIURL
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "."
	}
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported version: %d", cfg.Version)
	}
	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return fmt.Errorf("database dsn is required")
	}
	return nil
}
