package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timeloom.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config loads with defaults applied", func(t *testing.T) {
		path := writeTempConfig(t, "version: 1\nanthropic:\n  api_key: sk-anthropic-key\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Database.DSN != "sqlite://timeloom.db" {
			t.Errorf("dsn = %q, want the sqlite default", cfg.Database.DSN)
		}
		if cfg.Anthropic.APIKey != "sk-anthropic-key" {
			t.Errorf("api key = %q", cfg.Anthropic.APIKey)
		}
		if cfg.Anthropic.Model == "" || cfg.OpenAI.Model == "" {
			t.Errorf("expected default models, got %+v", cfg)
		}
		if cfg.ExportDir != "." {
			t.Errorf("export dir = %q, want .", cfg.ExportDir)
		}
	})

	t.Run("unsupported version", func(t *testing.T) {
		path := writeTempConfig(t, "version: 2\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("corrupt yaml", func(t *testing.T) {
		path := writeTempConfig(t, "version: [1\n")
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected a not-exist error, got %v", err)
		}
	})
}

func TestValidAPIKey(t *testing.T) {
	tests := []struct {
		key   string
		valid bool
	}{
		{"sk-abcdefghijklmnop", true},
		{"sk-12345678", false},
		{"key-abcdefghijklmnop", false},
		{"", false},
		{"sk-", false},
	}

	for _, tt := range tests {
		if got := ValidAPIKey(tt.key); got != tt.valid {
			t.Errorf("ValidAPIKey(%q) = %v, want %v", tt.key, got, tt.valid)
		}
	}
}

func TestEnsureKeys(t *testing.T) {
	t.Run("valid keys pass through untouched", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timeloom.yaml")
		cfg := Default()
		cfg.Anthropic.APIKey = "sk-anthropic-key"
		cfg.OpenAI.APIKey = "sk-openai-key-x"

		var out strings.Builder
		if err := EnsureKeys(cfg, path, strings.NewReader(""), &out); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("config file should not be rewritten when keys are valid")
		}
	})

	t.Run("prompts for missing keys and rewrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timeloom.yaml")
		cfg := Default()

		in := strings.NewReader("sk-anthropic-entered\nsk-openai-entered\n")
		var out strings.Builder
		if err := EnsureKeys(cfg, path, in, &out); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Anthropic.APIKey != "sk-anthropic-entered" {
			t.Errorf("anthropic key = %q", cfg.Anthropic.APIKey)
		}
		if cfg.OpenAI.APIKey != "sk-openai-entered" {
			t.Errorf("openai key = %q", cfg.OpenAI.APIKey)
		}

		reloaded, err := Load(path)
		if err != nil {
			t.Fatalf("reloading rewritten config: %v", err)
		}
		if reloaded.Anthropic.APIKey != "sk-anthropic-entered" || reloaded.OpenAI.APIKey != "sk-openai-entered" {
			t.Errorf("rewritten config = %+v", reloaded)
		}
	})

	t.Run("rejects malformed input until a valid key", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timeloom.yaml")
		cfg := Default()
		cfg.OpenAI.APIKey = "sk-openai-key-x"

		in := strings.NewReader("bogus\nsk-short\nsk-anthropic-entered\n")
		var out strings.Builder
		if err := EnsureKeys(cfg, path, in, &out); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if cfg.Anthropic.APIKey != "sk-anthropic-entered" {
			t.Errorf("anthropic key = %q", cfg.Anthropic.APIKey)
		}
	})

	t.Run("running out of input is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "timeloom.yaml")
		cfg := Default()

		if err := EnsureKeys(cfg, path, strings.NewReader("bogus\n"), &strings.Builder{}); err == nil {
			t.Fatalf("expected error")
		}
	})
}
