package config

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ValidAPIKey applies the fixed heuristic both providers share: an "sk-"
// prefix and more than ten characters.
func ValidAPIKey(key string) bool {
	return strings.HasPrefix(key, "sk-") && len(key) > 10
}

// EnsureKeys prompts for any missing or malformed API key and rewrites the
// config file once both pass the heuristic. Prompting loops until a
// well-formed key is entered; running out of input is a config error.
func EnsureKeys(cfg *Config, path string, in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)

	changed := false
	for _, entry := range []struct {
		label string
		key   *string
	}{
		{"Anthropic", &cfg.Anthropic.APIKey},
		{"OpenAI", &cfg.OpenAI.APIKey},
	} {
		if ValidAPIKey(*entry.key) {
			fmt.Fprintf(out, "%s API key loaded.\n", entry.label)
			continue
		}
		if *entry.key != "" {
			fmt.Fprintf(out, "Invalid %s API key format in config.\n", entry.label)
		}

		key, err := promptKey(reader, out, entry.label)
		if err != nil {
			return err
		}
		*entry.key = key
		changed = true
	}

	if !changed {
		return nil
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(out, "API keys saved to %q.\n", path)
	return nil
}

func promptKey(reader *bufio.Reader, out io.Writer, label string) (string, error) {
	for {
		fmt.Fprintf(out, "Enter your %s API key (sk-...): ", label)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return "", fmt.Errorf("reading %s API key: %w", label, err)
		}
		key := strings.TrimSpace(line)
		if ValidAPIKey(key) {
			return key, nil
		}
		fmt.Fprintln(out, "Invalid API key format. It should start with 'sk-' and be longer than 10 characters.")
	}
}
