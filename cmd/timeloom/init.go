package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timeloom/internal/config"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Scaffold a timeloom.yaml config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd)
		},
	}
}

func runInit(cmd *cobra.Command) error {
	if _, err := os.Stat(config.DefaultPath); err == nil {
		return fmt.Errorf("%s already exists", config.DefaultPath)
	}

	contents := `version: 1

database:
  dsn: sqlite://timeloom.db

anthropic:
  api_key: ""
  model: claude-3-5-sonnet-latest

openai:
  api_key: ""
  model: gpt-4o-2024-11-20

export_dir: .
`
	if err := os.WriteFile(config.DefaultPath, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", config.DefaultPath, err)
	}

	cmd.Printf("Wrote %s. Fill in your API keys, or let `timeloom run` prompt for them.\n", config.DefaultPath)
	return nil
}
