package main

import (
	"bufio"
	"context"
	"net/http"

	"github.com/spf13/cobra"

	"timeloom/internal/config"
	"timeloom/internal/console"
	"timeloom/internal/llm"
	"timeloom/internal/store"
)

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  runInteractive,
	}
}

// app carries the handles every menu operation needs: one store, one
// console, one backend per provider. No ambient globals.
type app struct {
	cfg       *config.Config
	db        store.Store
	cons      *console.Console
	anthropic llm.Backend
	openai    llm.Backend
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// One buffered reader for the whole session: the key prompts and the
	// menu loop must not race over stdin with separate buffers.
	in := bufio.NewReader(cmd.InOrStdin())
	cons := console.New(in, cmd.OutOrStdout())

	if err := config.EnsureKeys(cfg, config.DefaultPath, in, cmd.OutOrStdout()); err != nil {
		return err
	}

	db, err := openStore(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	if err := db.EnsureSchema(ctx); err != nil {
		return err
	}

	hc := &http.Client{}
	a := &app{
		cfg:  cfg,
		db:   db,
		cons: cons,
		anthropic: &llm.Anthropic{
			APIKey:      cfg.Anthropic.APIKey,
			Model:       cfg.Anthropic.Model,
			BaseURL:     cfg.Anthropic.BaseURL,
			MaxTokens:   8192,
			Temperature: 0.7,
			HTTPClient:  hc,
		},
		openai: &llm.OpenAI{
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.Model,
			BaseURL:     cfg.OpenAI.BaseURL,
			MaxTokens:   5500,
			Temperature: 0.7,
			HTTPClient:  hc,
		},
	}

	return a.menuLoop(ctx)
}

func (a *app) menuLoop(ctx context.Context) error {
	for {
		a.cons.Title("Divergent Timeline Report Generator")
		a.cons.Menu([]string{
			"Generate a new report",
			"View existing reports",
			"Delete a report",
			"Chat with Chrono about a report",
			"Explore a timeline as an avatar",
			"Exit",
		})

		choice, err := a.cons.Prompt("Choose an option")
		if err != nil {
			return nil
		}

		switch choice {
		case "1":
			a.generateReport(ctx)
		case "2":
			a.viewReport(ctx)
		case "3":
			a.deleteReport(ctx)
		case "4":
			a.chatWithChrono(ctx)
		case "5":
			a.exploreAvatar(ctx)
		case "6":
			a.cons.Infof("Goodbye!")
			return nil
		default:
			a.cons.Errorf("Invalid option.")
		}
	}
}

// listReports renders the saved-reports table. Returns false when there is
// nothing to pick from.
func (a *app) listReports(ctx context.Context) bool {
	reports, err := a.db.ListReports(ctx)
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return false
	}
	if len(reports) == 0 {
		a.cons.Warnf("No reports found.")
		return false
	}
	a.cons.ReportTable(reports)
	return true
}
