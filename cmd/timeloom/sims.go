package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"timeloom/internal/store"
)

func simsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sims",
		Short: "Inspect saved simulations",
	}
	cmd.AddCommand(simsListCmd())
	return cmd
}

func simsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved simulations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, closeDB, err := openConfiguredStore(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			sims, err := db.ListSimulations(ctx)
			if err != nil {
				return err
			}
			if len(sims) == 0 {
				fmt.Fprintln(os.Stdout, "No saved simulations found.")
				return nil
			}
			for _, s := range sims {
				fmt.Fprintf(os.Stdout, "#%d\t%s\t%s\treport #%d\n", s.ID, s.Name, s.CreatedAt.Format("2006-01-02 15:04:05"), s.ReportID)
			}
			return nil
		},
	}
}

// openConfiguredStore wires config loading, store opening, and schema setup
// for the scriptable subcommands.
func openConfiguredStore(ctx context.Context) (store.Store, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	db, err := openStore(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.EnsureSchema(ctx); err != nil {
		db.Close(ctx)
		return nil, nil, err
	}
	return db, func() { db.Close(ctx) }, nil
}
