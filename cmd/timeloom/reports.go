package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"timeloom/internal/generate"
)

func reportsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Inspect and manage saved reports",
	}
	cmd.AddCommand(reportsListCmd())
	cmd.AddCommand(reportsShowCmd())
	cmd.AddCommand(reportsDeleteCmd())
	cmd.AddCommand(reportsExportCmd())
	return cmd
}

func reportsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved reports, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			db, closeDB, err := openConfiguredStore(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			reports, err := db.ListReports(ctx)
			if err != nil {
				return err
			}
			if len(reports) == 0 {
				fmt.Fprintln(os.Stdout, "No reports found.")
				return nil
			}
			for _, r := range reports {
				fmt.Fprintf(os.Stdout, "#%d\t%s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func reportsShowCmd() *cobra.Command {
	var world bool
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print a report's narrative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			db, closeDB, err := openConfiguredStore(ctx)
			if err != nil {
				return err
			}
			defer closeDB()

			report, err := db.GetReport(ctx, id)
			if err != nil {
				return err
			}
			if world {
				fmt.Fprintln(os.Stdout, report.WorldDescription)
				return nil
			}
			fmt.Fprintln(os.Stdout, report.Narrative)
			return nil
		},
	}
	cmd.Flags().BoolVar(&world, "world", false, "Print the world description instead of the narrative")
	return cmd
}

func reportsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a report and its export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			cfg, err := loadConfig()
			if err != nil {
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

			if err := db.DeleteReport(ctx, id); err != nil {
				return err
			}
			if _, err := generate.RemoveExport(cfg.ExportDir, id); err != nil {
				return err
			}
			cmd.Printf("Deleted report #%d.\n", id)
			return nil
		},
	}
}

func reportsExportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a report's narrative to its export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.ExportDir = dir
			}
			db, err := openStore(ctx, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close(ctx)
			if err := db.EnsureSchema(ctx); err != nil {
				return err
			}

			report, err := db.GetReport(ctx, id)
			if err != nil {
				return err
			}

			path := generate.ExportPath(cfg.ExportDir, id)
			if err := os.WriteFile(path, []byte(report.Narrative), 0o600); err != nil {
				return fmt.Errorf("writing report export: %w", err)
			}
			cmd.Printf("Wrote %s.\n", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Directory for the export file (defaults to export_dir)")
	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
