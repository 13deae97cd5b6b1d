package sqlite

import (
	"context"
	"fmt"
)

// AUTOINCREMENT keeps ids monotonic: a deleted report's id is never handed
// out again. No FK action on simulations.report_id; deleting a report leaves
// its simulations dangling on purpose.
func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			narrative         TEXT NOT NULL,
			world_description TEXT NOT NULL DEFAULT '',
			created_at        TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS simulations (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			messages   TEXT NOT NULL DEFAULT '[]',
			created_at TEXT NOT NULL,
			report_id  INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_report ON simulations (report_id);`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_name ON simulations (name, report_id);`,
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range ddl {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}
