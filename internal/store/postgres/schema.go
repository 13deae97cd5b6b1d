package postgres

import (
	"context"
	"fmt"
)

// BIGSERIAL ids match the sqlite AUTOINCREMENT semantics: monotonic, never
// reused after deletion. report_id carries no FK action so deleting a report
// leaves its simulations in place.
func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id                BIGSERIAL PRIMARY KEY,
			narrative         TEXT NOT NULL,
			world_description TEXT NOT NULL DEFAULT '',
			created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS simulations (
			id         BIGSERIAL PRIMARY KEY,
			name       TEXT NOT NULL,
			messages   JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			report_id  BIGINT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_report ON simulations (report_id)`,
		`CREATE INDEX IF NOT EXISTS idx_simulations_name ON simulations (name, report_id)`,
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, stmt := range ddl {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}

	return nil
}
