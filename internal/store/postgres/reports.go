package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"timeloom/internal/store"
)

func (c *Client) CreateReport(ctx context.Context, narrative, worldDescription string) (int64, error) {
	query := `
INSERT INTO reports (narrative, world_description)
VALUES ($1, $2)
RETURNING id
`

	var id int64
	if err := c.pool.QueryRow(ctx, query, narrative, worldDescription).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting report: %w", err)
	}
	return id, nil
}

func (c *Client) GetReport(ctx context.Context, id int64) (*store.Report, error) {
	query := `
SELECT id, narrative, world_description, created_at
FROM reports
WHERE id = $1
`

	var r store.Report
	err := c.pool.QueryRow(ctx, query, id).Scan(&r.ID, &r.Narrative, &r.WorldDescription, &r.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("report %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}
	return &r, nil
}

func (c *Client) ListReports(ctx context.Context) ([]store.ReportSummary, error) {
	query := `
SELECT id, created_at
FROM reports
ORDER BY id DESC
`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	summaries := []store.ReportSummary{}
	for rows.Next() {
		var s store.ReportSummary
		if err := rows.Scan(&s.ID, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning report summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report summaries: %w", err)
	}

	return summaries, nil
}

func (c *Client) DeleteReport(ctx context.Context, id int64) error {
	tag, err := c.pool.Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("report %d: %w", id, store.ErrNotFound)
	}
	return nil
}
