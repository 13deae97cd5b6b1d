package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"timeloom/internal/store"
)

func (c *Client) CreateReport(ctx context.Context, narrative, worldDescription string) (int64, error) {
	query := `
	INSERT INTO reports (narrative, world_description, created_at)
	VALUES (?, ?, ?)
	`

	res, err := c.db.ExecContext(ctx, query, narrative, worldDescription, timestamp())
	if err != nil {
		return 0, fmt.Errorf("inserting report: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading report id: %w", err)
	}
	return id, nil
}

func (c *Client) GetReport(ctx context.Context, id int64) (*store.Report, error) {
	query := `
	SELECT id, narrative, world_description, created_at
	FROM reports
	WHERE id = ?
	`

	var r store.Report
	var createdAt string
	err := c.db.QueryRowContext(ctx, query, id).Scan(&r.ID, &r.Narrative, &r.WorldDescription, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting report: %w", err)
	}

	r.CreatedAt, err = parseTimestamp(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing report timestamp: %w", err)
	}
	return &r, nil
}

func (c *Client) ListReports(ctx context.Context) ([]store.ReportSummary, error) {
	query := `
	SELECT id, created_at
	FROM reports
	ORDER BY id DESC
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing reports: %w", err)
	}
	defer rows.Close()

	summaries := []store.ReportSummary{}
	for rows.Next() {
		var s store.ReportSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning report summary: %w", err)
		}
		if s.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("parsing report timestamp: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating report summaries: %w", err)
	}

	return summaries, nil
}

func (c *Client) DeleteReport(ctx context.Context, id int64) error {
	res, err := c.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("report %d: %w", id, store.ErrNotFound)
	}
	return nil
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
