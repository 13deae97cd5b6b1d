package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"timeloom/internal/store"
)

func (c *Client) CreateSimulation(ctx context.Context, name string, messages []store.Message, reportID int64) (int64, error) {
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return 0, fmt.Errorf("marshaling messages: %w", err)
	}

	query := `
	INSERT INTO simulations (name, messages, created_at, report_id)
	VALUES (?, ?, ?, ?)
	`

	res, err := c.db.ExecContext(ctx, query, name, messagesJSON, timestamp(), reportID)
	if err != nil {
		return 0, fmt.Errorf("inserting simulation: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading simulation id: %w", err)
	}
	return id, nil
}

// UpdateSimulationMessages replaces the whole message list and refreshes the
// last-modified timestamp. Saves are idempotent full replaces, not appends.
func (c *Client) UpdateSimulationMessages(ctx context.Context, id int64, messages []store.Message) error {
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshaling messages: %w", err)
	}

	query := `
	UPDATE simulations
	SET messages = ?, created_at = ?
	WHERE id = ?
	`

	res, err := c.db.ExecContext(ctx, query, messagesJSON, timestamp(), id)
	if err != nil {
		return fmt.Errorf("updating simulation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("simulation %d: %w", id, store.ErrNotFound)
	}
	return nil
}

func (c *Client) GetSimulation(ctx context.Context, id int64) (*store.Simulation, error) {
	query := `
	SELECT id, name, messages, created_at, report_id
	FROM simulations
	WHERE id = ?
	`

	sim, err := c.scanSimulation(c.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("simulation %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting simulation: %w", err)
	}
	return sim, nil
}

// FindSimulationByName resolves the canonical session bound to a report and
// purpose, e.g. the single ongoing chat thread per report. Absence is an
// expected branch for resume-or-create, so it returns (nil, nil) on no match.
func (c *Client) FindSimulationByName(ctx context.Context, name string, reportID int64) (*store.Simulation, error) {
	query := `
	SELECT id, name, messages, created_at, report_id
	FROM simulations
	WHERE name = ? AND report_id = ?
	ORDER BY id DESC
	LIMIT 1
	`

	sim, err := c.scanSimulation(c.db.QueryRowContext(ctx, query, name, reportID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding simulation by name: %w", err)
	}
	return sim, nil
}

func (c *Client) ListSimulations(ctx context.Context) ([]store.SimulationSummary, error) {
	query := `
	SELECT id, name, created_at, report_id
	FROM simulations
	ORDER BY id DESC
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing simulations: %w", err)
	}
	defer rows.Close()

	summaries := []store.SimulationSummary{}
	for rows.Next() {
		var s store.SimulationSummary
		var createdAt string
		if err := rows.Scan(&s.ID, &s.Name, &createdAt, &s.ReportID); err != nil {
			return nil, fmt.Errorf("scanning simulation summary: %w", err)
		}
		if s.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, fmt.Errorf("parsing simulation timestamp: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating simulation summaries: %w", err)
	}

	return summaries, nil
}

func (c *Client) scanSimulation(row *sql.Row) (*store.Simulation, error) {
	var sim store.Simulation
	var messagesJSON []byte
	var createdAt string
	if err := row.Scan(&sim.ID, &sim.Name, &messagesJSON, &createdAt, &sim.ReportID); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(messagesJSON, &sim.Messages); err != nil {
		return nil, fmt.Errorf("unmarshaling messages: %w", err)
	}
	if sim.Messages == nil {
		sim.Messages = []store.Message{}
	}

	var err error
	if sim.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing simulation timestamp: %w", err)
	}
	return &sim, nil
}
