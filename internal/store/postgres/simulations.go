package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"timeloom/internal/store"
)

func (c *Client) CreateSimulation(ctx context.Context, name string, messages []store.Message, reportID int64) (int64, error) {
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return 0, fmt.Errorf("marshaling messages: %w", err)
	}

	query := `
INSERT INTO simulations (name, messages, report_id)
VALUES ($1, $2, $3)
RETURNING id
`

	var id int64
	if err := c.pool.QueryRow(ctx, query, name, messagesJSON, reportID).Scan(&id); err != nil {
		return 0, fmt.Errorf("inserting simulation: %w", err)
	}
	return id, nil
}

func (c *Client) UpdateSimulationMessages(ctx context.Context, id int64, messages []store.Message) error {
	messagesJSON, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("marshaling messages: %w", err)
	}

	query := `
UPDATE simulations
SET messages = $1, created_at = now()
WHERE id = $2
`

	tag, err := c.pool.Exec(ctx, query, messagesJSON, id)
	if err != nil {
		return fmt.Errorf("updating simulation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("simulation %d: %w", id, store.ErrNotFound)
	}
	return nil
}

func (c *Client) GetSimulation(ctx context.Context, id int64) (*store.Simulation, error) {
	query := `
SELECT id, name, messages, created_at, report_id
FROM simulations
WHERE id = $1
`

	sim, err := c.scanSimulation(c.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("simulation %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("getting simulation: %w", err)
	}
	return sim, nil
}

func (c *Client) FindSimulationByName(ctx context.Context, name string, reportID int64) (*store.Simulation, error) {
	query := `
SELECT id, name, messages, created_at, report_id
FROM simulations
WHERE name = $1 AND report_id = $2
ORDER BY id DESC
LIMIT 1
`

	sim, err := c.scanSimulation(c.pool.QueryRow(ctx, query, name, reportID))
	if errors.Is(err, pgx.ErrNoRows) {
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

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing simulations: %w", err)
	}
	defer rows.Close()

	summaries := []store.SimulationSummary{}
	for rows.Next() {
		var s store.SimulationSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.ReportID); err != nil {
			return nil, fmt.Errorf("scanning simulation summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating simulation summaries: %w", err)
	}

	return summaries, nil
}

func (c *Client) scanSimulation(row pgx.Row) (*store.Simulation, error) {
	var sim store.Simulation
	var messagesJSON []byte
	if err := row.Scan(&sim.ID, &sim.Name, &messagesJSON, &sim.CreatedAt, &sim.ReportID); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(messagesJSON, &sim.Messages); err != nil {
		return nil, fmt.Errorf("unmarshaling messages: %w", err)
	}
	if sim.Messages == nil {
		sim.Messages = []store.Message{}
	}
	return &sim, nil
}
