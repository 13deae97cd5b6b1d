package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a referenced report or simulation does not
// exist. Callers branch on it with errors.Is; every other store error is a
// storage fault wrapped with operation context.
var ErrNotFound = errors.New("not found")

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	CreateReport(ctx context.Context, narrative, worldDescription string) (int64, error)
	GetReport(ctx context.Context, id int64) (*Report, error)
	ListReports(ctx context.Context) ([]ReportSummary, error)
	DeleteReport(ctx context.Context, id int64) error

	CreateSimulation(ctx context.Context, name string, messages []Message, reportID int64) (int64, error)
	UpdateSimulationMessages(ctx context.Context, id int64, messages []Message) error
	GetSimulation(ctx context.Context, id int64) (*Simulation, error)
	FindSimulationByName(ctx context.Context, name string, reportID int64) (*Simulation, error)
	ListSimulations(ctx context.Context) ([]SimulationSummary, error)
}
