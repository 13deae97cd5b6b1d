// Package session mediates between a persisted simulation record and an
// active conversation loop.
package session

import (
	"context"
	"strings"

	"timeloom/internal/store"
)

// Session is the in-memory side of a simulation: an ordered message history
// bound to one report. The history grows monotonically during a run; each
// save replaces the stored list wholesale.
type Session struct {
	SimulationID int64
	ReportID     int64
	Name         string
	Messages     []store.Message
}

// Start creates a fresh session seeded with an initial user message and
// persists it immediately. The seed embeds the report's narrative so the
// backend has grounding context without resending it every turn.
func Start(ctx context.Context, st store.Store, reportID int64, name, seed string) (*Session, error) {
	if _, err := st.GetReport(ctx, reportID); err != nil {
		return nil, err
	}

	messages := []store.Message{{Role: store.RoleUser, Content: seed}}
	id, err := st.CreateSimulation(ctx, name, messages, reportID)
	if err != nil {
		return nil, err
	}

	return &Session{SimulationID: id, ReportID: reportID, Name: name, Messages: messages}, nil
}

// Resume loads a prior session and its bound report. The simulation is
// looked up first; a missing report then fails at the report step without
// modifying the store, which is how dangling references after a report
// deletion surface.
func Resume(ctx context.Context, st store.Store, simulationID int64) (*Session, *store.Report, error) {
	sim, err := st.GetSimulation(ctx, simulationID)
	if err != nil {
		return nil, nil, err
	}

	report, err := st.GetReport(ctx, sim.ReportID)
	if err != nil {
		return nil, nil, err
	}

	s := &Session{
		SimulationID: sim.ID,
		ReportID:     sim.ReportID,
		Name:         sim.Name,
		Messages:     sim.Messages,
	}
	return s, report, nil
}

// ResumeByName resolves the canonical session for a report/purpose pair.
// Returns (nil, nil) when no such session exists yet.
func ResumeByName(ctx context.Context, st store.Store, name string, reportID int64) (*Session, error) {
	sim, err := st.FindSimulationByName(ctx, name, reportID)
	if err != nil {
		return nil, err
	}
	if sim == nil {
		return nil, nil
	}
	return &Session{
		SimulationID: sim.ID,
		ReportID:     sim.ReportID,
		Name:         sim.Name,
		Messages:     sim.Messages,
	}, nil
}

func (s *Session) Append(role, content string) {
	s.Messages = append(s.Messages, store.Message{Role: role, Content: content})
}

// Persist writes the full history back. Callers treat a failure as a
// non-fatal warning and keep chatting on the in-memory history.
func (s *Session) Persist(ctx context.Context, st store.Store) error {
	return st.UpdateSimulationMessages(ctx, s.SimulationID, s.Messages)
}

// IsExitWord reports whether input is an explicit termination signal.
// Avatar sessions additionally accept "save" via IsSaveWord.
func IsExitWord(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "exit", "quit":
		return true
	}
	return false
}

func IsSaveWord(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "save")
}
