package store

import "time"

// Message roles. The store keeps conversation history backend-agnostic: plain
// role/content pairs, translated to each provider's wire shape at call time.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Report is a generated world description and divergent-timeline narrative.
// Immutable once created, except for deletion.
type Report struct {
	ID               int64
	Narrative        string
	WorldDescription string
	CreatedAt        time.Time
}

type ReportSummary struct {
	ID        int64
	CreatedAt time.Time
}

// Simulation is a named, persisted message history bound to one report.
// CreatedAt tracks last modification: every full-replace save refreshes it.
type Simulation struct {
	ID        int64
	Name      string
	Messages  []Message
	CreatedAt time.Time
	ReportID  int64
}

type SimulationSummary struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	ReportID  int64
}
