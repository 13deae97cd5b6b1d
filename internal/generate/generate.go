// Package generate runs the report-creation flow: world description first,
// then the divergent-timeline narrative grounded on it, then a durable
// record plus a plain-text export file.
package generate

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"timeloom/internal/llm"
	"timeloom/internal/prompt"
	"timeloom/internal/store"
)

type Generator struct {
	Store     store.Store
	Backend   llm.Backend
	ExportDir string
}

type Result struct {
	ReportID         int64
	Narrative        string
	WorldDescription string
	ExportPath       string
	// ExportErr records a failed export-file write. The database record
	// stands either way; the export is a convenience copy.
	ExportErr error
}

func (g *Generator) Run(ctx context.Context, startYear int, notes string) (*Result, error) {
	seed := []store.Message{{Role: store.RoleUser, Content: prompt.WorldUserMessage}}
	world, err := g.Backend.Complete(ctx, prompt.WorldSystem(startYear, notes), seed)
	if err != nil {
		return nil, fmt.Errorf("generating world description: %w", err)
	}

	seed = []store.Message{{Role: store.RoleUser, Content: prompt.ReportUserMessage}}
	narrative, err := g.Backend.Complete(ctx, prompt.ReportSystem(startYear, world), seed)
	if err != nil {
		return nil, fmt.Errorf("generating report: %w", err)
	}

	id, err := g.Store.CreateReport(ctx, narrative, world)
	if err != nil {
		return nil, fmt.Errorf("saving report: %w", err)
	}

	result := &Result{
		ReportID:         id,
		Narrative:        narrative,
		WorldDescription: world,
		ExportPath:       ExportPath(g.ExportDir, id),
	}
	if err := os.WriteFile(result.ExportPath, []byte(narrative), 0o600); err != nil {
		result.ExportErr = fmt.Errorf("writing report export: %w", err)
	}
	return result, nil
}

// ExportPath names the companion text file for a report, deterministically
// from its id.
func ExportPath(dir string, reportID int64) string {
	return filepath.Join(dir, fmt.Sprintf("Report_%d.txt", reportID))
}

// RemoveExport deletes a report's companion file if present. Deleting a
// report cascades only to this file, never to simulations.
func RemoveExport(dir string, reportID int64) (bool, error) {
	path := ExportPath(dir, reportID)
	err := os.Remove(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("removing report export: %w", err)
	}
	return true, nil
}
