package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"timeloom/internal/generate"
	"timeloom/internal/store"
)

func (a *app) viewReport(ctx context.Context) {
	if !a.listReports(ctx) {
		return
	}

	id, ok := a.promptID("Enter the Report Number you want to view")
	if !ok {
		return
	}

	report, err := a.db.GetReport(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		a.cons.Errorf("Report #%d not found.", id)
		return
	}
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return
	}

	title := fmt.Sprintf("Report #%d - Created At: %s", report.ID, report.CreatedAt.Format("2006-01-02 15:04:05"))
	a.cons.Panel(title, report.Narrative)
}

func (a *app) deleteReport(ctx context.Context) {
	if !a.listReports(ctx) {
		return
	}

	id, ok := a.promptID("Enter the Report Number you want to delete")
	if !ok {
		return
	}

	confirmed, err := a.cons.Confirm(fmt.Sprintf("Are you sure you want to delete Report #%d?", id))
	if err != nil || !confirmed {
		a.cons.Warnf("Deletion cancelled.")
		return
	}

	err = a.db.DeleteReport(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		a.cons.Errorf("Report #%d not found.", id)
		return
	}
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return
	}
	a.cons.Successf("Report #%d has been deleted successfully.", id)

	// Deletion cascades only to the export file. Simulations referencing the
	// report stay behind and surface ErrNotFound on resume.
	removed, err := generate.RemoveExport(a.cfg.ExportDir, id)
	if err != nil {
		a.cons.Warnf("Could not remove export file: %v", err)
		return
	}
	if removed {
		a.cons.Successf("Deleted file %q.", generate.ExportPath(a.cfg.ExportDir, id))
	}
}

func (a *app) promptID(label string) (int64, bool) {
	input, err := a.cons.Prompt(label)
	if err != nil {
		return 0, false
	}
	id, err := strconv.ParseInt(input, 10, 64)
	if err != nil || id <= 0 {
		a.cons.Errorf("Invalid number.")
		return 0, false
	}
	return id, true
}
