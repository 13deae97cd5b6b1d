package main

import (
	"context"
	"fmt"
	"strconv"

	"timeloom/internal/generate"
)

func (a *app) generateReport(ctx context.Context) {
	input, err := a.cons.Prompt("Enter the starting year for the point of divergence")
	if err != nil {
		return
	}
	startYear, err := strconv.Atoi(input)
	if err != nil {
		a.cons.Errorf("Starting year must be a valid integer.")
		return
	}

	notes, err := a.cons.Prompt("Enter any notes or changes you want to include in the simulation")
	if err != nil {
		return
	}
	if notes == "" {
		a.cons.Errorf("Notes cannot be empty.")
		return
	}

	gen := &generate.Generator{Store: a.db, Backend: a.anthropic, ExportDir: a.cfg.ExportDir}

	a.cons.Infof("Generating world description and divergent timeline report...")
	result, err := gen.Run(ctx, startYear, notes)
	if err != nil {
		a.cons.Errorf("Report generation failed: %v", err)
		return
	}

	a.cons.Panel(fmt.Sprintf("Simulation Report (Report #%d)", result.ReportID), result.Narrative)
	if result.ExportErr != nil {
		a.cons.Warnf("Report stored as #%d, but the export file could not be written: %v", result.ReportID, result.ExportErr)
		return
	}
	a.cons.Successf("The report has been saved as %q and stored in the database (Report #%d).", result.ExportPath, result.ReportID)
}
