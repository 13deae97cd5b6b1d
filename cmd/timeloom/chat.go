package main

import (
	"context"
	"errors"

	"timeloom/internal/llm"
	"timeloom/internal/prompt"
	"timeloom/internal/session"
	"timeloom/internal/store"
)

func (a *app) chatWithChrono(ctx context.Context) {
	if !a.listReports(ctx) {
		return
	}

	reportID, ok := a.promptID("Enter the Report Number you want to discuss with Chrono")
	if !ok {
		return
	}

	report, err := a.db.GetReport(ctx, reportID)
	if errors.Is(err, store.ErrNotFound) {
		a.cons.Errorf("Report #%d not found.", reportID)
		return
	}
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return
	}

	// One canonical chat thread per report: resume it if it exists,
	// otherwise seed a new one with the report text.
	name := prompt.ChatSimulationName(reportID)
	sess, err := session.ResumeByName(ctx, a.db, name, reportID)
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return
	}
	if sess != nil {
		a.cons.Successf("Loaded existing chat history for Report #%d.", reportID)
	} else {
		sess, err = session.Start(ctx, a.db, reportID, name, prompt.ChatSeed(reportID, report.Narrative))
		if err != nil {
			a.cons.Errorf("Database error occurred: %v", err)
			return
		}
		a.cons.Successf("Started a new chat with Chrono for Report #%d.", reportID)
	}

	a.cons.Infof("Starting chat with Chrono about Report #%d.", reportID)
	a.cons.Infof("Type 'exit' or 'quit' to end the chat.")

	for {
		input, err := a.cons.Prompt("You")
		if err != nil || session.IsExitWord(input) {
			a.cons.Infof("Ending chat with Chrono.")
			return
		}

		sess.Append(store.RoleUser, input)

		reply, err := a.anthropic.Complete(ctx, prompt.ChronoSystem, sess.Messages)
		if errors.Is(err, llm.ErrEmptyResponse) {
			a.cons.Warnf("No response received from Chrono. Try again.")
			continue
		}
		if err != nil {
			a.cons.Errorf("Chat failed: %v", err)
			return
		}

		a.cons.Speaker("Chrono", reply)
		sess.Append(store.RoleAssistant, reply)

		if err := sess.Persist(ctx, a.db); err != nil {
			// Non-fatal: the in-memory conversation continues.
			a.cons.Warnf("Failed to save chat history: %v", err)
		}
	}
}
