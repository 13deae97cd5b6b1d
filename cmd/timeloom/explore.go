package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timeloom/internal/llm"
	"timeloom/internal/prompt"
	"timeloom/internal/session"
	"timeloom/internal/store"
)

const narratorLabel = "~timeline-connection-text-console"

func (a *app) exploreAvatar(ctx context.Context) {
	a.cons.Title("Timeline Avatar Simulation")
	a.cons.Menu([]string{
		"Start a new simulation",
		"Continue an existing simulation",
	})

	choice, err := a.cons.Prompt("Choose an option")
	if err != nil {
		return
	}

	switch choice {
	case "1":
		a.exploreNew(ctx)
	case "2":
		a.exploreResume(ctx)
	default:
		a.cons.Errorf("Invalid option.")
	}
}

func (a *app) exploreNew(ctx context.Context) {
	if !a.listReports(ctx) {
		return
	}

	reportID, ok := a.promptID("Enter the Report Number you want to explore as an avatar")
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
	if report.WorldDescription == "" {
		a.cons.Warnf("World description for Report #%d not found. Proceeding without it.", reportID)
	}

	defaultName := fmt.Sprintf("Simulation_%s", time.Now().Format("20060102_150405"))
	name, err := a.cons.PromptDefault("Enter a name for your simulation", defaultName)
	if err != nil {
		return
	}

	sess, err := session.Start(ctx, a.db, reportID, name, prompt.AvatarSeedMessage)
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return
	}

	a.cons.Infof("Establishing connection to timeline...")
	system := prompt.NarratorSystem(report.WorldDescription, report.Narrative, false)
	a.exploreLoop(ctx, sess, a.anthropic, system)
}

// exploreResume continues a saved simulation against the other backend. The
// stored history is backend-agnostic, so only the wire framing of the next
// request changes.
func (a *app) exploreResume(ctx context.Context) {
	sims, err := a.db.ListSimulations(ctx)
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return
	}
	if len(sims) == 0 {
		a.cons.Warnf("No saved simulations found.")
		return
	}
	a.cons.SimulationTable(sims)

	simulationID, ok := a.promptID("Enter the Simulation ID you want to continue")
	if !ok {
		return
	}

	sess, report, err := session.Resume(ctx, a.db, simulationID)
	if errors.Is(err, store.ErrNotFound) {
		a.cons.Errorf("%v", err)
		return
	}
	if err != nil {
		a.cons.Errorf("Database error occurred: %v", err)
		return
	}

	a.cons.Infof("Resuming simulation...")
	system := prompt.NarratorSystem(report.WorldDescription, report.Narrative, true)
	a.exploreLoop(ctx, sess, a.openai, system)
}

// exploreLoop is narrator-first: the model speaks, then the user acts.
func (a *app) exploreLoop(ctx context.Context, sess *session.Session, backend llm.Backend, system string) {
	a.cons.Infof("Type 'exit' or 'quit' to end the simulation. Type 'save' to save and exit.")

	for {
		reply, err := backend.Complete(ctx, system, sess.Messages)
		if errors.Is(err, llm.ErrEmptyResponse) {
			a.cons.Warnf("No response received from the simulation. Try again.")
		} else if err != nil {
			a.cons.Errorf("Simulation failed: %v", err)
			return
		} else {
			a.cons.Speaker(narratorLabel, reply)
			sess.Append(store.RoleAssistant, reply)
			if err := sess.Persist(ctx, a.db); err != nil {
				a.cons.Warnf("Failed to save simulation: %v", err)
			}
		}

		input, err := a.cons.Prompt("You")
		if err != nil || session.IsExitWord(input) || session.IsSaveWord(input) {
			a.cons.Infof("Ending simulation.")
			return
		}

		sess.Append(store.RoleUser, input)
		if err := sess.Persist(ctx, a.db); err != nil {
			a.cons.Warnf("Failed to save simulation: %v", err)
		}
	}
}
