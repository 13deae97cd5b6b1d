package mcp

import (
	"context"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"timeloom/internal/store"
)

type GetReportInput struct {
	ID int64 `json:"id" jsonschema:"report id"`
}

type ListReportsInput struct{}

type GetSimulationInput struct {
	ID int64 `json:"id" jsonschema:"simulation id"`
}

type ListSimulationsInput struct{}

type ReportOutput struct {
	ID               int64  `json:"id"`
	Narrative        string `json:"narrative"`
	WorldDescription string `json:"world_description"`
	CreatedAt        string `json:"created_at"`
}

type ReportSummaryOutput struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
}

type ListReportsOutput struct {
	Reports []ReportSummaryOutput `json:"reports"`
}

type MessageOutput struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type SimulationOutput struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	Messages  []MessageOutput `json:"messages"`
	CreatedAt string          `json:"created_at"`
	ReportID  int64           `json:"report_id"`
}

type SimulationSummaryOutput struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	ReportID  int64  `json:"report_id"`
}

type ListSimulationsOutput struct {
	Simulations []SimulationSummaryOutput `json:"simulations"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_reports",
		Description: "List saved divergent-timeline reports, newest first",
	}, s.handleListReports)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_report",
		Description: "Retrieve a report's narrative and world description",
	}, s.handleGetReport)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_simulations",
		Description: "List saved simulations, newest first",
	}, s.handleListSimulations)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_simulation",
		Description: "Retrieve a simulation's full message history",
	}, s.handleGetSimulation)
}

func (s *Server) handleListReports(ctx context.Context, req *sdk.CallToolRequest, input ListReportsInput) (*sdk.CallToolResult, ListReportsOutput, error) {
	reports, err := s.db.ListReports(ctx)
	if err != nil {
		return nil, ListReportsOutput{}, err
	}

	output := make([]ReportSummaryOutput, 0, len(reports))
	for _, r := range reports {
		output = append(output, ReportSummaryOutput{ID: r.ID, CreatedAt: r.CreatedAt.Format(timeFormat)})
	}
	return nil, ListReportsOutput{Reports: output}, nil
}

func (s *Server) handleGetReport(ctx context.Context, req *sdk.CallToolRequest, input GetReportInput) (*sdk.CallToolResult, ReportOutput, error) {
	if input.ID == 0 {
		return nil, ReportOutput{}, fmt.Errorf("id is required")
	}
	report, err := s.db.GetReport(ctx, input.ID)
	if err != nil {
		return nil, ReportOutput{}, err
	}
	return nil, ReportOutput{
		ID:               report.ID,
		Narrative:        report.Narrative,
		WorldDescription: report.WorldDescription,
		CreatedAt:        report.CreatedAt.Format(timeFormat),
	}, nil
}

func (s *Server) handleListSimulations(ctx context.Context, req *sdk.CallToolRequest, input ListSimulationsInput) (*sdk.CallToolResult, ListSimulationsOutput, error) {
	sims, err := s.db.ListSimulations(ctx)
	if err != nil {
		return nil, ListSimulationsOutput{}, err
	}

	output := make([]SimulationSummaryOutput, 0, len(sims))
	for _, sim := range sims {
		output = append(output, SimulationSummaryOutput{
			ID:        sim.ID,
			Name:      sim.Name,
			CreatedAt: sim.CreatedAt.Format(timeFormat),
			ReportID:  sim.ReportID,
		})
	}
	return nil, ListSimulationsOutput{Simulations: output}, nil
}

func (s *Server) handleGetSimulation(ctx context.Context, req *sdk.CallToolRequest, input GetSimulationInput) (*sdk.CallToolResult, SimulationOutput, error) {
	if input.ID == 0 {
		return nil, SimulationOutput{}, fmt.Errorf("id is required")
	}
	sim, err := s.db.GetSimulation(ctx, input.ID)
	if err != nil {
		return nil, SimulationOutput{}, err
	}
	return nil, simulationOutput(sim), nil
}

const timeFormat = "2006-01-02T15:04:05Z07:00"

func simulationOutput(sim *store.Simulation) SimulationOutput {
	messages := make([]MessageOutput, 0, len(sim.Messages))
	for _, m := range sim.Messages {
		messages = append(messages, MessageOutput{Role: m.Role, Content: m.Content})
	}
	return SimulationOutput{
		ID:        sim.ID,
		Name:      sim.Name,
		Messages:  messages,
		CreatedAt: sim.CreatedAt.Format(timeFormat),
		ReportID:  sim.ReportID,
	}
}
