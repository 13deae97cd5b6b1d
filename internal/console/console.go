// Package console renders the interactive surface: prompts, panels, tables,
// and status lines on one terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"timeloom/internal/store"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	speakerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	userStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

func (c *Console) Title(s string) {
	fmt.Fprintf(c.out, "\n%s\n\n", titleStyle.Render(s))
}

func (c *Console) Menu(items []string) {
	for i, item := range items {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, item)
	}
}

func (c *Console) Panel(title, body string) {
	fmt.Fprintln(c.out, infoStyle.Render(title))
	fmt.Fprintln(c.out, panelStyle.Render(body))
}

func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintln(c.out, errorStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintln(c.out, warnStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Successf(format string, args ...any) {
	fmt.Fprintln(c.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) Infof(format string, args ...any) {
	fmt.Fprintln(c.out, infoStyle.Render(fmt.Sprintf(format, args...)))
}

// Speaker prints one conversation turn with a styled name label.
func (c *Console) Speaker(name, text string) {
	fmt.Fprintf(c.out, "%s: %s\n\n", speakerStyle.Render(name), text)
}

// Prompt reads one line of input. io.EOF propagates so callers can treat a
// closed terminal as an exit.
func (c *Console) Prompt(label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", userStyle.Render(label))
	line, err := c.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return trimLine(line), nil
}

func (c *Console) PromptDefault(label, fallback string) (string, error) {
	input, err := c.Prompt(fmt.Sprintf("%s [%s]", label, fallback))
	if err != nil {
		return "", err
	}
	if input == "" {
		return fallback, nil
	}
	return input, nil
}

func (c *Console) Confirm(label string) (bool, error) {
	input, err := c.Prompt(label + " [y/N]")
	if err != nil {
		return false, err
	}
	return input == "y" || input == "Y" || input == "yes", nil
}

func (c *Console) ReportTable(reports []store.ReportSummary) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Report", "Created At")
	for _, r := range reports {
		t.Row(strconv.FormatInt(r.ID, 10), r.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(c.out, t.String())
}

func (c *Console) SimulationTable(sims []store.SimulationSummary) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Simulation", "Name", "Created At", "Report")
	for _, s := range sims {
		t.Row(
			strconv.FormatInt(s.ID, 10),
			s.Name,
			s.CreatedAt.Format("2006-01-02 15:04:05"),
			strconv.FormatInt(s.ReportID, 10),
		)
	}
	fmt.Fprintln(c.out, t.String())
}

func trimLine(line string) string {
	for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
		line = line[:len(line)-1]
	}
	return line
}
