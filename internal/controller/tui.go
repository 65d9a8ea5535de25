package controller

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/docgap/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	mode   StartMode
	run    func(tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.run = t.runProgram

	return t
}

// Start initializes the UI.
func (t *TUI) Start(options ...StartOption) error {
	t.mode = applyStartOptions(options).mode

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close() {}

// Wait returns once the interactive program, if any, has exited. Programs
// run synchronously inside the Display calls.
func (t *TUI) Wait() {}

// DisplayIndex renders the index summary as a bordered panel.
func (t *TUI) DisplayIndex(summary m.IndexSummary) error {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	row := func(label string, value any) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
	}

	rows := []string{
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("docgap index"),
		"",
		row("Repository", summary.Repository),
		row("Files matched", summary.Files),
		row("Units with signatures", summary.Units),
		row("Signatures", summary.Signatures),
		row("Skipped", len(summary.Skipped)),
	}

	if summary.Replaced {
		rows = append(rows,
			row("Units changed", len(summary.Changed)),
			row("Units removed", len(summary.Removed)),
			row("Units unchanged", summary.Unchanged))
	}

	rows = append(rows, row("Output", summary.Output))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	_, err := fmt.Fprintln(t.output, panel)
	if err != nil {
		return err
	}

	if summary.Diff != "" {
		_, err = fmt.Fprintf(t.output, "\nChanges since previous index:\n%s", summary.Diff)
	}

	return err
}

// DisplayControls renders the control reference summary as a bordered panel.
func (t *TUI) DisplayControls(summary m.ControlsSummary) error {
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(22)
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

	row := func(label string, value any) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("docgap controls"),
			"",
			row("Repository", summary.Repository),
			row("Files matched", summary.Files),
			row("Class types", summary.Types),
			row("Controls", summary.Controls),
			row("Skipped", len(summary.Skipped)),
			row("Pages written", len(summary.Written)),
			row("Output", summary.Output),
		))

	_, err := fmt.Fprintln(t.output, panel)

	return err
}

// DisplayCoverage shows the uncovered entries in a filterable list. Short
// results are printed once instead of taking over the screen.
func (t *TUI) DisplayCoverage(report m.CoverageReport) error {
	model := newGapModel().handleCoverageMsg(coverageMsg{report: report, mode: t.mode})

	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if model.notCovered == 0 || model.fits() {
		_, err := fmt.Fprintln(t.output, model.View())

		return err
	}

	return t.run(model)
}

// DisplayReport prints the full markdown report.
func (t *TUI) DisplayReport(markdown string) {
	_, _ = fmt.Fprintf(t.output, "\n%s", markdown)
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
