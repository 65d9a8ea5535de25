package controller

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/docgap/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.mode = applyStartOptions(options).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {}

// DisplayIndex prints the index summary and the signature diff, if any.
func (s *SimpleUI) DisplayIndex(summary m.IndexSummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	table.Append([]string{"Repository", summary.Repository})
	table.Append([]string{"Files matched", fmt.Sprintf("%d", summary.Files)})
	table.Append([]string{"Units with signatures", fmt.Sprintf("%d", summary.Units)})
	table.Append([]string{"Signatures", fmt.Sprintf("%d", summary.Signatures)})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", len(summary.Skipped))})

	if summary.Replaced {
		table.Append([]string{"Units changed", fmt.Sprintf("%d", len(summary.Changed))})
		table.Append([]string{"Units removed", fmt.Sprintf("%d", len(summary.Removed))})
		table.Append([]string{"Units unchanged", fmt.Sprintf("%d", summary.Unchanged)})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	if summary.Diff != "" {
		s.printf("\nChanges since previous index:\n%s", summary.Diff)
	}

	s.printf("Wrote %s (%d files, %d signatures)\n", summary.Output, summary.Files, summary.Signatures)

	return nil
}

// DisplayControls prints the control reference summary and the pages
// written.
func (s *SimpleUI) DisplayControls(summary m.ControlsSummary) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Field", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	table.Append([]string{"Repository", summary.Repository})
	table.Append([]string{"Files matched", fmt.Sprintf("%d", summary.Files)})
	table.Append([]string{"Class types", fmt.Sprintf("%d", summary.Types)})
	table.Append([]string{"Controls", fmt.Sprintf("%d", summary.Controls)})
	table.Append([]string{"Skipped", fmt.Sprintf("%d", len(summary.Skipped))})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	for _, path := range summary.Written {
		s.printf("  %s\n", path)
	}

	s.printf("Wrote %d pages to %s\n", len(summary.Written), summary.Output)

	return nil
}

// DisplayCoverage prints a table of uncovered entries per source unit and
// the one-line summary.
func (s *SimpleUI) DisplayCoverage(report m.CoverageReport) error {
	groups := report.UncoveredBySource()

	sources := make([]string, 0, len(groups))
	for source := range groups {
		sources = append(sources, source)
	}

	sort.Strings(sources)

	if len(sources) > 0 {
		var tableBuffer bytes.Buffer

		table := tablewriter.NewWriter(&tableBuffer)
		table.SetHeader([]string{"Source", "Not covered"})
		table.SetBorder(false)
		table.SetCenterSeparator("")
		table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

		for _, source := range sources {
			table.Append([]string{source, fmt.Sprintf("%d", len(groups[source]))})
		}

		table.SetFooter([]string{
			fmt.Sprintf("Total Files %d", len(sources)),
			fmt.Sprintf("%d", report.Summary.NotCovered),
		})

		table.Render()
		s.printf("\n%s", tableBuffer.String())
	}

	s.printf("Parsed %d API signatures; covered %d; not covered %d.\n",
		report.Summary.Total, report.Summary.Covered, report.Summary.NotCovered)

	if report.Output != "" && s.mode != ModeView {
		s.printf("Report written to: %s\n", report.Output)
	}

	return nil
}

// DisplayReport prints the full markdown report.
func (s *SimpleUI) DisplayReport(markdown string) {
	s.printf("\n%s", markdown)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
