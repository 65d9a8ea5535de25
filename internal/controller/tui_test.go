package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/docgap/internal/model"
)

func TestTUI_DisplayCoverage_RunsProgramWhenOutputIsNotATerminal(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)
	_ = ui.Start(WithCoverageMode())

	var ran tea.Model
	ui.run = func(model tea.Model) error {
		ran = model
		return nil
	}

	if err := ui.DisplayCoverage(sampleCoverageReport()); err != nil {
		t.Fatalf("DisplayCoverage() error = %v", err)
	}

	gm, ok := ran.(gapModel)
	if !ok {
		t.Fatalf("program model = %T, want gapModel", ran)
	}

	if gm.mode != ModeCoverage || gm.notCovered != 3 || len(gm.entryList.Items()) != 3 {
		t.Fatalf("unexpected model state: mode=%v notCovered=%d items=%d", gm.mode, gm.notCovered, len(gm.entryList.Items()))
	}
}

func TestTUI_DisplayCoverage_PropagatesProgramError(t *testing.T) {
	ui := NewTUI(&bytes.Buffer{})
	boom := errors.New("boom")
	ui.run = func(tea.Model) error { return boom }

	if err := ui.DisplayCoverage(sampleCoverageReport()); !errors.Is(err, boom) {
		t.Fatalf("DisplayCoverage() error = %v, want %v", err, boom)
	}
}

func TestTUI_DisplayCoverage_AllCoveredPrintsOnce(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)
	ui.run = func(tea.Model) error {
		t.Fatalf("program should not run when nothing is uncovered")
		return nil
	}

	report := m.CoverageReport{Summary: m.CoverageSummary{Total: 4, Covered: 4}}
	if err := ui.DisplayCoverage(report); err != nil {
		t.Fatalf("DisplayCoverage() error = %v", err)
	}

	if !strings.Contains(buf.String(), "All parsed API signatures appear to be covered") {
		t.Fatalf("output missing covered message\n%s", buf.String())
	}
}

func TestTUI_DisplayIndex(t *testing.T) {
	var buf bytes.Buffer
	ui := NewTUI(&buf)

	err := ui.DisplayIndex(m.IndexSummary{
		Output:     "refs/api-index-generated.md",
		Repository: "Avalonia",
		Files:      2,
		Signatures: 9,
		Diff:       "-- `public int X;`\n",
		Replaced:   true,
		Removed:    []string{"src/Old.cs"},
	})
	if err != nil {
		t.Fatalf("DisplayIndex() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"docgap index", "Avalonia", "refs/api-index-generated.md", "Units removed", "Changes since previous index:"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n%s", want, output)
		}
	}
}

func TestTUI_DisplayControls(t *testing.T) {
	var buf bytes.Buffer

	err := NewTUI(&buf).DisplayControls(m.ControlsSummary{
		Output:     "references/controls",
		Repository: "Avalonia",
		Controls:   7,
		Written:    []m.Path{"references/controls/README.md"},
	})
	if err != nil {
		t.Fatalf("DisplayControls() error = %v", err)
	}

	for _, want := range []string{"docgap controls", "Avalonia", "Pages written", "references/controls"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output missing %q\n%s", want, buf.String())
		}
	}
}

func TestTUI_DisplayReport(t *testing.T) {
	var buf bytes.Buffer
	NewTUI(&buf).DisplayReport("report")

	if buf.String() != "\nreport" {
		t.Fatalf("output = %q", buf.String())
	}
}
