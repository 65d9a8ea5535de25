package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

func TestAnimateScroll_Edges(t *testing.T) {
	if got := animateScroll("hello", 0, 0); got != "" {
		t.Fatalf("animateScroll width 0 = %q, want empty", got)
	}

	if got := animateScroll("hi", 5, 0); got != "hi" {
		t.Fatalf("animateScroll short text = %q, want hi", got)
	}

	if got := animateScroll("abcdef", 3, 0); got != "ab…" {
		t.Fatalf("animateScroll pause = %q, want ab…", got)
	}

	got := animateScroll("abcdef", 3, 10)
	if got == "ab…" || len([]rune(got)) != 3 {
		t.Fatalf("animateScroll scrolled = %q, want len 3 and not truncated", got)
	}
}

func TestTruncateToWidth(t *testing.T) {
	if got := truncateToWidth("hello", 0); got != "" {
		t.Fatalf("truncateToWidth width 0 = %q, want empty", got)
	}

	if got := truncateToWidth("hello", 10); got != "hello" {
		t.Fatalf("truncateToWidth no truncation = %q", got)
	}

	if got := truncateToWidth("hello", 1); got != "…" {
		t.Fatalf("truncateToWidth width 1 = %q, want ellipsis", got)
	}

	if got := truncateToWidth("hello", 2); got != "h…" {
		t.Fatalf("truncateToWidth width 2 = %q, want h…", got)
	}
}

func TestGapModel_HandleCoverageMsgAndView(t *testing.T) {
	gm := newGapModel()
	if got := gm.View(); got != "Loading coverage results…\n" {
		t.Fatalf("View() before render = %q", got)
	}

	gm = gm.handleCoverageMsg(coverageMsg{report: sampleCoverageReport(), mode: ModeView})
	if !gm.rendered || gm.total != 10 || gm.covered != 7 || gm.notCovered != 3 || gm.sources != 2 {
		t.Fatalf("handleCoverageMsg did not set totals or rendered")
	}

	if gm.lastSelected != 0 {
		t.Fatalf("lastSelected = %d, want 0", gm.lastSelected)
	}

	first, ok := gm.selected()
	if !ok || first.source != "src/App.cs" {
		t.Fatalf("first selected entry = %+v, want src/App.cs", first)
	}

	gm.width = 100
	gm.height = 30
	view := gm.View()
	for _, want := range []string{"docgap view", "Not covered", "public int Id;", "src/App.cs"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q\n%s", want, view)
		}
	}
}

func TestGapModel_Fits(t *testing.T) {
	gm := newGapModel().handleCoverageMsg(coverageMsg{report: sampleCoverageReport()})

	if gm.fits() {
		t.Fatalf("fits() without a known height should be false")
	}

	gm.height = 40
	if !gm.fits() {
		t.Fatalf("fits() = false for 3 entries on 40 rows")
	}
}

func TestGapModel_Lifecycle(t *testing.T) {
	model := newGapModel()

	cmd := model.Init()
	if cmd == nil {
		t.Fatalf("Init() returned nil")
	}

	if _, ok := cmd().(tickMsg); !ok {
		t.Fatalf("Init() cmd did not return tickMsg")
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model = updated.(gapModel)

	updated, _ = model.Update(coverageMsg{report: sampleCoverageReport(), mode: ModeCoverage})
	model = updated.(gapModel)

	updated, cmd = model.Update(tickMsg(time.Now()))
	model = updated.(gapModel)
	if cmd == nil {
		t.Fatalf("Update tick did not return cmd")
	}

	if model.animOffset != 1 {
		t.Fatalf("animOffset = %d, want 1", model.animOffset)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = updated.(gapModel)
	if model.lastSelected != 1 || model.animOffset != 0 {
		t.Fatalf("selection change did not reset animation: lastSelected=%d animOffset=%d", model.lastSelected, model.animOffset)
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("Quit key did not return tea.Quit")
	}
}

func TestGapDelegate_Render(t *testing.T) {
	gm := newGapModel().handleCoverageMsg(coverageMsg{report: sampleCoverageReport()})

	var buf bytes.Buffer
	gapDelegate{}.Render(&buf, gm.entryList, 1, gm.entryList.Items()[1])

	if !strings.Contains(buf.String(), "method") || !strings.Contains(buf.String(), "public void Hide() {") {
		t.Fatalf("Render() = %q", buf.String())
	}

	buf.Reset()
	gapDelegate{}.Render(&buf, gm.entryList, 0, fakeItem{})
	if buf.Len() != 0 {
		t.Fatalf("Render() of foreign item wrote %q", buf.String())
	}
}

type fakeItem struct{}

func (fakeItem) FilterValue() string { return "" }

var _ list.Item = fakeItem{}
