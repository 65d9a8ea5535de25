package controller

import m "github.com/mouse-blink/docgap/internal/model"

// Message types.
type coverageMsg struct {
	report m.CoverageReport
	mode   StartMode
}

// List item types.
type entryItem struct {
	source    string
	signature string
	kind      m.Kind
}

func (e entryItem) FilterValue() string {
	return e.source + " " + e.signature
}
