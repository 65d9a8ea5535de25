// Package controller provides output adapters for displaying index and
// coverage results.
package controller

import (
	m "github.com/mouse-blink/docgap/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeIndex StartMode = iota
	ModeCoverage
	ModeView
	ModeControls
)

func (s StartMode) String() string {
	switch s {
	case ModeIndex:
		return "index"
	case ModeCoverage:
		return "coverage"
	case ModeView:
		return "view"
	case ModeControls:
		return "controls"
	default:
		return "unknown"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithIndexMode sets the UI to index generation mode.
func WithIndexMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeIndex
	}
}

// WithCoverageMode sets the UI to coverage analysis mode.
func WithCoverageMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCoverage
	}
}

// WithViewMode sets the UI to display a stored snapshot.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithControlsMode sets the UI to control reference generation mode.
func WithControlsMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeControls
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayIndex(summary m.IndexSummary) error
	DisplayControls(summary m.ControlsSummary) error
	DisplayCoverage(report m.CoverageReport) error
	DisplayReport(markdown string)
}
