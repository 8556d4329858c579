// Package controller provides output adapters for displaying patch sessions.
package controller

import (
	m "github.com/mouse-blink/splicer/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeApply StartMode = iota
	ModeCheck
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode    StartMode
	name    string
	entries int
}

// WithApplyMode sets the UI to display a session that writes files.
func WithApplyMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeApply
	}
}

// WithCheckMode sets the UI to display a dry-run session.
func WithCheckMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeCheck
	}
}

// WithSession names the session and announces how many entries it holds.
func WithSession(name string, entries int) StartOption {
	return func(c *StartConfig) {
		c.name = name
		c.entries = entries
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeApply}
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying patch sessions.
// Implementations can use different output methods (simple text, TUI, etc).
//
//nolint:interfacebloat // One method per session stage keeps callers free of formatting.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish (user closes it)
	DisplayPlan(plan m.Plan)
	DisplayOutcome(outcome m.PatchOutcome)
	DisplayReport(report m.SessionReport)
	DisplayDiff(diff string)
	DisplayRollback(script m.Path, records []m.BackupRecord)
	DisplayRestore(results []m.RestoreResult)
	DisplayNotes(notes []string)
}
