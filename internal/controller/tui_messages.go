package controller

import (
	"time"

	m "github.com/mouse-blink/splicer/internal/model"
)

// Message types.
type tickMsg time.Time

type sessionStartMsg struct {
	name    string
	entries int
	dryRun  bool
}

type outcomeMsg struct {
	outcome m.PatchOutcome
}

type reportMsg struct {
	report m.SessionReport
}

type diffMsg struct {
	diff string
}

type rollbackMsg struct {
	script m.Path
	files  int
}

type notesMsg struct {
	notes []string
}

// List item types.
type outcomeItem struct {
	outcome m.PatchOutcome
}

func (o outcomeItem) FilterValue() string {
	return string(o.outcome.Target) + " " + o.outcome.Transformation + " " + string(o.outcome.Kind)
}
