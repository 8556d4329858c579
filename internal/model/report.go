package model

import (
	"strings"
	"time"
)

// OutcomeKind classifies what happened to one (file, transformation) pair.
type OutcomeKind string

const (
	// OutcomeApplied means the transformation was spliced into the buffer.
	OutcomeApplied OutcomeKind = "applied"
	// OutcomeAlreadyApplied means the idempotency marker was already present.
	OutcomeAlreadyApplied OutcomeKind = "skipped-already-applied"
	// OutcomeNoTargetFile means the target file does not exist.
	OutcomeNoTargetFile OutcomeKind = "skipped-no-target-file"
	// OutcomeNoAnchor means no locator strategy matched.
	OutcomeNoAnchor OutcomeKind = "failed-no-anchor-found"
	// OutcomeIOFailure means reading, backing up or writing the file failed.
	OutcomeIOFailure OutcomeKind = "failed-io"
	// OutcomeContentFailure means the content generator returned an error.
	OutcomeContentFailure OutcomeKind = "failed-content"
)

// Failed reports whether the outcome makes the session unsuccessful.
func (k OutcomeKind) Failed() bool {
	return strings.HasPrefix(string(k), "failed-")
}

// Skipped reports whether the outcome is a non-fatal skip.
func (k OutcomeKind) Skipped() bool {
	return strings.HasPrefix(string(k), "skipped-")
}

// PatchOutcome is the result of one (file, transformation) pair.
type PatchOutcome struct {
	Kind           OutcomeKind `yaml:"kind"`
	Transformation string      `yaml:"transformation"`
	Target         Path        `yaml:"target"`
	Strategy       string      `yaml:"strategy,omitempty"`
	Reason         string      `yaml:"reason"`
}

// BackupRecord describes one file snapshot taken during a session.
type BackupRecord struct {
	Original  Path      `yaml:"original"`
	Backup    Path      `yaml:"backup"`
	CreatedAt time.Time `yaml:"created_at"`
}

// SessionReport is everything a session run produced.
type SessionReport struct {
	SessionID string
	Name      string
	Token     string
	DryRun    bool
	Outcomes  []PatchOutcome
	Backups   []BackupRecord
	Changes   []FileChange
	Written   []Path
	Rollback  string
}

// Success reports whether no failed-* outcome was recorded.
func (r SessionReport) Success() bool {
	for _, outcome := range r.Outcomes {
		if outcome.Kind.Failed() {
			return false
		}
	}

	return true
}

// Count returns how many outcomes have the given kind.
func (r SessionReport) Count(kind OutcomeKind) int {
	count := 0

	for _, outcome := range r.Outcomes {
		if outcome.Kind == kind {
			count++
		}
	}

	return count
}

// Failures returns the failed outcomes in declaration order.
func (r SessionReport) Failures() []PatchOutcome {
	var failures []PatchOutcome

	for _, outcome := range r.Outcomes {
		if outcome.Kind.Failed() {
			failures = append(failures, outcome)
		}
	}

	return failures
}

// SessionManifest is the persisted form of a session, sufficient to rebuild
// the rollback script without the original process.
type SessionManifest struct {
	ID        string         `yaml:"id"`
	Name      string         `yaml:"name,omitempty"`
	Token     string         `yaml:"token"`
	Root      Path           `yaml:"root"`
	CreatedAt time.Time      `yaml:"created_at"`
	Backups   []BackupRecord `yaml:"backups"`
	Outcomes  []PatchOutcome `yaml:"outcomes"`
}

// RestoreResult reports what an in-process rollback did for one record.
type RestoreResult struct {
	Record   BackupRecord
	Restored bool
	Err      error
}
