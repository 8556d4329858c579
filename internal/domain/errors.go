package domain

import (
	"errors"

	m "github.com/mouse-blink/splicer/internal/model"
)

// Sentinel errors for the per-entry failure taxonomy. Session code wraps them
// with context and maps them onto outcome kinds with outcomeKindFor.
var (
	ErrMissingTarget  = errors.New("target file not found")
	ErrAlreadyApplied = errors.New("transformation already applied")
	ErrAnchorNotFound = errors.New("no locator strategy matched")
	ErrInvalidAnchor  = errors.New("anchor out of range for buffer")
	ErrIOFailure      = errors.New("i/o failure")
	ErrContent        = errors.New("content generation failed")
	ErrSessionFailed  = errors.New("patch session reported failures")
)

func outcomeKindFor(err error) m.OutcomeKind {
	switch {
	case err == nil:
		return m.OutcomeApplied
	case errors.Is(err, ErrMissingTarget):
		return m.OutcomeNoTargetFile
	case errors.Is(err, ErrAlreadyApplied):
		return m.OutcomeAlreadyApplied
	case errors.Is(err, ErrAnchorNotFound), errors.Is(err, ErrInvalidAnchor):
		return m.OutcomeNoAnchor
	case errors.Is(err, ErrContent):
		return m.OutcomeContentFailure
	default:
		return m.OutcomeIOFailure
	}
}
