package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mouse-blink/splicer/internal/adapter"
	m "github.com/mouse-blink/splicer/internal/model"
)

// Orchestrator runs an ordered list of (target, transformation) entries as one
// patch session. A failing entry never stops the entries after it.
type Orchestrator interface {
	Run(ctx context.Context, entries []m.Entry, opts SessionOptions) (m.SessionReport, error)
}

// OutcomeObserver is notified of every outcome as soon as it is decided.
type OutcomeObserver func(outcome m.PatchOutcome)

// SessionOptions configures a single Run.
type SessionOptions struct {
	Name string
	// Root resolves relative target paths and anchors the backup directory layout.
	Root m.Path
	// BackupDir selects the backup-root layout; empty keeps backups next to originals.
	BackupDir m.Path
	// DryRun computes outcomes and changes without backing up or writing.
	DryRun   bool
	Now      func() time.Time
	Observer OutcomeObserver
	Logger   *slog.Logger
}

type orchestrator struct {
	fsAdapter adapter.TargetFSAdapter
}

// NewOrchestrator constructs an Orchestrator backed by the provided filesystem
// adapter.
func NewOrchestrator(fsAdapter adapter.TargetFSAdapter) Orchestrator {
	return &orchestrator{fsAdapter: fsAdapter}
}

// Run processes entries in declaration order, then writes every modified
// buffer once. When ctx is cancelled between entries nothing is written and
// the partial report is returned with the context error.
func (o *orchestrator) Run(ctx context.Context, entries []m.Entry, opts SessionOptions) (m.SessionReport, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &session{
		fs:   o.fsAdapter,
		opts: opts,
		log:  opts.Logger,
		backups: NewBackupManager(o.fsAdapter, BackupOptions{
			Started: opts.Now(),
			Root:    opts.Root,
			Dir:     opts.BackupDir,
			DryRun:  opts.DryRun,
			Now:     opts.Now,
		}),
		targets: make(map[m.Path]*m.PatchTarget),
	}

	s.report = m.SessionReport{
		SessionID: uuid.NewString()[:12],
		Name:      opts.Name,
		Token:     s.backups.Token(),
		DryRun:    opts.DryRun,
	}

	s.log.Debug("session started", "session", s.report.SessionID, "entries", len(entries), "dry_run", opts.DryRun)

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return s.finish(), err
		}

		s.record(entry)
	}

	s.persist()

	return s.finish(), nil
}

type session struct {
	fs      adapter.TargetFSAdapter
	opts    SessionOptions
	log     *slog.Logger
	backups BackupManager
	targets map[m.Path]*m.PatchTarget
	order   []m.Path
	report  m.SessionReport
	// resolved holds the absolute target path of each outcome.
	resolved []m.Path
}

func (s *session) record(entry m.Entry) {
	path := s.resolve(entry.Target)

	strategy, reason, err := s.apply(path, entry)

	outcome := m.PatchOutcome{
		Kind:           outcomeKindFor(err),
		Transformation: entry.Transformation.Name,
		Target:         entry.Target,
		Strategy:       strategy,
		Reason:         reason,
	}
	if err != nil {
		outcome.Reason = err.Error()
	}

	s.logOutcome(outcome)

	s.report.Outcomes = append(s.report.Outcomes, outcome)
	s.resolved = append(s.resolved, path)

	if s.opts.Observer != nil {
		s.opts.Observer(outcome)
	}
}

func (s *session) apply(path m.Path, entry m.Entry) (string, string, error) {
	tr := entry.Transformation

	target, err := s.load(path)
	if err != nil {
		return "", "", err
	}

	if IsApplied(target.Buffer, tr.Marker) {
		return "", "", fmt.Errorf("%w: marker %s present", ErrAlreadyApplied, tr.Marker)
	}

	if _, err := s.backups.Snapshot(path); err != nil {
		return "", "", err
	}

	anchor, ok := Locate(target.Buffer, tr.Strategies)
	if !ok {
		return "", "", fmt.Errorf("%w: tried %d strategies", ErrAnchorNotFound, len(tr.Strategies))
	}

	anchor.Context.Path = entry.Target

	content, err := generate(tr, anchor.Context)
	if err != nil {
		return anchor.Context.Strategy, "", err
	}

	updated, err := Apply(target.Buffer, anchor, content)
	if err != nil {
		return anchor.Context.Strategy, "", err
	}

	target.Buffer = updated
	target.Dirty = true

	return anchor.Context.Strategy, describeAnchor(anchor), nil
}

func (s *session) load(path m.Path) (*m.PatchTarget, error) {
	if target, ok := s.targets[path]; ok {
		return target, nil
	}

	info, err := s.fs.FileInfo(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingTarget, path)
		}

		return nil, fmt.Errorf("%w: failed to stat %s: %w", ErrIOFailure, path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrIOFailure, path)
	}

	content, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIOFailure, path, err)
	}

	target := &m.PatchTarget{
		Path:     path,
		Original: string(content),
		Buffer:   string(content),
		Mode:     info.Mode().Perm(),
	}

	s.targets[path] = target
	s.order = append(s.order, path)

	return target, nil
}

func (s *session) resolve(target m.Path) m.Path {
	if s.opts.Root == "" || filepath.IsAbs(string(target)) {
		return target
	}

	return s.fs.JoinPath(string(s.opts.Root), string(target))
}

// persist writes each modified buffer exactly once, in load order.
func (s *session) persist() {
	for _, path := range s.order {
		target := s.targets[path]
		if !target.Dirty {
			continue
		}

		s.report.Changes = append(s.report.Changes, m.FileChange{
			Path:   path,
			Before: target.Original,
			After:  target.Buffer,
		})

		if s.opts.DryRun {
			continue
		}

		if err := s.fs.WriteFileAtomic(path, []byte(target.Buffer), target.Mode); err != nil {
			s.failWrites(path, fmt.Errorf("%w: failed to write %s: %w", ErrIOFailure, path, err))
			continue
		}

		s.report.Written = append(s.report.Written, path)
	}
}

// failWrites turns the applied outcomes of an unwritten file into failures.
func (s *session) failWrites(path m.Path, err error) {
	s.log.Error("write failed", "path", path, "error", err)

	for i, resolved := range s.resolved {
		if resolved != path || s.report.Outcomes[i].Kind != m.OutcomeApplied {
			continue
		}

		s.report.Outcomes[i].Kind = outcomeKindFor(err)
		s.report.Outcomes[i].Reason = err.Error()
	}
}

func (s *session) finish() m.SessionReport {
	s.report.Backups = s.backups.Records()
	s.report.Rollback = GenerateRollback(s.report.Backups)

	return s.report
}

func (s *session) logOutcome(outcome m.PatchOutcome) {
	attrs := []any{
		"target", outcome.Target,
		"transformation", outcome.Transformation,
		"outcome", outcome.Kind,
	}

	switch outcome.Kind {
	case m.OutcomeNoAnchor:
		s.log.Warn(outcome.Reason, attrs...)
	case m.OutcomeIOFailure, m.OutcomeContentFailure:
		s.log.Error(outcome.Reason, attrs...)
	default:
		s.log.Debug(outcome.Reason, attrs...)
	}
}

func generate(tr m.Transformation, ctx m.AnchorContext) (string, error) {
	if tr.Content == nil {
		return "", fmt.Errorf("%w: %s has no content generator", ErrContent, tr.Name)
	}

	content, err := tr.Content(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrContent, tr.Name, err)
	}

	return content, nil
}

func describeAnchor(anchor m.Anchor) string {
	switch anchor.Mode {
	case m.ModeAppendEnd:
		return "appended at end of file"
	case m.ModeReplaceSpan:
		return fmt.Sprintf("replaced bytes %d-%d", anchor.Start, anchor.End)
	default:
		return fmt.Sprintf("inserted after byte %d", anchor.End)
	}
}
