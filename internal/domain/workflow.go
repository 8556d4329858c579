package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mouse-blink/splicer/internal/adapter"
	"github.com/mouse-blink/splicer/internal/controller"
	m "github.com/mouse-blink/splicer/internal/model"
)

// ErrPreflight is returned when files a plan requires are missing from the
// project root. Nothing is touched in that case.
var ErrPreflight = errors.New("required files missing")

// ApplyArgs holds the settings of one apply or check run.
type ApplyArgs struct {
	Plan m.Path
	// Root is the project root; relative plan paths resolve against it.
	Root      m.Path
	BackupDir m.Path
	StateDir  m.Path
	// RollbackScript overrides the default rollback_<plan>.sh in Root.
	RollbackScript m.Path
	// MetricsFile, when set, receives a Prometheus textfile after apply.
	MetricsFile m.Path
}

// ListArgs holds the settings of a list run.
type ListArgs struct {
	Plan m.Path
}

// RollbackArgs selects the session to roll back.
type RollbackArgs struct {
	StateDir m.Path
	// Manifest picks a session explicitly; empty selects the latest one with
	// backups under StateDir.
	Manifest m.Path
	// Output overrides where the regenerated script is written.
	Output m.Path
	// Restore copies the backups back in process instead of writing a script.
	Restore bool
}

// Workflow defines the interface for patch session operations.
type Workflow interface {
	Apply(ctx context.Context, args ApplyArgs) error
	Check(ctx context.Context, args ApplyArgs) error
	List(args ListArgs) error
	Rollback(args RollbackArgs) error
}

type workflow struct {
	fsAdapter   adapter.TargetFSAdapter
	planStore   adapter.PlanStore
	reportStore adapter.ReportStore
	diffs       adapter.DiffRenderer
	ui          controller.UI
	orch        Orchestrator
	now         func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.TargetFSAdapter,
	planStore adapter.PlanStore,
	reportStore adapter.ReportStore,
	diffs adapter.DiffRenderer,
	ui controller.UI,
	orch Orchestrator,
) Workflow {
	return &workflow{
		fsAdapter:   fsAdapter,
		planStore:   planStore,
		reportStore: reportStore,
		diffs:       diffs,
		ui:          ui,
		orch:        orch,
		now:         time.Now,
	}
}

// Apply runs the plan, writes modified files, and leaves a rollback script and
// session manifest behind.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	return w.run(ctx, args, false)
}

// Check runs the plan without backing up or writing anything and shows the
// diff that Apply would produce.
func (w *workflow) Check(ctx context.Context, args ApplyArgs) error {
	return w.run(ctx, args, true)
}

// List shows the plan entries without running them.
func (w *workflow) List(args ListArgs) error {
	plan, err := w.planStore.Load(args.Plan)
	if err != nil {
		return err
	}

	w.ui.DisplayPlan(plan)

	return nil
}

// Rollback regenerates the rollback script of a recorded session, or restores
// its backups directly.
func (w *workflow) Rollback(args RollbackArgs) error {
	manifest, source, err := w.manifestFor(args)
	if err != nil {
		return err
	}

	slog.Debug("rolling back session", "session", manifest.ID, "manifest", source, "backups", len(manifest.Backups))

	if args.Restore {
		results, err := Restore(w.fsAdapter, manifest.Backups)
		w.ui.DisplayRestore(results)

		if err != nil {
			return fmt.Errorf("rollback of session %s incomplete: %w", manifest.ID, err)
		}

		return nil
	}

	output := rollbackScriptPath(manifest.Root, args.Output, manifest.Name)

	if err := w.writeRollback(output, manifest.Backups); err != nil {
		return err
	}

	w.ui.DisplayRollback(output, manifest.Backups)

	return nil
}

func (w *workflow) manifestFor(args RollbackArgs) (m.SessionManifest, m.Path, error) {
	if args.Manifest != "" {
		manifest, err := w.reportStore.LoadReport(args.Manifest)
		return manifest, args.Manifest, err
	}

	manifest, path, err := w.reportStore.LatestReport(args.StateDir)
	if err != nil {
		return m.SessionManifest{}, "", fmt.Errorf("no session to roll back in %s: %w", args.StateDir, err)
	}

	return manifest, path, nil
}

func (w *workflow) run(ctx context.Context, args ApplyArgs, dryRun bool) error {
	plan, err := w.planStore.Load(args.Plan)
	if err != nil {
		return err
	}

	if err := w.preflight(args.Root, plan.Requires); err != nil {
		return err
	}

	if !dryRun {
		if err := w.ensureDirs(args.Root, plan.EnsureDirs); err != nil {
			return err
		}
	}

	mode := controller.WithApplyMode()
	if dryRun {
		mode = controller.WithCheckMode()
	}

	if err := w.ui.Start(mode, controller.WithSession(plan.Name, len(plan.Entries))); err != nil {
		return fmt.Errorf("failed to start ui: %w", err)
	}
	defer w.ui.Close()

	report, runErr := w.orch.Run(ctx, plan.Entries, SessionOptions{
		Name:      plan.Name,
		Root:      args.Root,
		BackupDir: args.BackupDir,
		DryRun:    dryRun,
		Now:       w.now,
		Observer:  w.ui.DisplayOutcome,
		Logger:    slog.Default(),
	})

	w.ui.DisplayReport(report)

	if runErr != nil {
		return fmt.Errorf("session %s interrupted: %w", report.SessionID, runErr)
	}

	if dryRun {
		diff, err := w.diffs.Render(args.Root, report.Changes)
		if err != nil {
			return err
		}

		w.ui.DisplayDiff(diff)
	} else if err := w.record(args, plan, report); err != nil {
		return err
	}

	slog.Info("session finished",
		"session", report.SessionID,
		"plan", plan.Name,
		"dry_run", dryRun,
		"applied", report.Count(m.OutcomeApplied),
		"failed", len(report.Failures()),
	)

	if report.Success() {
		w.ui.DisplayNotes(plan.Notes)
	}

	w.ui.Wait()

	if !report.Success() {
		return fmt.Errorf("%w: %d of %d transformations failed", ErrSessionFailed, len(report.Failures()), len(report.Outcomes))
	}

	return nil
}

// record persists what a session leaves behind: the rollback script when
// anything was backed up, the manifest, and optional metrics.
func (w *workflow) record(args ApplyArgs, plan m.Plan, report m.SessionReport) error {
	if len(report.Backups) > 0 {
		script := rollbackScriptPath(args.Root, args.RollbackScript, plan.Name)

		if err := w.writeRollback(script, report.Backups); err != nil {
			return err
		}

		w.ui.DisplayRollback(script, report.Backups)
	}

	stateDir := args.StateDir
	if stateDir == "" {
		stateDir = w.fsAdapter.JoinPath(string(args.Root), adapter.DefaultStateDir)
	}

	manifestPath, err := w.reportStore.SaveReport(stateDir, m.SessionManifest{
		ID:        report.SessionID,
		Name:      report.Name,
		Token:     report.Token,
		Root:      args.Root,
		CreatedAt: w.now(),
		Backups:   report.Backups,
		Outcomes:  report.Outcomes,
	})
	if err != nil {
		return fmt.Errorf("failed to save session manifest: %w", err)
	}

	slog.Debug("session manifest saved", "path", manifestPath)

	if args.MetricsFile != "" {
		metrics := adapter.NewMetricsWriter()
		metrics.Record(report)

		if err := metrics.WriteFile(args.MetricsFile); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) writeRollback(path m.Path, records []m.BackupRecord) error {
	if err := w.fsAdapter.MkdirAll(m.Path(filepath.Dir(string(path))), 0o750); err != nil {
		return fmt.Errorf("failed to create rollback script dir: %w", err)
	}

	if err := w.fsAdapter.WriteFile(path, []byte(GenerateRollback(records)), 0o755); err != nil {
		return fmt.Errorf("failed to write rollback script: %w", err)
	}

	return nil
}

func (w *workflow) preflight(root m.Path, requires []m.Path) error {
	var missing []string

	for _, req := range requires {
		path := w.resolve(root, req)

		if _, err := w.fsAdapter.FileInfo(path); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}

			missing = append(missing, string(req))
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w in %s: %s", ErrPreflight, root, strings.Join(missing, ", "))
	}

	return nil
}

func (w *workflow) ensureDirs(root m.Path, dirs []m.Path) error {
	for _, dir := range dirs {
		path := w.resolve(root, dir)

		if err := w.fsAdapter.MkdirAll(path, 0o750); err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}

		slog.Debug("directory ensured", "path", path)
	}

	return nil
}

func (w *workflow) resolve(root, path m.Path) m.Path {
	if root == "" || filepath.IsAbs(string(path)) {
		return path
	}

	return w.fsAdapter.JoinPath(string(root), string(path))
}

func rollbackScriptPath(root, configured m.Path, name string) m.Path {
	cfg := adapter.ProjectConfig{Root: root, RollbackScript: configured}

	return cfg.RollbackScriptPath(name)
}
