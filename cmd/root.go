// Package cmd provides the root command and CLI setup for splicer.
package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/splicer/internal/adapter"
	"github.com/mouse-blink/splicer/internal/controller"
	"github.com/mouse-blink/splicer/internal/domain"
	m "github.com/mouse-blink/splicer/internal/model"
)

var fsAdapter adapter.TargetFSAdapter
var planStore adapter.PlanStore
var reportStore adapter.ReportStore
var diffRenderer adapter.DiffRenderer
var configLoader adapter.ConfigLoader
var orchestrator domain.Orchestrator
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalTargetFSAdapter()
	planStore = adapter.NewPlanStore(fsAdapter)
	reportStore = adapter.NewReportStore()
	diffRenderer = adapter.NewDiffRenderer(fsAdapter)
	configLoader = adapter.NewConfigLoader(fsAdapter)
	orchestrator = domain.NewOrchestrator(fsAdapter)
	workflow = domain.NewWorkflow(
		fsAdapter,
		planStore,
		reportStore,
		diffRenderer,
		ui,
		orchestrator,
	)
}

var rootDirFlag string
var verboseFlag bool

// project is resolved from splicer.toml before any subcommand runs.
var project adapter.ProjectConfig

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "splicer",
		Short: "Idempotent structural patch engine",
		Long: `Splicer applies declarative patch plans to text files such as build scripts
and sources. Every edit is located by structural anchors instead of byte
offsets, is applied exactly once, and can be rolled back.

Settings are read from splicer.toml, discovered by walking up from --root:
  plan            = "splicer.yaml"
  backup_dir      = ".splicer/backups"
  state_dir       = ".splicer"
  rollback_script = "rollback.sh"
  metrics_file    = ".splicer/splicer.prom"`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr(), verboseFlag)

			return loadProject()
		},
	}
	cmd.PersistentFlags().StringVarP(&rootDirFlag, "root", "C", ".", "project directory to patch (splicer.toml is searched from here upwards)")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func loadProject() error {
	cfg, err := configLoader.Load(m.Path(rootDirFlag))
	if err != nil {
		return err
	}

	project = cfg

	slog.Debug("project loaded", "root", cfg.Root, "config", cfg.Path, "plan", cfg.Plan)

	return nil
}

// pathFlag returns the flag value when set, fallback otherwise.
func pathFlag(value string, fallback m.Path) m.Path {
	if value == "" {
		return fallback
	}

	return m.Path(value)
}

func applyArgs(plan, backupDir, metricsFile string) domain.ApplyArgs {
	return domain.ApplyArgs{
		Plan:           pathFlag(plan, project.Plan),
		Root:           project.Root,
		BackupDir:      pathFlag(backupDir, project.BackupDir),
		StateDir:       project.StateDir,
		RollbackScript: project.RollbackScript,
		MetricsFile:    pathFlag(metricsFile, project.MetricsFile),
	}
}
