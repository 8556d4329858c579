package cmd

import (
	"github.com/spf13/cobra"
)

const applyLongDescription = `Apply runs every transformation of the plan against the project, in order.

Each file is backed up before its first change and written once at the end.
Transformations whose marker is already present are skipped, so running apply
twice is safe. A rollback script restoring the backups is written whenever a
file was backed up. The command fails if any transformation failed.`

var applyPlanFlag string
var applyBackupDirFlag string
var applyMetricsFlag string

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply the patch plan",
		Long:  applyLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Apply(cmd.Context(), applyArgs(applyPlanFlag, applyBackupDirFlag, applyMetricsFlag))
		},
	}
	cmd.Flags().StringVarP(&applyPlanFlag, "plan", "p", "", "plan file (YAML or TOML); overrides splicer.toml")
	cmd.Flags().StringVar(&applyBackupDirFlag, "backup-dir", "", "collect backups under DIR/<timestamp>/ instead of next to each file")
	cmd.Flags().StringVar(&applyMetricsFlag, "metrics-file", "", "write Prometheus textfile metrics for the session")

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
