package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/splicer/internal/domain"
)

var rollbackManifestFlag string
var rollbackOutputFlag string
var rollbackRestoreFlag bool

// rollbackCmd represents the rollback command.
var rollbackCmd = newRollbackCmd()

func newRollbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rollback",
		Short: "Regenerate the rollback script or restore backups",
		Long: `Rollback reads a recorded session manifest, by default the latest session
that took backups, and writes its rollback script again. With --restore the
backups are copied over the patched files directly.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Rollback(domain.RollbackArgs{
				StateDir: project.StateDir,
				Manifest: pathFlag(rollbackManifestFlag, ""),
				Output:   pathFlag(rollbackOutputFlag, project.RollbackScript),
				Restore:  rollbackRestoreFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&rollbackManifestFlag, "manifest", "m", "", "session manifest to roll back (default: latest session with backups)")
	cmd.Flags().StringVarP(&rollbackOutputFlag, "output", "o", "", "where to write the rollback script")
	cmd.Flags().BoolVar(&rollbackRestoreFlag, "restore", false, "restore the backups now instead of writing a script")

	return cmd
}

func init() {
	rootCmd.AddCommand(rollbackCmd)
}
