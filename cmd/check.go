package cmd

import (
	"github.com/spf13/cobra"
)

var checkPlanFlag string

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Dry-run the patch plan and show the diff",
		Long: `Check runs the plan exactly like apply but backs up and writes nothing.
It prints the outcome of every transformation and a unified diff of the
changes apply would make. The command fails if any transformation failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Check(cmd.Context(), applyArgs(checkPlanFlag, "", ""))
		},
	}
	cmd.Flags().StringVarP(&checkPlanFlag, "plan", "p", "", "plan file (YAML or TOML); overrides splicer.toml")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
