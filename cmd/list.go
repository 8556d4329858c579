package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/splicer/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listPlanFlag string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the transformations of the patch plan",
		Long:  "List every file and transformation of the plan with its locator strategies, in execution order.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.List(domain.ListArgs{Plan: pathFlag(listPlanFlag, project.Plan)})
		},
	}
	cmd.Flags().StringVarP(&listPlanFlag, "plan", "p", "", "plan file (YAML or TOML); overrides splicer.toml")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
