package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/splicer/internal/model"
)

var (
	appliedColor = color.New(color.FgGreen, color.Bold)
	skippedColor = color.New(color.FgYellow)
	failedColor  = color.New(color.FgRed, color.Bold)
	headingColor = color.New(color.FgCyan, color.Bold)
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
	seen   int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start prints the session header.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.config = newStartConfig(options...)
	s.seen = 0

	verb := "Applying"
	if s.config.mode == ModeCheck {
		verb = "Checking"
	}

	name := s.config.name
	if name == "" {
		name = "session"
	}

	s.printf("%s %s (%d transformations)\n", verb, headingColor.Sprint(name), s.config.entries)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; plain output needs no user interaction.
func (s *SimpleUI) Wait() {
}

// DisplayPlan lists the plan entries in declaration order.
func (s *SimpleUI) DisplayPlan(plan m.Plan) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "File", "Transformation", "Strategies"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	files := make(map[m.Path]struct{})

	for i, entry := range plan.Entries {
		files[entry.Target] = struct{}{}

		names := make([]string, 0, len(entry.Transformation.Strategies))
		for _, strategy := range entry.Transformation.Strategies {
			names = append(names, strategy.Name)
		}

		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			string(entry.Target),
			entry.Transformation.Name,
			strings.Join(names, " > "),
		})
	}

	table.SetFooter([]string{
		"",
		fmt.Sprintf("Total Files %d", len(files)),
		fmt.Sprintf("%d", len(plan.Entries)),
		"",
	})

	table.Render()
	s.printf("Plan %s (%s)\n%s", headingColor.Sprint(plan.Name), plan.Source, tableBuffer.String())
}

// DisplayOutcome prints one progress line per decided outcome.
func (s *SimpleUI) DisplayOutcome(outcome m.PatchOutcome) {
	s.seen++

	if s.config.entries > 0 {
		s.printf("[%d/%d] %s %s: %s\n", s.seen, s.config.entries, kindLabel(outcome.Kind), outcome.Target, outcome.Transformation)
		return
	}

	s.printf("%s %s: %s\n", kindLabel(outcome.Kind), outcome.Target, outcome.Transformation)
}

// DisplayReport prints the session table and summary.
func (s *SimpleUI) DisplayReport(report m.SessionReport) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"File", "Transformation", "Outcome", "Reason"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, outcome := range report.Outcomes {
		reason := outcome.Reason
		if outcome.Strategy != "" && outcome.Kind == m.OutcomeApplied {
			reason = fmt.Sprintf("%s via %s", reason, outcome.Strategy)
		}

		table.Append([]string{
			string(outcome.Target),
			outcome.Transformation,
			string(outcome.Kind),
			reason,
		})
	}

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	s.printf("\n%s\n", summaryLine(report))

	if report.DryRun {
		s.printf("Dry run: no files were written.\n")
		return
	}

	for _, path := range report.Written {
		s.printf("wrote %s\n", path)
	}
}

// DisplayDiff prints a unified diff of a dry run.
func (s *SimpleUI) DisplayDiff(diff string) {
	if diff == "" {
		s.printf("No changes.\n")
		return
	}

	for _, line := range strings.SplitAfter(diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			s.printf("%s", headingColor.Sprint(line))
		case strings.HasPrefix(line, "+"):
			s.printf("%s", appliedColor.Sprint(line))
		case strings.HasPrefix(line, "-"):
			s.printf("%s", failedColor.Sprint(line))
		default:
			s.printf("%s", line)
		}
	}
}

// DisplayRollback reports where the rollback script was written.
func (s *SimpleUI) DisplayRollback(script m.Path, records []m.BackupRecord) {
	s.printf("Rollback script %s restores %d file(s)\n", script, len(records))

	for _, record := range records {
		s.printf("  %s <- %s\n", record.Original, record.Backup)
	}
}

// DisplayRestore prints the result of an in-process rollback.
func (s *SimpleUI) DisplayRestore(results []m.RestoreResult) {
	restored := 0

	for _, result := range results {
		if result.Restored {
			restored++

			s.printf("%s %s\n", appliedColor.Sprint("restored"), result.Record.Original)

			continue
		}

		s.printf("%s %v\n", failedColor.Sprint("failed"), result.Err)
	}

	s.printf("Rollback complete: %d of %d file(s) restored\n", restored, len(results))
}

// DisplayNotes prints the plan's follow-up notes.
func (s *SimpleUI) DisplayNotes(notes []string) {
	if len(notes) == 0 {
		return
	}

	s.printf("\n%s\n", headingColor.Sprint("Next steps:"))

	for i, note := range notes {
		s.printf("%d. %s\n", i+1, note)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func kindLabel(kind m.OutcomeKind) string {
	switch {
	case kind == m.OutcomeApplied:
		return appliedColor.Sprint(kind)
	case kind.Failed():
		return failedColor.Sprint(kind)
	default:
		return skippedColor.Sprint(kind)
	}
}

func summaryLine(report m.SessionReport) string {
	applied := report.Count(m.OutcomeApplied)
	failed := len(report.Failures())
	skipped := len(report.Outcomes) - applied - failed

	status := appliedColor.Sprint("OK")
	if !report.Success() {
		status = failedColor.Sprint("FAILED")
	}

	return fmt.Sprintf("%s: %d applied, %d skipped, %d failed", status, applied, skipped, failed)
}
