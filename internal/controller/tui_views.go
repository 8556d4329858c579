package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/splicer/internal/model"
)

// renderPlan draws the plan entries grouped by target file.
func renderPlan(plan m.Plan, width int) string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	strategyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	var (
		order []m.Path
		byFile = make(map[m.Path][]m.Entry)
	)

	for _, entry := range plan.Entries {
		if _, ok := byFile[entry.Target]; !ok {
			order = append(order, entry.Target)
		}

		byFile[entry.Target] = append(byFile[entry.Target], entry)
	}

	lines := make([]string, 0, len(plan.Entries)+len(order))

	for _, path := range order {
		lines = append(lines, fileStyle.Render(truncateFile(string(path), width-8)))

		for _, entry := range byFile[path] {
			names := make([]string, 0, len(entry.Transformation.Strategies))
			for _, strategy := range entry.Transformation.Strategies {
				names = append(names, strategy.Name)
			}

			lines = append(lines, fmt.Sprintf("  %s  %s",
				nameStyle.Render(entry.Transformation.Name),
				strategyStyle.Render(truncateFile(strings.Join(names, " > "), width-12-len(entry.Transformation.Name))),
			))
		}
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(0, 1, 1, 1)

	title := titleStyle.Render(fmt.Sprintf("Splicer Plan: %s", plan.Name))
	summary := summaryStyle.Render(fmt.Sprintf(
		"Files: %s  |  Transformations: %s  |  Source: %s",
		accentStyle.Render(fmt.Sprintf("%d", len(order))),
		accentStyle.Render(fmt.Sprintf("%d", len(plan.Entries))),
		accentStyle.Render(string(plan.Source)),
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		boxStyle.Render(strings.Join(lines, "\n")),
	) + "\n"
}

func renderRestore(results []m.RestoreResult) string {
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	var b strings.Builder

	restored := 0

	for _, result := range results {
		if result.Restored {
			restored++

			fmt.Fprintf(&b, "%s %s\n", okStyle.Render("restored"), result.Record.Original)

			continue
		}

		fmt.Fprintf(&b, "%s %v\n", errStyle.Render("failed"), result.Err)
	}

	fmt.Fprintf(&b, "Rollback complete: %d of %d file(s) restored\n", restored, len(results))

	return b.String()
}

func renderNotes(notes []string) string {
	headingStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	var b strings.Builder

	b.WriteString(headingStyle.Render("Next steps:"))
	b.WriteByte('\n')

	for i, note := range notes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, note)
	}

	return b.String()
}
