package controller

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/splicer/internal/model"
)

// outcomeDelegate renders one outcome per line.
type outcomeDelegate struct{}

func (d outcomeDelegate) Height() int  { return 1 }
func (d outcomeDelegate) Spacing() int { return 0 }
func (d outcomeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d outcomeDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	it, ok := item.(outcomeItem)
	if !ok {
		return
	}

	outcome := it.outcome
	isSelected := index == lm.Index()
	fileWidth := lm.Width() - 56

	kindStyle := lipgloss.NewStyle().Foreground(kindColor(outcome.Kind)).Bold(true).Width(26)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Width(28)
	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	if isSelected {
		selected := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		kindStyle = selected.Width(26)
		nameStyle = selected.Width(28)
		fileStyle = selected
	}

	line := fmt.Sprintf("%s  %s  %s",
		kindStyle.Render(string(outcome.Kind)),
		nameStyle.Render(truncateFile(outcome.Transformation, 28)),
		fileStyle.Render(truncateFile(string(outcome.Target), fileWidth)),
	)
	_, _ = fmt.Fprint(w, line)
}

func kindColor(kind m.OutcomeKind) lipgloss.Color {
	switch {
	case kind == m.OutcomeApplied:
		return lipgloss.Color("2") // Green
	case kind.Failed():
		return lipgloss.Color("1") // Red
	default:
		return lipgloss.Color("3") // Yellow
	}
}

// sessionModel handles the TUI display while a patch session runs and after
// it finished.
type sessionModel struct {
	width           int
	height          int
	progressBar     progress.Model
	name            string
	dryRun          bool
	totalEntries    int
	completedCount  int
	progressPercent float64
	rendered        bool
	finished        bool
	report          m.SessionReport
	outcomes        []m.PatchOutcome
	outcomesList    list.Model
	diff            string
	showDiff        bool
	rollback        string
	notes           []string
}

func newSessionModel() sessionModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	outcomesList := list.New([]list.Item{}, outcomeDelegate{}, 80, 20)
	outcomesList.SetShowPagination(false)
	outcomesList.SetShowFilter(true)
	outcomesList.SetShowHelp(false)
	outcomesList.SetShowTitle(false)
	outcomesList.SetShowStatusBar(false)
	outcomesList.FilterInput.Placeholder = "Filter outcomes..."

	return sessionModel{
		progressBar:  prog,
		outcomesList: outcomesList,
		width:        80,
		height:       24,
	}
}

func (sm sessionModel) Init() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (sm sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sm = sm.handleWindowSize(msg)

	case tea.KeyMsg:
		sm, cmd = sm.handleKeyMsg(msg)

	case tickMsg:
		return sm, tea.Tick(time.Millisecond*150, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case sessionStartMsg:
		sm.name = msg.name
		sm.dryRun = msg.dryRun
		sm.totalEntries = msg.entries
		sm.completedCount = 0
		sm.progressPercent = 0
		sm.rendered = true

	case outcomeMsg:
		sm = sm.handleOutcome(msg)

	case reportMsg:
		sm.report = msg.report
		sm.finished = true
		sm.progressPercent = 1
		sm.rendered = true

	case diffMsg:
		sm.diff = msg.diff

	case rollbackMsg:
		sm.rollback = fmt.Sprintf("Rollback script %s restores %d file(s)", msg.script, msg.files)

	case notesMsg:
		sm.notes = msg.notes
	}

	return sm, cmd
}

func (sm sessionModel) handleOutcome(msg outcomeMsg) sessionModel {
	sm.completedCount++
	sm.rendered = true
	sm.outcomes = append(sm.outcomes, msg.outcome)

	items := make([]list.Item, 0, len(sm.outcomes))
	for _, outcome := range sm.outcomes {
		items = append(items, outcomeItem{outcome: outcome})
	}

	sm.outcomesList.SetItems(items)

	if sm.totalEntries > 0 {
		sm.progressPercent = float64(sm.completedCount) / float64(sm.totalEntries)
	}

	return sm
}

func (sm sessionModel) handleKeyMsg(msg tea.KeyMsg) (sessionModel, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return sm, tea.Quit
	case "d":
		if sm.finished && sm.outcomesList.FilterState() != list.Filtering {
			sm.showDiff = !sm.showDiff && strings.TrimSpace(sm.diff) != ""
			return sm, nil
		}
	}

	if !sm.finished {
		return sm, nil
	}

	var cmd tea.Cmd

	sm.outcomesList, cmd = sm.outcomesList.Update(msg)

	return sm, cmd
}

func (sm sessionModel) handleWindowSize(msg tea.WindowSizeMsg) sessionModel {
	sm.width = msg.Width
	sm.height = msg.Height

	sm.progressBar.Width = sm.width - 8
	if sm.progressBar.Width < 20 {
		sm.progressBar.Width = 20
	}

	return sm
}

func (sm sessionModel) View() string {
	if !sm.rendered {
		return "Initializing patch session...\n"
	}

	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	verb := "Applying"
	if sm.dryRun {
		verb = "Checking"
	}

	title := titleStyle.Render(fmt.Sprintf("Splicer: %s %s", verb, sm.name))

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  |  Applied: %s  |  Skipped: %s  |  Failed: %s",
		accentStyle.Render(fmt.Sprintf("%d", sm.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", sm.totalEntries)),
		accentStyle.Render(fmt.Sprintf("%d", sm.count(func(k m.OutcomeKind) bool { return k == m.OutcomeApplied }))),
		accentStyle.Render(fmt.Sprintf("%d", sm.count(m.OutcomeKind.Skipped))),
		accentStyle.Render(fmt.Sprintf("%d", sm.count(m.OutcomeKind.Failed))),
	))

	sections := []string{title, summary}

	if !sm.finished {
		sections = append(sections, lipgloss.NewStyle().Padding(0, 2).Render(sm.progressBar.ViewAs(sm.progressPercent)))
	}

	sections = append(sections, sm.renderOutcomesBox(accentColor))

	if box := sm.renderDiffBox(accentColor); box != "" {
		sections = append(sections, box)
	}

	if sm.finished {
		sections = append(sections, sm.renderStatus())
	}

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(sm.width)

	footer := "Press q to quit"
	if sm.finished {
		footer = "up/k down/j | / filter | d diff | q quit"
	}

	sections = append(sections, footerStyle.Render(footer))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (sm sessionModel) count(match func(m.OutcomeKind) bool) int {
	count := 0

	for _, outcome := range sm.outcomes {
		if match(outcome.Kind) {
			count++
		}
	}

	return count
}

func (sm sessionModel) renderOutcomesBox(accentColor lipgloss.Color) string {
	listWidth := sm.width - 4

	listHeight := sm.height - 12 - sm.diffBoxHeight()
	if listHeight < 5 {
		listHeight = 5
	}

	sm.outcomesList.SetHeight(listHeight)
	sm.outcomesList.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%-26s  %-28s  %s", "Outcome", "Transformation", "File"))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, headers, sm.outcomesList.View()))
}

func (sm sessionModel) renderStatus() string {
	lines := make([]string, 0, 3+len(sm.notes))

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).Render("Session succeeded")
	if !sm.report.Success() {
		status = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true).Render("Session reported failures")
	}

	lines = append(lines, status)

	if sm.report.DryRun {
		lines = append(lines, "Dry run: no files were written.")
	} else if len(sm.report.Written) > 0 {
		lines = append(lines, fmt.Sprintf("Wrote %d file(s)", len(sm.report.Written)))
	}

	if sm.rollback != "" {
		lines = append(lines, sm.rollback)
	}

	if len(sm.notes) > 0 {
		lines = append(lines, "Next steps:")
		for i, note := range sm.notes {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, note))
		}
	}

	return lipgloss.NewStyle().Padding(1, 0, 1, 2).Render(strings.Join(lines, "\n"))
}

func (sm sessionModel) diffMaxLines() int {
	maxLines := sm.height / 3
	if maxLines < 6 {
		maxLines = 6
	}

	if maxLines > 20 {
		maxLines = 20
	}

	return maxLines
}

func (sm sessionModel) diffBoxHeight() int {
	if !sm.showDiff {
		return 0
	}

	lines := strings.Split(strings.TrimSpace(sm.diff), "\n")
	if len(lines) > sm.diffMaxLines() {
		return sm.diffMaxLines() + 3
	}

	return len(lines) + 3
}

func (sm sessionModel) renderDiffBox(accentColor lipgloss.Color) string {
	if !sm.showDiff {
		return ""
	}

	diff := strings.TrimSpace(sm.diff)
	if diff == "" {
		return ""
	}

	width := sm.width - 4

	contentWidth := width - 4
	if contentWidth < 10 {
		contentWidth = 10
	}

	lines := strings.Split(diff, "\n")
	maxLines := sm.diffMaxLines()
	truncated := false

	if len(lines) > maxLines {
		lines = lines[:maxLines-1]
		truncated = true
	}

	bodyLines := make([]string, 0, len(lines)+1)
	for _, line := range lines {
		bodyLines = append(bodyLines, renderDiffLine(line, contentWidth))
	}

	if truncated {
		bodyLines = append(bodyLines, "...")
	}

	header := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Bold(true).Render("Diff")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1, 0, 0).
		Padding(0, 1).
		Width(width)

	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinVertical(lipgloss.Left, bodyLines...)))
}

func renderDiffLine(line string, width int) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	switch {
	case strings.HasPrefix(line, "+++"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	case strings.HasPrefix(line, "---"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	case strings.HasPrefix(line, "@@"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	case strings.HasPrefix(line, "+"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	case strings.HasPrefix(line, "-"):
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	case strings.TrimSpace(line) == "":
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	}

	return style.Render(truncateFile(line, width))
}

func truncateFile(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	ellipsis := "..."

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis[:width]
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}
