package controller

import (
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	m "github.com/mouse-blink/splicer/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
// The patch session itself stays sequential; the Bubble Tea program runs on
// its own goroutine and receives outcomes as messages.
type TUI struct {
	output  io.Writer
	input   io.Reader
	mu      sync.Mutex
	program *tea.Program
	group   *errgroup.Group
	started bool
	config  StartConfig
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output, input: os.Stdin}
}

// Start launches the session view.
func (t *TUI) Start(options ...StartOption) error {
	t.config = newStartConfig(options...)

	model := newSessionModel()
	if width, height, ok := t.terminalSize(); ok {
		model = model.handleWindowSize(tea.WindowSizeMsg{Width: width, Height: height})
	}

	if err := t.startWithModel(model); err != nil {
		return err
	}

	t.send(sessionStartMsg{
		name:    t.config.name,
		entries: t.config.entries,
		dryRun:  t.config.mode == ModeCheck,
	})

	return nil
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	opts := []tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}
	if t.input == nil {
		opts = append(opts, tea.WithInput(nil))
	} else {
		opts = append(opts, tea.WithInput(t.input))
	}

	program := tea.NewProgram(model, opts...)
	group := new(errgroup.Group)

	group.Go(func() error {
		_, err := program.Run()
		return err
	})

	t.program = program
	t.group = group
	t.started = true

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the user quits the program.
func (t *TUI) Wait() {
	t.mu.Lock()
	group := t.group
	t.mu.Unlock()

	if group == nil {
		return
	}

	if err := group.Wait(); err != nil {
		_, _ = fmt.Fprintf(t.output, "tui error: %v\n", err)
	}
}

// Close stops the program if it is still running.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()

	t.mu.Lock()
	t.program = nil
	t.group = nil
	t.started = false
	t.mu.Unlock()
}

func (t *TUI) running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.program != nil
}

// DisplayPlan prints the plan as a static styled table.
func (t *TUI) DisplayPlan(plan m.Plan) {
	width, _, ok := t.terminalSize()
	if !ok {
		width = 100
	}

	_, _ = fmt.Fprint(t.output, renderPlan(plan, width))
}

// DisplayOutcome forwards an outcome to the running program.
func (t *TUI) DisplayOutcome(outcome m.PatchOutcome) {
	t.send(outcomeMsg{outcome: outcome})
}

// DisplayReport marks the session finished.
func (t *TUI) DisplayReport(report m.SessionReport) {
	t.send(reportMsg{report: report})
}

// DisplayDiff hands the dry-run diff to the program, or prints it when no
// program is running.
func (t *TUI) DisplayDiff(diff string) {
	if t.running() {
		t.send(diffMsg{diff: diff})
		return
	}

	_, _ = fmt.Fprint(t.output, diff)
}

// DisplayRollback reports the rollback script.
func (t *TUI) DisplayRollback(script m.Path, records []m.BackupRecord) {
	if t.running() {
		t.send(rollbackMsg{script: script, files: len(records)})
		return
	}

	_, _ = fmt.Fprintf(t.output, "Rollback script %s restores %d file(s)\n", script, len(records))
}

// DisplayRestore prints the result of an in-process rollback.
func (t *TUI) DisplayRestore(results []m.RestoreResult) {
	_, _ = fmt.Fprint(t.output, renderRestore(results))
}

// DisplayNotes shows the plan's follow-up notes.
func (t *TUI) DisplayNotes(notes []string) {
	if len(notes) == 0 {
		return
	}

	if t.running() {
		t.send(notesMsg{notes: notes})
		return
	}

	_, _ = fmt.Fprint(t.output, renderNotes(notes))
}

func (t *TUI) terminalSize() (int, int, bool) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
