package controller

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/splicer/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(_ tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func newTestTUI(buf *bytes.Buffer) *TUI {
	tui := NewTUI(buf)
	tui.input = nil

	return tui
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// send after the program quit must not block
	tui.send(outcomeMsg{outcome: m.PatchOutcome{Kind: m.OutcomeApplied}})

	waitDone := make(chan struct{})
	go func() {
		tui.Wait()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() timed out")
	}

	closeDone := make(chan struct{})
	go func() {
		tui.Close()
		close(closeDone)
	}()

	select {
	case <-closeDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}

	if tui.running() {
		t.Fatal("running() = true after Close")
	}
}

func TestTUI_SessionLifecycle(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.Start(WithCheckMode(), WithSession("archipelago", 2)); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("second start error = %v", err)
	}

	tui.DisplayOutcome(m.PatchOutcome{Kind: m.OutcomeApplied, Target: "CMakeLists.txt", Transformation: "sources"})
	tui.DisplayOutcome(m.PatchOutcome{Kind: m.OutcomeAlreadyApplied, Target: "src/d_main.cpp", Transformation: "shutdown"})
	tui.DisplayReport(m.SessionReport{DryRun: true})
	tui.DisplayDiff("--- a/x\n+++ b/x\n")
	tui.DisplayRollback("rollback.sh", nil)
	tui.DisplayNotes([]string{"Rebuild"})

	done := make(chan struct{})
	go func() {
		tui.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() timed out")
	}
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer

	tui := newTestTUI(&buf)
	tui.Close()
	tui.Close()

	newTestTUI(&buf).Wait()
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.DisplayOutcome(m.PatchOutcome{Kind: m.OutcomeApplied})
	tui.DisplayReport(m.SessionReport{})

	tui.DisplayPlan(m.Plan{
		Name:   "archipelago",
		Source: "plan.yaml",
		Entries: []m.Entry{
			{Target: "CMakeLists.txt", Transformation: m.Transformation{Name: "sources", Strategies: []m.LocatorStrategy{{Name: "after-pch"}}}},
			{Target: "src/d_main.cpp", Transformation: m.Transformation{Name: "shutdown"}},
		},
	})
	tui.DisplayDiff("+added\n")
	tui.DisplayRollback("rollback_archipelago.sh", []m.BackupRecord{{Original: "a"}})
	tui.DisplayRestore([]m.RestoreResult{
		{Record: m.BackupRecord{Original: "a.txt"}, Restored: true},
		{Err: errors.New("backup not found: b")},
	})
	tui.DisplayNotes([]string{"Rebuild the project"})
	tui.DisplayNotes(nil)

	output := buf.String()

	for _, want := range []string{
		"Splicer Plan: archipelago",
		"CMakeLists.txt",
		"after-pch",
		"+added",
		"Rollback script rollback_archipelago.sh restores 1 file(s)",
		"Rollback complete: 1 of 2 file(s) restored",
		"1. Rebuild the project",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}
