package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/guna-thota/portfolio/internal/pipeline"
	"github.com/guna-thota/portfolio/internal/portfolio"
)

func newTestModel(clip func(string) error) Model {
	m := NewModel(portfolio.DefaultProfile(), zap.NewNop())
	m.writeClipboard = clip
	return m
}

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		var updated tea.Model
		updated, cmd = m.Update(msg)
		m = updated.(Model)
	}
	return m, cmd
}

func TestInitialViewShowsDefaultStage(t *testing.T) {
	m := newTestModel(nil)
	if m.State() != pipeline.NewViewState() {
		t.Fatalf("expected default state, got %+v", m.State())
	}
	out := m.View()
	if !strings.Contains(out, "Azure Data Factory") || !strings.Contains(out, "Idempotent runs") {
		t.Fatalf("expected orchestration summary in view:\n%s", out)
	}
}

func TestStageNavigation(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(m, "right")
	if m.State().Stage != pipeline.Storage {
		t.Fatalf("expected storage after right, got %s", m.State().Stage)
	}
	m, _ = press(m, "1", "left")
	if m.State().Stage != pipeline.Source {
		t.Fatalf("left from first stage should stay, got %s", m.State().Stage)
	}
	m, _ = press(m, "6", "right")
	if m.State().Stage != pipeline.Presentation {
		t.Fatalf("right from last stage should stay, got %s", m.State().Stage)
	}
	if m.State().Mode != pipeline.ModeSummary {
		t.Fatalf("stage keys must not change mode")
	}
}

func TestToggleModeShowsDetail(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(m, "m")
	if m.State() != (pipeline.ViewState{Stage: pipeline.Orchestration, Mode: pipeline.ModeDetail}) {
		t.Fatalf("unexpected state %+v", m.State())
	}
	out := m.View()
	for _, want := range []string{"What I Did", "Managed Identity", "Reliability Tricks"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in detail view", want)
		}
	}

	m, _ = press(m, "tab")
	if m.State().Mode != pipeline.ModeSummary {
		t.Fatalf("expected tab to toggle back to summary")
	}

	m, _ = press(m, "e", "e")
	if m.State().Mode != pipeline.ModeDetail {
		t.Fatalf("expected e to select engineer view")
	}
	m, _ = press(m, "r")
	if m.State().Mode != pipeline.ModeSummary {
		t.Fatalf("expected r to select recruiter view")
	}
}

func TestCopyShowsConfirmationUntilExpiry(t *testing.T) {
	var copied []string
	m := newTestModel(func(s string) error {
		copied = append(copied, s)
		return nil
	})

	m, cmd := press(m, "c")
	if cmd == nil {
		t.Fatalf("expected a tick command after copy")
	}
	if len(copied) != 1 || copied[0] != portfolio.DefaultProfile().Email {
		t.Fatalf("expected email on clipboard, got %v", copied)
	}
	if !strings.Contains(m.View(), "Copied!") {
		t.Fatalf("expected confirmation in view")
	}

	// A second copy before expiry restarts the window: the first timer must
	// not hide the confirmation.
	m, _ = press(m, "c")
	updated, _ := m.Update(copyExpiredMsg{seq: 1})
	m = updated.(Model)
	if !m.copied {
		t.Fatalf("stale timer hid the newer confirmation")
	}
	updated, _ = m.Update(copyExpiredMsg{seq: 2})
	m = updated.(Model)
	if m.copied || strings.Contains(m.View(), "Copied!") {
		t.Fatalf("expected confirmation hidden after expiry")
	}
}

func TestCopyFailureShowsNothing(t *testing.T) {
	m := newTestModel(func(string) error { return errors.New("no clipboard") })

	m, cmd := press(m, "c")
	if cmd != nil {
		t.Fatalf("expected no command after failed copy")
	}
	if m.copied || strings.Contains(m.View(), "Copied!") {
		t.Fatalf("failed copy must not show confirmation")
	}
}

func TestArchitectureOverlay(t *testing.T) {
	m := newTestModel(nil)

	m, _ = press(m, "down", "enter")
	if !m.overlay {
		t.Fatalf("expected overlay open")
	}
	out := m.View()
	if !strings.Contains(out, "spark-quality-gates architecture") || !strings.Contains(out, "Quarantine") {
		t.Fatalf("expected second project's diagram:\n%s", out)
	}

	// Stage keys are ignored while the overlay is open.
	before := m.State()
	m, _ = press(m, "right", "m")
	if m.State() != before {
		t.Fatalf("overlay must swallow view-state keys")
	}

	m, _ = press(m, "esc")
	if m.overlay {
		t.Fatalf("expected overlay closed")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(nil)
	_, cmd := press(m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestTransitionsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewModel(portfolio.DefaultProfile(), zap.New(core))

	m, _ = press(m, "3", "m", "1", "left")

	entries := logs.FilterMessage("view state").All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 logged transitions, got %d", len(entries))
	}
	last := entries[2].ContextMap()
	if last["stage"] != "source" || last["mode"] != "detail" {
		t.Fatalf("unexpected last entry %v", last)
	}
	if entries[0].LoggerName != "tui" {
		t.Fatalf("expected tui logger, got %q", entries[0].LoggerName)
	}
	if m.State() != (pipeline.ViewState{Stage: pipeline.Source, Mode: pipeline.ModeDetail}) {
		t.Fatalf("unexpected state %+v", m.State())
	}
}
