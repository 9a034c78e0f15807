package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-mazes/internal/core"
	"github.com/vovakirdan/tui-mazes/internal/registry"
	"github.com/vovakirdan/tui-mazes/internal/storage"
)

// counterGame counts steps and ends with a score of 3 once it sees ActionConfirm.
type counterGame struct {
	pacing registry.Pacing
	resets int
	steps  int
	over   bool
	last   core.InputFrame
}

func (g *counterGame) ID() string    { return "counter" }
func (g *counterGame) Title() string { return "Counter" }

func (g *counterGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
}

func (g *counterGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	if in.Has(core.ActionConfirm) {
		g.over = true
	}
	return core.StepResult{State: g.State()}
}

func (g *counterGame) Render(s *core.Screen) {
	s.Clear()
	s.DrawText(0, 0, "steps")
}

func (g *counterGame) State() core.GameState {
	st := core.GameState{GameOver: g.over}
	if g.over {
		st.Score = 3
	}
	return st
}

func (g *counterGame) Pacing() registry.Pacing { return g.pacing }

func newTestModel(t *testing.T, g *counterGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	cfg.Difficulty = "hard"
	return NewModel(g, store, cfg)
}

func sendKey(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelInputPacedStepsPerKey(t *testing.T) {
	g := &counterGame{}
	m := newTestModel(t, g, nil)

	if g.resets != 1 {
		t.Fatalf("resets = %d, want 1", g.resets)
	}
	if m.Init() != nil {
		t.Error("input-paced game started a tick loop")
	}

	m, _ = sendKey(m, runeKey("w"))
	m, _ = sendKey(m, runeKey("x")) // Unmapped keys do not step
	sendKey(m, runeKey("d"))

	if g.steps != 2 {
		t.Errorf("steps = %d, want 2", g.steps)
	}
	if !g.last.Has(core.ActionRight) || g.last.Has(core.ActionUp) {
		t.Error("input frame was not cleared between steps")
	}
}

func TestModelRealtimeStepsOnTick(t *testing.T) {
	g := &counterGame{pacing: registry.PacingRealtime}
	m := newTestModel(t, g, nil)

	if m.Init() == nil {
		t.Fatal("realtime game did not start a tick loop")
	}

	m, _ = sendKey(m, runeKey("a"))
	if g.steps != 0 {
		t.Fatalf("realtime key stepped immediately")
	}

	_, cmd := m.Update(TickMsg{})
	if g.steps != 1 || !g.last.Has(core.ActionLeft) {
		t.Errorf("tick did not step with the buffered key: steps=%d", g.steps)
	}
	if cmd == nil {
		t.Error("tick did not schedule the next tick")
	}
}

func TestModelInputPacedIgnoresStrayTick(t *testing.T) {
	g := &counterGame{}
	m := newTestModel(t, g, nil)

	_, cmd := m.Update(TickMsg{})
	if g.steps != 0 {
		t.Errorf("stray tick stepped an input-paced game: steps=%d", g.steps)
	}
	if cmd != nil {
		t.Error("stray tick restarted the tick loop")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	m := newTestModel(t, &counterGame{}, nil)

	m, cmd := sendKey(m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("quitting model still renders")
	}

	m = newTestModel(t, &counterGame{}, nil)
	m.inSession = true
	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Error("esc in a session did not return to the menu")
	}
}

func TestModelSavesRunOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &counterGame{}
	m := newTestModel(t, g, store)

	m, _ = sendKey(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.GameState().GameOver {
		t.Fatal("game not over after confirm")
	}
	m, _ = sendKey(m, runeKey("w")) // Further steps must not save again

	runs, err := store.AllRuns("counter")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, want 1", len(runs))
	}
	if runs[0].Score != 3 || runs[0].Seed != 99 || runs[0].Difficulty != "hard" {
		t.Errorf("run = %+v", runs[0])
	}

	m, _ = sendKey(m, runeKey("r"))
	if g.resets != 2 || m.GameState().GameOver {
		t.Errorf("restart did not reset the game: resets=%d state=%+v", g.resets, m.GameState())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &counterGame{}, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 4})
	m = next.(Model)

	view := m.View()
	if !strings.HasPrefix(view, "steps") {
		t.Errorf("View() = %q", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 4 {
		t.Errorf("View() has %d lines, want 4", lines)
	}
}
