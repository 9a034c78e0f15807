package registry

import (
	"testing"

	"github.com/vovakirdan/tui-mazes/internal/core"
)

type stubGame struct{}

func (stubGame) ID() string                           { return "stub" }
func (stubGame) Title() string                        { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }

type pacedGame struct {
	stubGame
}

func (pacedGame) Pacing() Pacing { return PacingRealtime }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", func() Game { return stubGame{} })

	if !Exists("test-stub") {
		t.Fatal("Exists() = false after Register")
	}

	g, err := Create("test-stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub" {
		t.Errorf("Title() = %q", g.Title())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List() missing the registered game or its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create() of an unknown game returned no error")
	}
	if Exists("no-such-game") {
		t.Error("Exists() = true for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("test-dup", func() Game { return stubGame{} })
}

func TestListSorted(t *testing.T) {
	Register("test-b", func() Game { return stubGame{} })
	Register("test-a", func() Game { return stubGame{} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestPacingOf(t *testing.T) {
	if got := PacingOf(stubGame{}); got != PacingInput {
		t.Errorf("PacingOf(stub) = %v, want input", got)
	}
	if got := PacingOf(pacedGame{}); got != PacingRealtime {
		t.Errorf("PacingOf(paced) = %v, want realtime", got)
	}
}
