package registry

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string    { return s.id }
func (s stubGame) Title() string { return "Stub " + s.id }

func (stubGame) Reset(core.RuntimeConfig) {}

func (stubGame) Step(core.InputFrame) core.StepResult {
	return core.StepResult{}
}

func (stubGame) Render(*core.Screen) {}

func (stubGame) State() core.GameState {
	return core.GameState{}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") || Exists("missing") {
		t.Error("Exists() mismatch")
	}

	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if g.ID() != "aa-stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("expected error for unknown id")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %v", list)
		}
	}
	found := false
	for _, info := range list {
		if info.ID == "zz-stub" && info.Title == "Stub zz-stub" {
			found = true
		}
	}
	if !found {
		t.Errorf("zz-stub missing from %v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
}
