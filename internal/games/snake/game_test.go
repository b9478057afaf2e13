package snake

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

func newTestGame(t *testing.T) (*Game, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(epoch)
	g := NewWithClock(clock)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42})
	return g, clock
}

func action(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func TestGameIDs(t *testing.T) {
	g := New()
	if g.ID() != ID || g.Title() != "Snake" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
	if !registry.Exists(ID) {
		t.Error("snake should be registered")
	}
}

func TestGameCapabilities(t *testing.T) {
	var g registry.Game = New()
	if _, ok := g.(registry.Inspector); !ok {
		t.Error("snake should implement registry.Inspector")
	}
	if _, ok := g.(registry.Faulter); !ok {
		t.Error("snake should implement registry.Faulter")
	}
	if _, ok := g.(registry.Summarizer); !ok {
		t.Error("snake should implement registry.Summarizer")
	}
}

func TestGameStepAdvancesOnTick(t *testing.T) {
	g, clock := newTestGame(t)

	clock.Advance(100 * time.Millisecond)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Fatal("step taken too early")
	}

	clock.Advance(50 * time.Millisecond)
	res := g.Step(action(core.ActionLeft))
	if g.Snapshot().Tick != 1 {
		t.Fatalf("Tick = %d, expected 1", g.Snapshot().Tick)
	}
	if g.Snapshot().Heading != DirLeft {
		t.Errorf("heading = %v, expected left", g.Snapshot().Heading)
	}
	if !res.Moved {
		t.Error("step result should report the movement step")
	}
	if res.State.Halted {
		t.Error("snake never halts in normal play")
	}
}

func TestGamePause(t *testing.T) {
	g, clock := newTestGame(t)

	res := g.Step(action(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused")
	}

	clock.Advance(2 * time.Second)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Error("paused game should not move")
	}

	res = g.Step(action(core.ActionPause))
	if res.State.Paused {
		t.Fatal("expected unpaused")
	}

	clock.Advance(100 * time.Millisecond)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 0 {
		t.Error("paused time should not count toward the tick")
	}

	clock.Advance(50 * time.Millisecond)
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != 1 {
		t.Errorf("Tick = %d, expected 1", g.Snapshot().Tick)
	}
}

func TestGameRestart(t *testing.T) {
	g, clock := newTestGame(t)

	for i := 0; i < 20; i++ {
		clock.Advance(150 * time.Millisecond)
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Tick == 0 {
		t.Fatal("expected progress before restart")
	}

	if sum := g.Summary(); sum.Ticks != g.Snapshot().Tick || sum.Length != g.Snapshot().Length {
		t.Errorf("Summary() = %+v does not match snapshot", sum)
	}

	g.Step(action(core.ActionRestart))
	snap := g.Snapshot()
	if snap.Tick != 0 || snap.Frame != 0 || snap.Length != 2 || snap.FoodEaten != 0 {
		t.Errorf("restart should start over, got %+v", snap)
	}
	if len(snap.Food) != 1 {
		t.Errorf("food = %d, expected 1", len(snap.Food))
	}
}

func TestGameBeforeReset(t *testing.T) {
	g := NewWithClock(core.NewManualClock(epoch))
	g.Step(action(core.ActionUp))
	if g.State() != (core.GameState{}) {
		t.Errorf("unexpected state %+v", g.State())
	}
	if g.Inspect() != nil {
		t.Error("Inspect() should be empty before reset")
	}
	g.Render(core.NewScreen(80, 24))
}

func TestGameInspect(t *testing.T) {
	g, _ := newTestGame(t)
	lines := strings.Join(g.Inspect(), "\n")
	for _, want := range []string{"heading  up", "length   2", "food (1)", "(3,3)"} {
		if !strings.Contains(lines, want) {
			t.Errorf("inspector missing %q:\n%s", want, lines)
		}
	}
}

func TestWindowTooSmall(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected window too small overlay")
	}
}

func TestRender(t *testing.T) {
	g, _ := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(out, "Snake") || !strings.Contains(out, "Length: 2") {
		t.Errorf("HUD missing:\n%s", out)
	}

	// 80x24 gives 4x2 tiles starting at (20,3); the head cell (3,3) is
	// the sixth tile row from the top.
	if c := screen.GetCell(32, 15); c.Rune != '█' || c.Color != core.ColorBrightWhite {
		t.Errorf("head cell = %+v, expected bright white block", c)
	}
	if c := screen.GetCell(32, 17); c.Rune != '█' || c.Color != core.ColorGray {
		t.Errorf("body cell = %+v, expected gray block", c)
	}
}

func TestRenderPausedOverlay(t *testing.T) {
	g, _ := newTestGame(t)
	g.Step(action(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected paused overlay")
	}
}
