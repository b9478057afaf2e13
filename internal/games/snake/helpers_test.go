package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// seqSampler returns the queued cells in order, then repeats the last one.
type seqSampler struct {
	cells []Position
	calls int
}

func (s *seqSampler) Cell(_ Arena) Position {
	i := s.calls
	if i >= len(s.cells) {
		i = len(s.cells) - 1
	}
	s.calls++
	return s.cells[i]
}

// newDefaultState returns the initial 10x10 chain: head (3,3) facing up, tail (3,2).
func newDefaultState() *State {
	return NewState(Arena{Width: 10, Height: 10}, Position{X: 3, Y: 3}, DirUp, []Position{{X: 3, Y: 2}})
}

// addFood places a food item with a fresh ID.
func addFood(s *State, p Position) Food {
	f := Food{ID: s.newID(), Pos: p}
	s.Food.Add(f)
	return f
}

// newTestSimulation builds a default simulation whose food lands on the
// given cells in order, driven by a manual clock.
func newTestSimulation(cells ...Position) (*Simulation, *core.ManualClock) {
	clock := core.NewManualClock(epoch)
	sim := newSimulation(DefaultSettings(), &seqSampler{cells: cells}, clock.Now(), nil)
	return sim, clock
}
