package snake

import (
	"math/rand"
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const frameDelta = time.Second / 60

func TestFrameWaitsForTick(t *testing.T) {
	sim, clock := newTestSimulation(Position{8, 8})

	clock.Advance(100 * time.Millisecond)
	res, err := sim.Frame(clock.Now(), Keys{})
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}
	if res.Moved {
		t.Error("no step should be admitted before the period elapses")
	}

	clock.Advance(50 * time.Millisecond)
	res, _ = sim.Frame(clock.Now(), Keys{})
	if !res.Moved {
		t.Fatal("step should be admitted after 150ms")
	}

	expected := []Position{{3, 4}, {3, 3}}
	if got := sim.State().Positions(); !reflect.DeepEqual(got, expected) {
		t.Errorf("positions = %v, expected %v", got, expected)
	}
}

func TestFrameReversalRejected(t *testing.T) {
	sim, clock := newTestSimulation(Position{8, 8})

	clock.Advance(150 * time.Millisecond)
	res, _ := sim.Frame(clock.Now(), Keys{Down: true})
	if res.Turned {
		t.Error("reversal should be rejected")
	}
	if head, _ := sim.State().Head(); head.Pos != (Position{3, 4}) {
		t.Errorf("head = %v, expected (3,4)", head.Pos)
	}
}

func TestFrameEatsAndGrows(t *testing.T) {
	sim, clock := newTestSimulation(Position{3, 5}, Position{7, 7})

	clock.Advance(150 * time.Millisecond)
	sim.Frame(clock.Now(), Keys{})
	clock.Advance(150 * time.Millisecond)
	res, err := sim.Frame(clock.Now(), Keys{})
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}

	if len(res.Signals) != 1 || !res.Grew {
		t.Fatalf("expected one signal and growth, got %+v", res)
	}
	expected := []Position{{3, 5}, {3, 4}, {3, 3}}
	if got := sim.State().Positions(); !reflect.DeepEqual(got, expected) {
		t.Errorf("positions = %v, expected %v", got, expected)
	}

	food := sim.State().Food.Items()
	if len(food) != 1 || food[0].Pos != (Position{7, 7}) {
		t.Errorf("food = %v, expected one item at (7,7)", food)
	}
	if sim.FoodEaten() != 1 {
		t.Errorf("FoodEaten() = %d, expected 1", sim.FoodEaten())
	}
}

func TestFrameFoodOnHeadBeforeFirstMove(t *testing.T) {
	// Initial food on the starting head cell
	sim, clock := newTestSimulation(Position{3, 3}, Position{7, 7})

	clock.Advance(frameDelta)
	res, err := sim.Frame(clock.Now(), Keys{})
	if err != nil {
		t.Fatalf("Frame() before first step should not fail: %v", err)
	}
	if len(res.Signals) != 0 {
		t.Errorf("collisions resolved before first step: %v", res.Signals)
	}

	// Head moves off; the food is now under the body and stays there
	clock.Advance(150 * time.Millisecond)
	res, _ = sim.Frame(clock.Now(), Keys{})
	if !res.Moved || len(res.Signals) != 0 {
		t.Errorf("unexpected result %+v", res)
	}
	if sim.State().Food.Len() != 1 {
		t.Errorf("food count = %d, expected 1", sim.State().Food.Len())
	}
}

func TestFrameMultipleFoodOnOneCell(t *testing.T) {
	sim, clock := newTestSimulation(Position{9, 9}, Position{1, 1}, Position{2, 2})
	addFood(sim.State(), Position{3, 4})
	addFood(sim.State(), Position{3, 4})

	clock.Advance(150 * time.Millisecond)
	res, err := sim.Frame(clock.Now(), Keys{})
	if err != nil {
		t.Fatalf("Frame() error: %v", err)
	}

	if len(res.Signals) != 2 {
		t.Errorf("signals = %d, expected 2", len(res.Signals))
	}
	if len(sim.State().Chain) != 3 {
		t.Errorf("length = %d, expected 3", len(sim.State().Chain))
	}
	if len(res.Spawned) != 2 || sim.State().Food.Len() != 3 {
		t.Errorf("spawned %d, food %d; expected 2 and 3", len(res.Spawned), sim.State().Food.Len())
	}
}

func TestFrameWrapsToOppositeEdge(t *testing.T) {
	settings := DefaultSettings()
	settings.StartHead = Position{9, 5}
	settings.StartHeading = DirRight
	settings.StartBody = []Position{{8, 5}}

	clock := core.NewManualClock(epoch)
	sim := newSimulation(settings, &seqSampler{cells: []Position{{0, 0}}}, clock.Now(), nil)

	clock.Advance(150 * time.Millisecond)
	sim.Frame(clock.Now(), Keys{})

	if head, _ := sim.State().Head(); head.Pos != (Position{0, 5}) {
		t.Errorf("head = %v, expected (0,5)", head.Pos)
	}
}

func TestSimulationInvariants(t *testing.T) {
	settings := DefaultSettings()
	settings.Arena = Arena{Width: 4, Height: 4}
	settings.StartHead = Position{1, 1}
	settings.StartBody = []Position{{1, 0}}

	clock := core.NewManualClock(epoch)
	sim := NewSimulation(settings, rand.New(rand.NewSource(11)), clock.Now(), nil)
	input := rand.New(rand.NewSource(12))

	growthFrames := 0
	prevStep := settings.StartHeading
	for i := 0; i < 3000; i++ {
		clock.Advance(frameDelta)
		keys := Keys{
			Left:  input.Intn(8) == 0,
			Down:  input.Intn(8) == 0,
			Up:    input.Intn(8) == 0,
			Right: input.Intn(8) == 0,
		}
		res, err := sim.Frame(clock.Now(), keys)
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if res.Grew {
			growthFrames++
		}
		if len(res.Spawned) != len(res.Signals) {
			t.Fatalf("frame %d: spawned %d for %d signals", i, len(res.Spawned), len(res.Signals))
		}

		st := sim.State()
		if st.Food.Len() != 1 {
			t.Fatalf("frame %d: food count = %d, expected 1", i, st.Food.Len())
		}
		if len(st.Chain) != 2+growthFrames {
			t.Fatalf("frame %d: length %d, expected %d", i, len(st.Chain), 2+growthFrames)
		}
		for _, p := range st.Positions() {
			if !st.Arena.Contains(p) {
				t.Fatalf("frame %d: segment at %v outside arena", i, p)
			}
		}
		if res.Moved {
			if st.stepHeading == prevStep.Opposite() {
				t.Fatalf("frame %d: step reversed from %v to %v", i, prevStep, st.stepHeading)
			}
			prevStep = st.stepHeading
		}
	}

	if growthFrames == 0 {
		t.Error("expected the snake to eat at least once on a 4x4 arena")
	}
	if sim.FoodEaten() != growthFrames {
		t.Errorf("FoodEaten() = %d, expected %d", sim.FoodEaten(), growthFrames)
	}
}

func TestSimulationDeterminism(t *testing.T) {
	run := func() Snapshot {
		clock := core.NewManualClock(epoch)
		sim := NewSimulation(DefaultSettings(), rand.New(rand.NewSource(42)), clock.Now(), nil)
		script := map[int]Keys{
			10: {Left: true},
			40: {Down: true},
			75: {Right: true},
			90: {Up: true},
		}
		for i := 0; i < 600; i++ {
			clock.Advance(frameDelta)
			if _, err := sim.Frame(clock.Now(), script[i]); err != nil {
				t.Fatalf("frame %d: %v", i, err)
			}
		}
		return sim.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
	if a.Frame != 600 {
		t.Errorf("Frame = %d, expected 600", a.Frame)
	}
}

func TestSimulationResume(t *testing.T) {
	sim, clock := newTestSimulation(Position{8, 8})

	clock.Advance(100 * time.Millisecond)
	sim.Frame(clock.Now(), Keys{})

	clock.Advance(5 * time.Second) // paused
	sim.Resume(clock.Now())

	clock.Advance(frameDelta)
	res, _ := sim.Frame(clock.Now(), Keys{})
	if res.Moved {
		t.Error("paused time should not admit a step")
	}
	if sim.Ticks() != 0 {
		t.Errorf("Ticks() = %d, expected 0", sim.Ticks())
	}
}

func TestEntities(t *testing.T) {
	sim, clock := newTestSimulation(Position{8, 8})
	clock.Advance(150 * time.Millisecond)
	sim.Frame(clock.Now(), Keys{})

	ents := sim.Entities()
	if len(ents) != 3 {
		t.Fatalf("entities = %d, expected 3", len(ents))
	}

	sizes := DefaultSettings().Sizes
	expected := []struct {
		kind Kind
		pos  Position
		size float64
	}{
		{KindFood, Position{8, 8}, sizes.Food},
		{KindSegment, Position{3, 3}, sizes.Body},
		{KindHead, Position{3, 4}, sizes.Head},
	}
	for i, e := range expected {
		got := ents[i]
		if got.Kind != e.kind || got.Pos != e.pos || got.Size != e.size {
			t.Errorf("entity %d = %+v, expected %v at %v size %v", i, got, e.kind, e.pos, e.size)
		}
	}
}

func TestSnapshot(t *testing.T) {
	sim, clock := newTestSimulation(Position{3, 4}, Position{0, 9})
	clock.Advance(150 * time.Millisecond)
	sim.Frame(clock.Now(), Keys{Right: true})

	snap := sim.Snapshot()
	if snap.Frame != 1 || snap.Tick != 1 {
		t.Errorf("frame/tick = %d/%d, expected 1/1", snap.Frame, snap.Tick)
	}
	if snap.Heading != DirRight {
		t.Errorf("heading = %v, expected right", snap.Heading)
	}
	// Turned right before moving, so the food at (3,4) is missed
	if snap.Length != 2 || snap.LastSignals != 0 {
		t.Errorf("length/signals = %d/%d, expected 2/0", snap.Length, snap.LastSignals)
	}
	if !reflect.DeepEqual(snap.Segments, []Position{{4, 3}, {3, 3}}) {
		t.Errorf("segments = %v", snap.Segments)
	}
	if !reflect.DeepEqual(snap.Food, []Position{{3, 4}}) {
		t.Errorf("food = %v", snap.Food)
	}
}
