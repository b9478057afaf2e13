package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Sampler picks a cell for new food.
type Sampler interface {
	Cell(a Arena) Position
}

// UniformSampler draws each axis with a direct uniform integer draw.
type UniformSampler struct {
	rng *rand.Rand
}

// Cell returns a uniformly random cell.
func (u UniformSampler) Cell(a Arena) Position {
	return Position{X: u.rng.Intn(a.Width), Y: u.rng.Intn(a.Height)}
}

// FloatTruncSampler scales a uniform float32 in [0,1) by the axis length and
// truncates it. Float rounding makes it very slightly non-uniform.
type FloatTruncSampler struct {
	rng *rand.Rand
}

// Cell returns a random cell using float scaling and truncation.
func (f FloatTruncSampler) Cell(a Arena) Position {
	p := Position{
		X: int(f.rng.Float32() * float32(a.Width)),
		Y: int(f.rng.Float32() * float32(a.Height)),
	}
	return a.Wrap(p)
}

// NewSampler returns the sampler for the configured mode.
func NewSampler(mode config.Sampling, rng *rand.Rand) Sampler {
	if mode == config.SamplingFloatTruncate {
		return FloatTruncSampler{rng: rng}
	}
	return UniformSampler{rng: rng}
}

// spawnFood adds one food item at a sampled cell.
func spawnFood(s *State, smp Sampler) Food {
	f := Food{ID: s.newID(), Pos: s.Arena.Wrap(smp.Cell(s.Arena))}
	s.Food.Add(f)
	return f
}

// SpawnInitialFood places the single food item present at start.
func SpawnInitialFood(s *State, smp Sampler) Food {
	return spawnFood(s, smp)
}

// SpawnForSignals adds one new food item per signal. Signals are not
// collapsed and existing food is left alone.
func SpawnForSignals(s *State, signals []GrowthSignal, smp Sampler) []Food {
	if len(signals) == 0 {
		return nil
	}
	spawned := make([]Food, 0, len(signals))
	for range signals {
		spawned = append(spawned, spawnFood(s, smp))
	}
	return spawned
}
