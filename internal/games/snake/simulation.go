// Package snake implements a grid snake on a toroidal arena: a chain of
// segments steered by four-way input, advanced on a fixed wall-time tick,
// growing by one segment whenever it eats food.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// DefaultTickPeriod is the movement period used when none is configured.
const DefaultTickPeriod = 150 * time.Millisecond

// Sizes holds the logical square side length of each entity kind,
// relative to one grid cell.
type Sizes struct {
	Head float64
	Body float64
	Food float64
}

// Settings fixes everything a simulation needs at creation.
type Settings struct {
	Arena        Arena
	TickPeriod   time.Duration
	Sizes        Sizes
	StartHead    Position
	StartHeading Direction
	StartBody    []Position
	Sampling     config.Sampling
}

// DefaultSettings returns the settings of the built-in configuration.
func DefaultSettings() Settings {
	s, err := SettingsFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		panic(err) // built-in defaults are always valid
	}
	return s
}

// SettingsFromConfig validates cfg and converts it into Settings.
func SettingsFromConfig(cfg config.SnakeConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	heading, err := ParseDirection(cfg.Start.Direction)
	if err != nil {
		return Settings{}, err
	}

	body := make([]Position, len(cfg.Start.Body))
	for i, c := range cfg.Start.Body {
		body[i] = Position{X: c.X, Y: c.Y}
	}

	return Settings{
		Arena:        Arena{Width: cfg.Arena.Width, Height: cfg.Arena.Height},
		TickPeriod:   cfg.Movement.TickPeriod(),
		Sizes:        Sizes{Head: cfg.Sizes.Head, Body: cfg.Sizes.Body, Food: cfg.Sizes.Food},
		StartHead:    Position{X: cfg.Start.Head.X, Y: cfg.Start.Head.Y},
		StartHeading: heading,
		StartBody:    body,
		Sampling:     cfg.Food.Sampling,
	}, nil
}

// FrameResult describes what happened during one frame.
type FrameResult struct {
	Turned  bool           // Input changed the heading
	Moved   bool           // A movement step was admitted
	Signals []GrowthSignal // Food eaten this frame
	Grew    bool           // A segment was appended
	Spawned []Food         // Food added this frame
}

// Simulation owns one State and runs its phases in a fixed order each frame.
type Simulation struct {
	settings Settings
	state    *State
	ticker   *TickScheduler
	sampler  Sampler
	logger   *log.Logger

	frames      uint64
	ticks       uint64
	foodEaten   int
	lastSignals int
}

// NewSimulation creates the initial chain and the first food item.
// The tick scheduler is anchored at start. A nil logger discards output.
func NewSimulation(settings Settings, rng *rand.Rand, start time.Time, logger *log.Logger) *Simulation {
	return newSimulation(settings, NewSampler(settings.Sampling, rng), start, logger)
}

func newSimulation(settings Settings, sampler Sampler, start time.Time, logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sim := &Simulation{
		settings: settings,
		state:    NewState(settings.Arena, settings.StartHead, settings.StartHeading, settings.StartBody),
		ticker:   NewTickScheduler(settings.TickPeriod, start),
		sampler:  sampler,
		logger:   logger,
	}

	f := SpawnInitialFood(sim.state, sim.sampler)
	logger.Debug("initial food", "id", f.ID, "pos", f.Pos)
	return sim
}

// Frame runs one frame: input, the tick-gated movement step, collision
// resolution, then growth and food spawning from the frame's signals.
//
// Collisions are only resolved once the first movement step has run, so
// growth always has a recorded tail position to append at.
func (sim *Simulation) Frame(now time.Time, keys Keys) (FrameResult, error) {
	var res FrameResult
	sim.frames++

	res.Turned = ApplyInput(sim.state, keys)

	if sim.ticker.Admit(now) {
		Move(sim.state)
		sim.ticks++
		res.Moved = true
		if head, ok := sim.state.Head(); ok {
			sim.logger.Debug("tick", "n", sim.ticks, "heading", sim.state.Heading, "head", head.Pos)
		}
	}

	if _, moved := sim.state.LastTail(); moved {
		res.Signals = ResolveCollisions(sim.state)
	}
	sim.lastSignals = len(res.Signals)

	grew, err := Grow(sim.state, res.Signals)
	if err != nil {
		return res, fmt.Errorf("snake: frame %d: %w", sim.frames, err)
	}
	res.Grew = grew
	res.Spawned = SpawnForSignals(sim.state, res.Signals, sim.sampler)

	sim.foodEaten += len(res.Signals)
	for _, sig := range res.Signals {
		sim.logger.Debug("food eaten", "id", sig.FoodID, "pos", sig.At)
	}
	if grew {
		sim.logger.Debug("segment appended", "length", len(sim.state.Chain))
	}
	for _, f := range res.Spawned {
		sim.logger.Debug("food spawned", "id", f.ID, "pos", f.Pos)
	}

	return res, nil
}

// Resume re-anchors the tick scheduler after the caller stopped calling
// Frame for a while, so the paused time does not count toward a tick.
func (sim *Simulation) Resume(now time.Time) {
	sim.ticker.Resume(now)
}

// State exposes the simulation state for read-only use.
func (sim *Simulation) State() *State {
	return sim.state
}

// Settings returns the settings the simulation was created with.
func (sim *Simulation) Settings() Settings {
	return sim.settings
}

// Ticks returns the number of movement steps taken.
func (sim *Simulation) Ticks() uint64 {
	return sim.ticks
}

// FoodEaten returns the total number of food items eaten.
func (sim *Simulation) FoodEaten() int {
	return sim.foodEaten
}
