package snake

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "snake"

const hudHeight = 2 // Status line plus separator

// Package-level config path, set by the CLI before the game is created.
var configPath string

// SetConfigPath sets the config file path used by Reset.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Simulation to the platform: it maps input actions to keys,
// reads the wall clock once per frame, handles pause and restart, and draws
// entities into a screen buffer.
type Game struct {
	clock  core.Clock
	logger *log.Logger

	rng     *rand.Rand
	sim     *Simulation
	screenW int
	screenH int
	paused  bool
	fault   error
}

// New creates a Snake game reading the system clock.
func New() *Game {
	return NewWithClock(core.SystemClock{})
}

// NewWithClock creates a Snake game reading the given clock.
func NewWithClock(clock core.Clock) *Game {
	return &Game{
		clock:  clock,
		logger: log.Default().WithPrefix(ID),
	}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset loads the configuration and starts a fresh simulation.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.fault = nil

	g.sim = NewSimulation(g.loadSettings(), g.rng, g.clock.Now(), g.logger)
	g.logger.Debug("reset", "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
}

// loadSettings reads the config file, falling back to the defaults.
func (g *Game) loadSettings() Settings {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		return DefaultSettings()
	}
	settings, err := SettingsFromConfig(cfg)
	if err != nil {
		g.logger.Warn("using default config", "error", err)
		return DefaultSettings()
	}
	return settings
}

// Step runs one frame.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.fault == nil {
		g.paused = !g.paused
		if !g.paused {
			g.sim.Resume(g.clock.Now())
		}
	}

	if g.paused || g.fault != nil {
		return core.StepResult{State: g.State()}
	}

	keys := Keys{
		Left:  input.Has(core.ActionLeft),
		Down:  input.Has(core.ActionDown),
		Up:    input.Has(core.ActionUp),
		Right: input.Has(core.ActionRight),
	}
	res, err := g.sim.Frame(g.clock.Now(), keys)
	if err != nil {
		g.fault = err
		g.logger.Error("simulation halted", "error", err)
	}

	return core.StepResult{State: g.State(), Moved: res.Moved}
}

// State returns the current game state. The simulation has no losing
// condition, it only halts on an internal error.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:  g.sim.FoodEaten(),
		Paused: g.paused,
		Halted: g.fault != nil,
	}
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.sim == nil {
		return Snapshot{}
	}
	return g.sim.Snapshot()
}

// Summary reports the current run for the session history.
func (g *Game) Summary() core.Summary {
	if g.sim == nil {
		return core.Summary{}
	}
	return core.Summary{
		Score:  g.sim.FoodEaten(),
		Length: len(g.sim.State().Chain),
		Ticks:  g.sim.Ticks(),
	}
}

// Fault returns the error that halted the simulation, if any.
func (g *Game) Fault() error {
	return g.fault
}

// Inspect returns the debug inspector lines.
func (g *Game) Inspect() []string {
	if g.sim == nil {
		return nil
	}
	snap := g.sim.Snapshot()
	lines := []string{
		fmt.Sprintf("frame    %d", snap.Frame),
		fmt.Sprintf("tick     %d", snap.Tick),
		fmt.Sprintf("heading  %s", snap.Heading),
		fmt.Sprintf("length   %d", snap.Length),
		fmt.Sprintf("eaten    %d", snap.FoodEaten),
		fmt.Sprintf("signals  %d", snap.LastSignals),
		"",
		"segments",
	}
	for i, p := range snap.Segments {
		lines = append(lines, fmt.Sprintf("  %2d %s", i, p))
	}
	lines = append(lines, "", fmt.Sprintf("food (%d)", len(snap.Food)))
	for _, p := range snap.Food {
		lines = append(lines, "     "+p.String())
	}
	return lines
}
