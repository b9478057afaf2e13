// Package config provides YAML-based configuration loading for the snake
// simulation.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sampling selects how food cells are drawn.
type Sampling string

const (
	// SamplingUniform draws each axis as a uniform integer.
	SamplingUniform Sampling = "uniform"
	// SamplingFloatTruncate scales a uniform float and truncates it.
	SamplingFloatTruncate Sampling = "float_truncate"
)

// SnakeConfig contains all configuration for the snake simulation.
type SnakeConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Movement MovementConfig `yaml:"movement"`
	Sizes    SizesConfig    `yaml:"sizes"`
	Start    StartConfig    `yaml:"start"`
	Food     FoodConfig     `yaml:"food"`
}

// ArenaConfig defines the toroidal grid.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MovementConfig defines the movement tick.
type MovementConfig struct {
	TickPeriodMS int `yaml:"tick_period_ms"`
}

// TickPeriod returns the tick period as a duration.
func (m MovementConfig) TickPeriod() time.Duration {
	return time.Duration(m.TickPeriodMS) * time.Millisecond
}

// SizesConfig defines the logical square size of each entity kind,
// relative to one grid cell.
type SizesConfig struct {
	Head float64 `yaml:"head"`
	Body float64 `yaml:"body"`
	Food float64 `yaml:"food"`
}

// Cell is a grid coordinate in a config file.
type Cell struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// StartConfig defines the initial chain.
type StartConfig struct {
	Head      Cell   `yaml:"head"`
	Direction string `yaml:"direction"`
	Body      []Cell `yaml:"body"`
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Sampling Sampling `yaml:"sampling"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid snake config")

// Validate checks the config for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	var problems []string

	if c.Arena.Width < 1 || c.Arena.Height < 1 {
		problems = append(problems, fmt.Sprintf("arena must be at least 1x1, got %dx%d", c.Arena.Width, c.Arena.Height))
	}
	if c.Movement.TickPeriodMS <= 0 {
		problems = append(problems, fmt.Sprintf("tick_period_ms must be positive, got %d", c.Movement.TickPeriodMS))
	}
	sizes := []struct {
		name string
		v    float64
	}{{"head", c.Sizes.Head}, {"body", c.Sizes.Body}, {"food", c.Sizes.Food}}
	for _, sz := range sizes {
		if sz.v <= 0 || sz.v > 1 {
			problems = append(problems, fmt.Sprintf("sizes.%s must be in (0,1], got %g", sz.name, sz.v))
		}
	}
	if !c.inArena(c.Start.Head) {
		problems = append(problems, fmt.Sprintf("start.head (%d,%d) is outside the arena", c.Start.Head.X, c.Start.Head.Y))
	}
	if len(c.Start.Body) == 0 {
		problems = append(problems, "start.body needs at least one segment")
	}
	for i, b := range c.Start.Body {
		if !c.inArena(b) {
			problems = append(problems, fmt.Sprintf("start.body[%d] (%d,%d) is outside the arena", i, b.X, b.Y))
		}
	}
	switch strings.ToLower(c.Start.Direction) {
	case "left", "up", "right", "down":
	default:
		problems = append(problems, fmt.Sprintf("start.direction %q is not one of left, up, right, down", c.Start.Direction))
	}
	switch c.Food.Sampling {
	case SamplingUniform, SamplingFloatTruncate:
	default:
		problems = append(problems, fmt.Sprintf("food.sampling %q is not one of %s, %s", c.Food.Sampling, SamplingUniform, SamplingFloatTruncate))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func (c SnakeConfig) inArena(p Cell) bool {
	return p.X >= 0 && p.X < c.Arena.Width && p.Y >= 0 && p.Y < c.Arena.Height
}
