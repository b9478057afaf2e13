package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Position is a cell on the arena grid.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Add returns p shifted by (dx, dy). The result is not wrapped.
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Arena is the toroidal grid every position wraps within.
type Arena struct {
	Width  int
	Height int
}

// Wrap reduces p into [0,Width)x[0,Height), each axis independently.
func (a Arena) Wrap(p Position) Position {
	return Position{
		X: core.Mod(p.X, a.Width),
		Y: core.Mod(p.Y, a.Height),
	}
}

// Contains reports whether p is already inside the arena.
func (a Arena) Contains(p Position) bool {
	return p.X >= 0 && p.X < a.Width && p.Y >= 0 && p.Y < a.Height
}
