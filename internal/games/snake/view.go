package snake

import (
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Viewport maps arena cells onto terminal characters. A tile is twice as
// wide as it is tall so it looks square, and grid y is flipped so that
// heading Up moves towards the top of the screen.
type Viewport struct {
	arena   Arena
	originX int
	originY int
	tileW   int
	tileH   int
}

// NewViewport fits the arena into area, centred. It returns false when the
// area cannot give every cell at least one row and two columns.
func NewViewport(area core.Rect, arena Arena) (Viewport, bool) {
	if arena.Width < 1 || arena.Height < 1 {
		return Viewport{}, false
	}
	tileH := min(area.H/arena.Height, area.W/(2*arena.Width))
	if tileH < 1 {
		return Viewport{}, false
	}
	tileW := 2 * tileH

	return Viewport{
		arena:   arena,
		originX: area.X + (area.W-tileW*arena.Width)/2,
		originY: area.Y + (area.H-tileH*arena.Height)/2,
		tileW:   tileW,
		tileH:   tileH,
	}, true
}

// Bounds returns the screen rectangle covered by the arena.
func (v Viewport) Bounds() core.Rect {
	return core.NewRect(v.originX, v.originY, v.tileW*v.arena.Width, v.tileH*v.arena.Height)
}

// Transform returns the screen rectangle for an entity at p with the given
// logical size, centred in its tile and never smaller than one character.
func (v Viewport) Transform(p Position, size float64) core.Rect {
	tileX := v.originX + p.X*v.tileW
	tileY := v.originY + (v.arena.Height-1-p.Y)*v.tileH

	w := core.Clamp(int(math.Round(size*float64(v.tileW))), 1, v.tileW)
	h := core.Clamp(int(math.Round(size*float64(v.tileH))), 1, v.tileH)

	return core.NewRect(tileX+(v.tileW-w)/2, tileY+(v.tileH-h)/2, w, h)
}
