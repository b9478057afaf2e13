package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	g.renderHUD(dst)

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).Inset(1)
	vp, ok := NewViewport(area, g.sim.Settings().Arena)
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(vp.Bounds().Inset(-1), core.ColorDarkGray)

	for _, e := range g.sim.Entities() {
		r := vp.Transform(e.Pos, e.Size)
		dst.DrawRect(r, '█', entityColor(e.Kind))
	}

	switch {
	case g.fault != nil:
		g.renderOverlay(dst, "Simulation halted", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

func entityColor(k Kind) core.Color {
	switch k {
	case KindHead:
		return core.ColorBrightWhite
	case KindSegment:
		return core.ColorGray
	default:
		return core.ColorBrightMagenta
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.sim.Snapshot()
	hud := fmt.Sprintf(" Snake | Length: %d  Eaten: %d  Food: %d  Tick: %d",
		snap.Length, snap.FoodEaten, len(snap.Food), snap.Tick)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDarkGray)
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := full.Centered(max(len(line1), len(line2))+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorDefault)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorYellow)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}
