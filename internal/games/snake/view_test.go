package snake

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestNewViewport(t *testing.T) {
	tests := []struct {
		name     string
		area     core.Rect
		ok       bool
		expected core.Rect
	}{
		{"exact fit", core.NewRect(0, 0, 40, 20), true, core.NewRect(0, 0, 40, 20)},
		{"centred", core.NewRect(0, 0, 50, 30), true, core.NewRect(5, 5, 40, 20)},
		{"offset area", core.NewRect(2, 3, 20, 10), true, core.NewRect(2, 3, 20, 10)},
		{"too narrow", core.NewRect(0, 0, 19, 30), false, core.Rect{}},
		{"too short", core.NewRect(0, 0, 80, 9), false, core.Rect{}},
	}

	arena := Arena{Width: 10, Height: 10}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vp, ok := NewViewport(tc.area, arena)
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if ok && vp.Bounds() != tc.expected {
				t.Errorf("Bounds() = %+v, expected %+v", vp.Bounds(), tc.expected)
			}
		})
	}
}

func TestViewportTransform(t *testing.T) {
	vp, ok := NewViewport(core.NewRect(0, 0, 40, 20), Arena{Width: 10, Height: 10})
	if !ok {
		t.Fatal("viewport should fit")
	}

	tests := []struct {
		name     string
		pos      Position
		size     float64
		expected core.Rect
	}{
		{"origin cell is bottom left", Position{0, 0}, 1, core.NewRect(0, 18, 4, 2)},
		{"top right", Position{9, 9}, 1, core.NewRect(36, 0, 4, 2)},
		{"scaled and centred", Position{0, 0}, 0.8, core.NewRect(0, 18, 3, 2)},
		{"never below one character", Position{0, 0}, 0.1, core.NewRect(1, 18, 1, 1)},
		{"never above one tile", Position{5, 5}, 3, core.NewRect(20, 8, 4, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.Transform(tc.pos, tc.size); got != tc.expected {
				t.Errorf("Transform(%v, %v) = %+v, expected %+v", tc.pos, tc.size, got, tc.expected)
			}
		})
	}
}

func TestViewportUpIsTowardsTop(t *testing.T) {
	vp, _ := NewViewport(core.NewRect(0, 0, 40, 20), Arena{Width: 10, Height: 10})
	low := vp.Transform(Position{3, 3}, 1)
	high := vp.Transform(Position{3, 4}, 1)
	if high.Y >= low.Y {
		t.Errorf("y+1 should render higher: %d vs %d", high.Y, low.Y)
	}
}
