package snake

import (
	"fmt"
	"strings"
)

// Direction represents the snake's heading.
type Direction int

const (
	DirLeft Direction = iota
	DirUp
	DirRight
	DirDown
)

// Opposite returns the reverse heading: Left<->Right, Up<->Down.
func (d Direction) Opposite() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	default:
		return DirUp
	}
}

// Delta returns the unit step for the heading. Grid y grows upwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the direction by name.
func (d Direction) MarshalYAML() (any, error) {
	return d.String(), nil
}

// ParseDirection parses a direction name (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirLeft, nil
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	}
	return DirUp, fmt.Errorf("snake: unknown direction %q", s)
}
