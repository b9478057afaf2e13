package snake

import "errors"

// ErrNoTailPosition is returned when growth is requested before any
// movement step has recorded a tail position. It indicates a phase ordering
// fault, not a gameplay condition.
var ErrNoTailPosition = errors.New("snake: growth before first movement step")

// Grow appends one segment at the pre-move tail position if at least one
// signal was raised this frame. Any number of signals yields exactly one
// new segment. It reports whether a segment was added.
func Grow(s *State, signals []GrowthSignal) (bool, error) {
	if len(signals) == 0 {
		return false, nil
	}

	tail, ok := s.LastTail()
	if !ok {
		return false, ErrNoTailPosition
	}

	s.Chain = append(s.Chain, Segment{ID: s.newID(), Pos: tail})
	return true, nil
}
