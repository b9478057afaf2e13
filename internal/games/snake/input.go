package snake

// Keys is the set of directional keys pressed during one frame.
type Keys struct {
	Left, Down, Up, Right bool
}

// Candidate returns the heading requested by the pressed keys, checked in
// the fixed precedence Left, Down, Up, Right. With no key pressed the
// current heading is returned unchanged.
func (k Keys) Candidate(current Direction) Direction {
	switch {
	case k.Left:
		return DirLeft
	case k.Down:
		return DirDown
	case k.Up:
		return DirUp
	case k.Right:
		return DirRight
	}
	return current
}

// ApplyInput updates the heading from this frame's keys and reports whether
// it changed. A candidate is rejected when it reverses either the current
// heading or the heading used by the last movement step; several frames can
// pass between two steps, and turning twice inside one step must not fold
// the head back into the neck.
func ApplyInput(s *State, k Keys) bool {
	candidate := k.Candidate(s.Heading)
	if candidate == s.Heading {
		return false
	}
	if candidate == s.Heading.Opposite() || candidate == s.stepHeading.Opposite() {
		return false
	}
	s.Heading = candidate
	return true
}
