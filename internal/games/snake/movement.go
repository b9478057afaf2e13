package snake

// Move advances the chain one cell along the current heading.
//
// Every position is captured before anything is written. The head steps to
// its snapshot position plus the heading delta, wrapped around the arena;
// each following segment takes the snapshot position of its predecessor.
// The snapshot tail is kept for growth. Overlapping the body is allowed.
func Move(s *State) {
	if len(s.Chain) == 0 {
		return
	}

	snapshot := s.Positions()

	dx, dy := s.Heading.Delta()
	s.Chain[0].Pos = s.Arena.Wrap(snapshot[0].Add(dx, dy))

	for i := 1; i < len(s.Chain); i++ {
		s.Chain[i].Pos = snapshot[i-1]
	}

	s.lastTail = snapshot[len(snapshot)-1]
	s.hasLastTail = true
	s.stepHeading = s.Heading
}
