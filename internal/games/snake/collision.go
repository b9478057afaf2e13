package snake

// GrowthSignal marks one food item eaten during the current frame.
// Signals live for a single frame.
type GrowthSignal struct {
	FoodID EntityID
	At     Position
}

// ResolveCollisions removes every food item sitting exactly on the head and
// returns one signal per removed item. Several items on the same cell each
// produce their own signal.
func ResolveCollisions(s *State) []GrowthSignal {
	head, ok := s.Head()
	if !ok {
		return nil
	}

	var signals []GrowthSignal
	for _, f := range s.Food.Items() {
		if f.Pos != head.Pos {
			continue
		}
		s.Food.Remove(f.ID)
		signals = append(signals, GrowthSignal{FoodID: f.ID, At: f.Pos})
	}
	return signals
}
