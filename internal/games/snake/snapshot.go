package snake

// Snapshot captures the simulation state for determinism testing, the
// inspector and the headless runner.
type Snapshot struct {
	Frame       uint64     `yaml:"frame"`
	Tick        uint64     `yaml:"tick"`
	Heading     Direction  `yaml:"heading"`
	Length      int        `yaml:"length"`
	FoodEaten   int        `yaml:"food_eaten"`
	LastSignals int        `yaml:"last_signals"`
	Segments    []Position `yaml:"segments"`
	Food        []Position `yaml:"food"`
}

// Snapshot returns the current simulation snapshot.
func (sim *Simulation) Snapshot() Snapshot {
	st := sim.state
	food := make([]Position, 0, st.Food.Len())
	for _, f := range st.Food.Items() {
		food = append(food, f.Pos)
	}

	return Snapshot{
		Frame:       sim.frames,
		Tick:        sim.ticks,
		Heading:     st.Heading,
		Length:      len(st.Chain),
		FoodEaten:   sim.foodEaten,
		LastSignals: sim.lastSignals,
		Segments:    st.Positions(),
		Food:        food,
	}
}
