package snake

// EntityID identifies a segment or food item for the lifetime of a simulation.
// Segments and food share one ID space.
type EntityID uint64

// Segment is one link of the body chain, including the head.
type Segment struct {
	ID  EntityID
	Pos Position
}

// Food is an edible item on the arena.
type Food struct {
	ID  EntityID
	Pos Position
}

// FoodSet holds the live food items keyed by ID. Iteration follows
// insertion order so a seeded run is reproducible.
type FoodSet struct {
	order []EntityID
	byID  map[EntityID]Position
}

// NewFoodSet creates an empty set.
func NewFoodSet() *FoodSet {
	return &FoodSet{byID: make(map[EntityID]Position)}
}

// Add inserts a food item. Items at the same cell are kept separately.
func (fs *FoodSet) Add(f Food) {
	if _, ok := fs.byID[f.ID]; ok {
		return
	}
	fs.byID[f.ID] = f.Pos
	fs.order = append(fs.order, f.ID)
}

// Remove deletes the item with the given ID and reports whether it existed.
func (fs *FoodSet) Remove(id EntityID) bool {
	if _, ok := fs.byID[id]; !ok {
		return false
	}
	delete(fs.byID, id)
	for i, v := range fs.order {
		if v == id {
			fs.order = append(fs.order[:i], fs.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the food with the given ID.
func (fs *FoodSet) Get(id EntityID) (Food, bool) {
	pos, ok := fs.byID[id]
	return Food{ID: id, Pos: pos}, ok
}

// Len returns the number of live food items.
func (fs *FoodSet) Len() int {
	return len(fs.order)
}

// Items returns a copy of all live food in insertion order.
func (fs *FoodSet) Items() []Food {
	items := make([]Food, len(fs.order))
	for i, id := range fs.order {
		items[i] = Food{ID: id, Pos: fs.byID[id]}
	}
	return items
}

// State is the complete mutable state of one simulation: the segment chain,
// the heading, the food set and the pre-move tail position. It is owned by a
// single Simulation and handed to each phase function in turn.
type State struct {
	Arena   Arena
	Heading Direction
	Chain   []Segment // Head at index 0
	Food    *FoodSet

	stepHeading Direction // Heading used by the most recent movement step
	lastTail    Position
	hasLastTail bool
	nextID      EntityID
}

// NewState creates the initial chain: the head at head facing heading,
// followed by one segment per body position.
func NewState(arena Arena, head Position, heading Direction, body []Position) *State {
	s := &State{
		Arena:       arena,
		Heading:     heading,
		stepHeading: heading,
		Food:        NewFoodSet(),
	}
	s.Chain = append(s.Chain, Segment{ID: s.newID(), Pos: arena.Wrap(head)})
	for _, p := range body {
		s.Chain = append(s.Chain, Segment{ID: s.newID(), Pos: arena.Wrap(p)})
	}
	return s
}

// newID allocates the next entity ID.
func (s *State) newID() EntityID {
	s.nextID++
	return s.nextID
}

// Head returns the head segment, or false for an empty chain.
func (s *State) Head() (Segment, bool) {
	if len(s.Chain) == 0 {
		return Segment{}, false
	}
	return s.Chain[0], true
}

// LastTail returns the tail position recorded before the latest movement
// step, or false if no step has happened yet.
func (s *State) LastTail() (Position, bool) {
	return s.lastTail, s.hasLastTail
}

// Positions returns the segment positions in chain order.
func (s *State) Positions() []Position {
	out := make([]Position, len(s.Chain))
	for i, seg := range s.Chain {
		out[i] = seg.Pos
	}
	return out
}
