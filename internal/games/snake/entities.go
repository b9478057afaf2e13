package snake

// Kind tells the presentation layer what an entity is.
type Kind int

const (
	KindHead Kind = iota
	KindSegment
	KindFood
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindSegment:
		return "segment"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// Entity is the read-only view of one live entity: its cell and its
// logical square size relative to a cell.
type Entity struct {
	ID   EntityID
	Kind Kind
	Pos  Position
	Size float64
}

// Entities lists food first, then the chain from tail to head, so a painter
// drawing in order leaves the head on top.
func (sim *Simulation) Entities() []Entity {
	st := sim.state
	sz := sim.settings.Sizes
	out := make([]Entity, 0, st.Food.Len()+len(st.Chain))

	for _, f := range st.Food.Items() {
		out = append(out, Entity{ID: f.ID, Kind: KindFood, Pos: f.Pos, Size: sz.Food})
	}
	for i := len(st.Chain) - 1; i >= 0; i-- {
		seg := st.Chain[i]
		e := Entity{ID: seg.ID, Kind: KindSegment, Pos: seg.Pos, Size: sz.Body}
		if i == 0 {
			e.Kind = KindHead
			e.Size = sz.Head
		}
		out = append(out, e)
	}
	return out
}
