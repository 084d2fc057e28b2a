package symbol

import "github.com/panda-sheep/memgraph/value"

// Frame is a fixed-size positional vector of Value, sized to a Table's
// MaxPosition. It is created once per top-level pull context and reused
// across rows: each pull overwrites the slots its operator owns, never
// reallocates. Operators never share frame slots they don't own — that
// invariant is a planner guarantee, not something Frame enforces.
type Frame struct {
	slots []value.Value
}

// NewFrame allocates a Frame sized to hold every Symbol in t.
func NewFrame(t *Table) *Frame {
	return &Frame{slots: make([]value.Value, t.MaxPosition())}
}

// Get reads the slot for s.
func (f *Frame) Get(s Symbol) value.Value {
	return f.slots[s.Position]
}

// Set writes the slot for s.
func (f *Frame) Set(s Symbol, v value.Value) {
	f.slots[s.Position] = v
}

// Row extracts the slots for the given output symbols, in order, as a
// plain slice — the shape a top-level pull hands back to its caller.
func (f *Frame) Row(outputs []Symbol) []value.Value {
	row := make([]value.Value, len(outputs))
	for i, s := range outputs {
		row[i] = f.slots[s.Position]
	}
	return row
}

// Snapshot copies every slot, for a blocking operator (OrderBy) that
// must cache a whole row and replay it against the shared Frame later.
func (f *Frame) Snapshot() []value.Value {
	row := make([]value.Value, len(f.slots))
	copy(row, f.slots)
	return row
}

// Restore overwrites every slot from a prior Snapshot.
func (f *Frame) Restore(snapshot []value.Value) {
	copy(f.slots, snapshot)
}
