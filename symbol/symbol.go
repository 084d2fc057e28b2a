// Package symbol assigns each named entity in a planned query a stable
// positional slot, and defines the Frame those slots live in at runtime.
package symbol

import "fmt"

// Symbol is a compile-time identifier for a named frame slot. Two Symbols
// with the same Name are distinct if they were created separately by the
// planner (e.g. a variable reused across two MATCH clauses with different
// scopes) — identity is by Position, not Name.
type Symbol struct {
	Name         string
	Position     int
	UserDeclared bool
}

func (s Symbol) String() string {
	return fmt.Sprintf("%s@%d", s.Name, s.Position)
}

// Table assigns dense, consecutive positions to Symbols as the planner
// creates them. The engine itself never creates Symbols — it only reads
// Table.MaxPosition to size a Frame and indexes into the Frame by the
// Positions the planner already assigned.
type Table struct {
	symbols []Symbol
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{}
}

// Create allocates a new Symbol at the next free position.
func (t *Table) Create(name string, userDeclared bool) Symbol {
	s := Symbol{Name: name, Position: len(t.symbols), UserDeclared: userDeclared}
	t.symbols = append(t.symbols, s)
	return s
}

// MaxPosition returns one past the highest Position handed out, i.e. the
// size a Frame needs to be to hold every Symbol this Table has created.
func (t *Table) MaxPosition() int {
	return len(t.symbols)
}

// All returns every Symbol this Table has created, in Position order.
func (t *Table) All() []Symbol {
	return t.symbols
}
