// Package plan defines the planned operator tree the engine consumes: a
// tagged-union Operator type per spec §9 ("Re-architect as a tagged-variant
// operator type; each variant carries its configuration and a make_cursor
// function"). Package exec provides the make_cursor fold over this
// variant set; this package only describes shape, never executes.
//
// Each operator type is sealed via an unexported marker method, mirroring
// the teacher's plandef.Operator / plandef.Term sealing convention — a
// closed set the compiler can exhaustively switch over.
package plan

import (
	"github.com/panda-sheep/memgraph/symbol"
)

// Operator is any planned operator-tree node.
type Operator interface {
	isOperator()
}

// Plan is the full planned query: a root Operator, the symbol table that
// assigned every position referenced anywhere in the tree, and the
// symbols a top-level Pull should extract into its output row (spec §6.2,
// §6.3).
type Plan struct {
	Root    Operator
	Symbols *symbol.Table
	Output  []symbol.Symbol
}
