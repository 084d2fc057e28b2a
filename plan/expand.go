package plan

import (
	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/symbol"
)

// Expand produces, per input row, one row per incident edge of
// frame[InputSymbol] (spec §4.3).
type Expand struct {
	Input        Operator
	InputSymbol  symbol.Symbol
	NodeSymbol   symbol.Symbol
	EdgeSymbol   symbol.Symbol
	Direction    accessor.Direction
	ExistingNode bool
	ExistingEdge bool
	View         accessor.View
}

func (*Expand) isOperator() {}

// UniquenessKind selects which handle type ExpandUniquenessFilter compares.
type UniquenessKind int

const (
	UniqueVertex UniquenessKind = iota
	UniqueEdge
)

// ExpandUniquenessFilter rejects a row iff frame[Current] equals any of
// frame[Previous...]. Enforces Cypher's edge-uniqueness rule (and
// optionally node-uniqueness, where the planner inserts it) within a
// single MATCH pattern (spec §4.4).
type ExpandUniquenessFilter struct {
	Input    Operator
	Kind     UniquenessKind
	Current  symbol.Symbol
	Previous []symbol.Symbol
}

func (*ExpandUniquenessFilter) isOperator() {}

// Cartesian combines two independent input cursors by nested loop: every
// row of Left paired with every row of Right. Not named in spec.md's
// operator list, but implied by §4.2's ScanAll note about "supporting
// nested Cartesian products" for a disconnected multi-pattern MATCH; the
// distilled spec assumes it exists without giving it a name.
type Cartesian struct {
	Left  Operator
	Right Operator
}

func (*Cartesian) isOperator() {}
