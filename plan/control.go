package plan

import (
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/symbol"
)

// Skip evaluates Expr once, at first pull; it must be Int >= 0. Discards
// the first N input rows, then passes through (spec §4.10).
type Skip struct {
	Input Operator
	Expr  expr.Node
}

func (*Skip) isOperator() {}

// Limit evaluates Expr once, at first pull; it must be Int >= 0. Passes
// through, returning false after N emissions (spec §4.10).
type Limit struct {
	Input Operator
	Expr  expr.Node
}

func (*Limit) isOperator() {}

// SortDirection is ASC or DESC for one OrderBy key.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

// OrderBySpec is one sort key.
type OrderBySpec struct {
	Expr      expr.Node
	Direction SortDirection
}

// OrderBy blocks: drains Input, sorts stably by OrderBy keys, and emits
// Items' evaluated values written back to their output symbols (spec
// §4.11).
type OrderBy struct {
	Input   Operator
	OrderBy []OrderBySpec
	Items   []ProduceItem
}

func (*OrderBy) isOperator() {}

// Distinct streams with a memo: emits only rows whose Symbols tuple hasn't
// been seen before, using BoolEqual (Null != Null) (spec §4.12).
type Distinct struct {
	Input   Operator
	Symbols []symbol.Symbol
}

func (*Distinct) isOperator() {}
