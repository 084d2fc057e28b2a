package plan

import (
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/symbol"
)

// ProduceItem pairs an expression with the output symbol it's projected
// into.
type ProduceItem struct {
	Expr   expr.Node
	Output symbol.Symbol
}

// Produce evaluates each Item under NEW and writes results to their
// output symbols. Streaming; no accumulation (spec §4.7).
type Produce struct {
	Input Operator
	Items []ProduceItem
}

func (*Produce) isOperator() {}

// Accumulate blocks: drains Input into an in-memory row cache of Symbols.
// If AdvanceCommand is set, it calls db.AdvanceCommand() then reconstructs
// every accessor in the cache (spec §4.8).
type Accumulate struct {
	Input          Operator
	Symbols        []symbol.Symbol
	AdvanceCommand bool
}

func (*Accumulate) isOperator() {}
