package plan

import (
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/symbol"
)

// AggregateOp is the closed set of reducers (spec §4.9).
type AggregateOp int

const (
	AggCount AggregateOp = iota
	AggSum
	AggMin
	AggMax
	AggAvg
	AggCollect
)

// AggregateSpec describes one aggregation slot. Expr == nil means COUNT(*):
// increments unconditionally, never skipped for Null (spec §4.9 step 3).
type AggregateSpec struct {
	Expr   expr.Node
	Op     AggregateOp
	Output symbol.Symbol
}

// Aggregate blocks: groups input rows by GroupBy, reduces each group's
// Aggregations, and places Remember symbol values (taken from an arbitrary
// row of the group) onto the output frame alongside the reduced values
// (spec §4.9).
type Aggregate struct {
	Input        Operator
	Aggregations []AggregateSpec
	GroupBy      []expr.Node
	Remember     []symbol.Symbol
}

func (*Aggregate) isOperator() {}
