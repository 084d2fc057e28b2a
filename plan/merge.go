package plan

import "github.com/panda-sheep/memgraph/symbol"

// Merge runs, per input row, MergeMatch to completion; if it yielded zero
// rows, runs MergeCreate exactly once instead (spec §4.13).
type Merge struct {
	Input       Operator
	MergeMatch  Operator
	MergeCreate Operator
}

func (*Merge) isOperator() {}

// Optional runs Branch per input row; if it yields nothing, sets every
// Symbols entry to Null and emits once instead (spec §4.14).
type Optional struct {
	Input   Operator
	Branch  Operator
	Symbols []symbol.Symbol
}

func (*Optional) isOperator() {}
