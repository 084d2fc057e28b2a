package plan

import (
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/symbol"
)

// Unwind evaluates Expr per input row, requires a List, and emits one row
// per element bound to Output. Null: no rows for that parent row. A
// non-list, non-null result is a TypeError (spec §4.15).
type Unwind struct {
	Input  Operator
	Expr   expr.Node
	Output symbol.Symbol
}

func (*Unwind) isOperator() {}
