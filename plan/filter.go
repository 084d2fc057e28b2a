package plan

import "github.com/panda-sheep/memgraph/expr"

// Filter evaluates Expr per input row under the OLD view and drops rows
// where the result isn't true (spec §4.5).
type Filter struct {
	Input Operator
	Expr  expr.Node
}

func (*Filter) isOperator() {}
