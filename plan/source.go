package plan

import (
	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/symbol"
)

// Once yields exactly one empty row, then is exhausted. The leaf of
// mutation-only pipelines (spec §4.2).
type Once struct{}

func (*Once) isOperator() {}

// ScanAll iterates the vertex set under View. View must be Old or New — AS_IS
// is illegal for a bare ScanAll (spec §4.2).
type ScanAll struct {
	Input  Operator
	Output symbol.Symbol
	View   accessor.View
}

func (*ScanAll) isOperator() {}

// ScanAllByLabel restricts ScanAll to an in-memory label index.
type ScanAllByLabel struct {
	Input  Operator
	Output symbol.Symbol
	Label  string
	View   accessor.View
}

func (*ScanAllByLabel) isOperator() {}

// ScanAllByLabelPropertyValue evaluates Expr per parent row and scans the
// (Label, Property, value) index. A Null Expr result yields no rows for
// that parent row (spec §4.2).
type ScanAllByLabelPropertyValue struct {
	Input    Operator
	Output   symbol.Symbol
	Label    string
	Property string
	Expr     expr.Node
	View     accessor.View
}

func (*ScanAllByLabelPropertyValue) isOperator() {}

// ScanAllByLabelPropertyRange evaluates Lower/Upper per parent row and
// scans the (Label, Property) range index. At least one bound must be
// set; each bound is independently inclusive/exclusive (spec §4.2).
type ScanAllByLabelPropertyRange struct {
	Input          Operator
	Output         symbol.Symbol
	Label          string
	Property       string
	Lower          expr.Node // nil if unbounded below
	LowerInclusive bool
	Upper          expr.Node // nil if unbounded above
	UpperInclusive bool
	View           accessor.View
}

func (*ScanAllByLabelPropertyRange) isOperator() {}
