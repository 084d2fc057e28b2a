package plan

import (
	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/symbol"
)

// PropertySpec pairs a property key with the expression that computes its
// value, used by CreateNode/CreateExpand's literal property maps.
type PropertySpec struct {
	Key  string
	Expr expr.Node
}

// CreateNode inserts a vertex per input row, applies Labels and evaluated
// Properties (under NEW), and binds the result to Output (spec §4.6).
type CreateNode struct {
	Input      Operator
	Output     symbol.Symbol
	Labels     []string
	Properties []PropertySpec
}

func (*CreateNode) isOperator() {}

// CreateExpand creates an edge (and, unless ExistingNode, the other
// endpoint vertex) from frame[InputSymbol] per input row (spec §4.6).
// Direction == Both is only legal when the planner produced this for
// MERGE, never for a bare CREATE.
type CreateExpand struct {
	Input          Operator
	InputSymbol    symbol.Symbol
	NodeOutput     symbol.Symbol
	NodeLabels     []string
	NodeProperties []PropertySpec
	ExistingNode   bool
	EdgeOutput     symbol.Symbol
	EdgeType       string
	EdgeProperties []PropertySpec
	Direction      accessor.Direction
}

func (*CreateExpand) isOperator() {}

// Delete accumulates every Exprs result for the row, then deletes edges
// before vertices. Vertex deletion without Detach fails if the vertex
// still has incident edges. Deleting Null is a no-op (spec §4.6).
type Delete struct {
	Input  Operator
	Exprs  []expr.Node
	Detach bool
}

func (*Delete) isOperator() {}

// SetProperty evaluates Rhs under NEW and writes it to the property Lhs
// names. A Null Lhs target is a no-op (spec §4.6).
type SetProperty struct {
	Input Operator
	Lhs   *expr.PropertyLookup
	Rhs   expr.Node
}

func (*SetProperty) isOperator() {}

// PropertiesOp selects SetProperties's merge behavior.
type PropertiesOp int

const (
	PropertiesUpdate PropertiesOp = iota
	PropertiesReplace
)

// SetProperties copies properties from evaluating Rhs (another Vertex/Edge,
// or a Map) onto frame[Target]. Op == PropertiesReplace clears the target's
// properties first (spec §4.6).
type SetProperties struct {
	Input  Operator
	Target symbol.Symbol
	Rhs    expr.Node
	Op     PropertiesOp
}

func (*SetProperties) isOperator() {}

// SetLabels idempotently adds Labels to frame[Target]. Null target: no-op;
// non-Vertex: raise (spec §4.6).
type SetLabels struct {
	Input  Operator
	Target symbol.Symbol
	Labels []string
}

func (*SetLabels) isOperator() {}

// RemoveProperty is the dual of SetProperty: erases the property Lhs names.
type RemoveProperty struct {
	Input Operator
	Lhs   *expr.PropertyLookup
}

func (*RemoveProperty) isOperator() {}

// RemoveLabels is the dual of SetLabels.
type RemoveLabels struct {
	Input  Operator
	Target symbol.Symbol
	Labels []string
}

func (*RemoveLabels) isOperator() {}

// Foreach evaluates ListExpr per input row, then runs Body once per
// element with ElementOutput bound to that element, discarding Body's
// output rows (it exists for its mutation side effects). Not named in
// spec.md's distillation, but present in the Cypher-engine family this
// spec comes from as UNWIND's natural sibling for per-element mutation
// (SPEC_FULL.md §8 supplement).
type Foreach struct {
	Input         Operator
	ListExpr      expr.Node
	ElementOutput symbol.Symbol
	Body          Operator
}

func (*Foreach) isOperator() {}
