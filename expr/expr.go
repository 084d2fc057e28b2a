// Package expr implements the expression evaluator: it recursively
// evaluates an expression tree against the frame and the graph accessor,
// under a caller-chosen view (spec §4.5 "Expression Evaluator"). The node
// types form a small, closed tagged union — planner contract violations
// (an unexpected node type) panic, the same way the teacher's own
// expression evaluator dispatch panics on an unexpected AST shape; only
// data-dependent failures (NOT on a non-boolean, arithmetic on a
// non-number, a property lookup on a non-entity) become returned errors.
package expr

import "github.com/panda-sheep/memgraph/value"

// Node is sealed: every expression tree node implements it via the
// unexported marker, mirroring the teacher's plandef.Term sealing.
type Node interface {
	isNode()
}

// Literal is a constant value baked into the plan.
type Literal struct {
	Value value.Value
}

func (*Literal) isNode() {}

// SymbolRef reads a frame slot by position.
type SymbolRef struct {
	Name     string
	Position int
}

func (*SymbolRef) isNode() {}

// Parameter reads a named query parameter supplied at Run time.
type Parameter struct {
	Name string
}

func (*Parameter) isNode() {}

// PropertyLookup evaluates Target (expected to yield a Vertex or Edge, or
// Null) and reads Key from it under the evaluator's current view.
type PropertyLookup struct {
	Target Node
	Key    string
}

func (*PropertyLookup) isNode() {}

// UnaryOperator is the closed set of unary operators.
type UnaryOperator int

const (
	Neg UnaryOperator = iota
	Not
	IsNull
	IsNotNull
)

// UnaryOp applies a UnaryOperator to Operand.
type UnaryOp struct {
	Op      UnaryOperator
	Operand Node
}

func (*UnaryOp) isNode() {}

// BinaryOperator is the closed set of binary operators.
type BinaryOperator int

const (
	Add BinaryOperator = iota
	Sub
	Mul
	Div
	Mod
	Eq
	Neq
	Lt
	Lte
	Gt
	Gte
	And
	Or
	In // list membership: Left IN Right, Right must evaluate to a List
)

// BinaryOp applies a BinaryOperator to Left and Right.
type BinaryOp struct {
	Op    BinaryOperator
	Left  Node
	Right Node
}

func (*BinaryOp) isNode() {}

// FunctionCall invokes one of the evaluator's built-in functions (§ "Expression
// Evaluator" supplement: size/length, labels/type, id, coalesce, exists).
type FunctionCall struct {
	Name string
	Args []Node
}

func (*FunctionCall) isNode() {}

// ListLiteral evaluates each Item and collects them into a List Value.
type ListLiteral struct {
	Items []Node
}

func (*ListLiteral) isNode() {}

// MapLiteral evaluates each Entries value and collects them into a Map
// Value, e.g. as SetProperties's map source.
type MapLiteral struct {
	Entries map[string]Node
}

func (*MapLiteral) isNode() {}
