// Package value implements the dynamically-typed cell value used on the
// row frame and inside expressions. It centralizes every type conversion
// and coercion rule so that the evaluator and the operator cursors can
// pattern-match rather than dispatch through virtual methods.
package value

import "fmt"

// Type identifies a Value's variant.
type Type int

// The closed set of value variants. Kept narrow by design: anything that
// doesn't fit one of these is not a legal cell on the frame.
const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeDouble
	TypeString
	TypeList
	TypeMap
	TypeVertex
	TypeEdge
	TypePath
)

func (t Type) String() string {
	switch t {
	case TypeNull:
		return "Null"
	case TypeBool:
		return "Bool"
	case TypeInt:
		return "Int"
	case TypeDouble:
		return "Double"
	case TypeString:
		return "String"
	case TypeList:
		return "List"
	case TypeMap:
		return "Map"
	case TypeVertex:
		return "Vertex"
	case TypeEdge:
		return "Edge"
	case TypePath:
		return "Path"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// VertexHandle and EdgeHandle are the opaque accessor references a Value can
// carry. They're defined here as minimal interfaces (rather than importing
// package accessor) so that package accessor can in turn depend on package
// value without an import cycle; package accessor's concrete accessor types
// satisfy these.
type VertexHandle interface {
	// Equal reports whether two handles refer to the same record, regardless
	// of which version of the record each currently has switched to.
	Equal(VertexHandle) bool
}

type EdgeHandle interface {
	Equal(EdgeHandle) bool
}

// PathStep is one vertex-or-edge element of a Path, in traversal order:
// a Path alternates Vertex, Edge, Vertex, Edge, ..., Vertex.
type PathStep struct {
	Vertex VertexHandle // set iff Edge == nil
	Edge   EdgeHandle   // set iff Vertex == nil
}

// Path is an alternating sequence of vertex/edge accessor handles.
type Path struct {
	Steps []PathStep
}

// Value is a tagged union. Only the field matching Typ is meaningful; all
// others are zero. Passed and returned by value: the variable-length
// variants (String, List, Map, Path) hold their payload behind a slice/map
// header, which is already a reference, so copying a Value never deep-copies
// the payload.
type Value struct {
	Typ    Type
	Bool   bool
	Int    int64
	Double float64
	Str    string
	List   []Value
	Map    map[string]Value
	Vertex VertexHandle
	Edge   EdgeHandle
	Path   Path
}

// Null is the zero Value of TypeNull, safe to use as a literal.
var Null = Value{Typ: TypeNull}

func NewBool(b bool) Value        { return Value{Typ: TypeBool, Bool: b} }
func NewInt(i int64) Value        { return Value{Typ: TypeInt, Int: i} }
func NewDouble(d float64) Value   { return Value{Typ: TypeDouble, Double: d} }
func NewString(s string) Value    { return Value{Typ: TypeString, Str: s} }
func NewList(l []Value) Value     { return Value{Typ: TypeList, List: l} }
func NewMap(m map[string]Value) Value {
	return Value{Typ: TypeMap, Map: m}
}
func NewVertex(v VertexHandle) Value { return Value{Typ: TypeVertex, Vertex: v} }
func NewEdge(e EdgeHandle) Value     { return Value{Typ: TypeEdge, Edge: e} }
func NewPath(p Path) Value           { return Value{Typ: TypePath, Path: p} }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.Typ == TypeNull }

// IsNumeric reports whether v is Int or Double.
func (v Value) IsNumeric() bool { return v.Typ == TypeInt || v.Typ == TypeDouble }

// AsDouble returns v's numeric value widened to float64. Only valid when
// IsNumeric() is true; callers must check first.
func (v Value) AsDouble() float64 {
	if v.Typ == TypeInt {
		return float64(v.Int)
	}
	return v.Double
}

func (v Value) String() string {
	switch v.Typ {
	case TypeNull:
		return "null"
	case TypeBool:
		return fmt.Sprintf("%t", v.Bool)
	case TypeInt:
		return fmt.Sprintf("%d", v.Int)
	case TypeDouble:
		return fmt.Sprintf("%g", v.Double)
	case TypeString:
		return v.Str
	case TypeList:
		return fmt.Sprintf("%v", v.List)
	case TypeMap:
		return fmt.Sprintf("%v", v.Map)
	case TypeVertex:
		return fmt.Sprintf("Vertex(%v)", v.Vertex)
	case TypeEdge:
		return fmt.Sprintf("Edge(%v)", v.Edge)
	case TypePath:
		return fmt.Sprintf("Path(%d steps)", len(v.Path.Steps))
	default:
		return "?"
	}
}
