package expr

import (
	"context"
	"fmt"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// Context bundles everything Eval needs besides the Node itself: the
// running row's Frame, the graph accessor, which view property lookups
// should read through, and the query's bound parameters.
type Context struct {
	Frame    *symbol.Frame
	DB       accessor.GraphDbAccessor
	View     accessor.View
	Params   map[string]value.Value
}

// Eval recursively evaluates n against ec. Unexpected node types (a
// planner-contract violation, never a data problem) panic; data-dependent
// failures (NOT on a non-boolean, incomparable comparison, property lookup
// on a non-entity) return a *qerror.Error. Errors from the accessor are
// returned unchanged.
func Eval(ctx context.Context, ec *Context, n Node) (value.Value, error) {
	switch n := n.(type) {
	case *Literal:
		return n.Value, nil
	case *SymbolRef:
		return ec.Frame.Get(symbol.Symbol{Name: n.Name, Position: n.Position}), nil
	case *Parameter:
		v, ok := ec.Params[n.Name]
		if !ok {
			return value.Null, nil
		}
		return v, nil
	case *PropertyLookup:
		return evalPropertyLookup(ctx, ec, n)
	case *UnaryOp:
		return evalUnary(ctx, ec, n)
	case *BinaryOp:
		return evalBinary(ctx, ec, n)
	case *FunctionCall:
		return evalFunction(ctx, ec, n)
	case *ListLiteral:
		items := make([]value.Value, len(n.Items))
		for i, item := range n.Items {
			v, err := Eval(ctx, ec, item)
			if err != nil {
				return value.Null, err
			}
			items[i] = v
		}
		return value.NewList(items), nil
	case *MapLiteral:
		m := make(map[string]value.Value, len(n.Entries))
		for k, item := range n.Entries {
			v, err := Eval(ctx, ec, item)
			if err != nil {
				return value.Null, err
			}
			m[k] = v
		}
		return value.NewMap(m), nil
	default:
		panic(fmt.Sprintf("expr: unexpected node type %T", n))
	}
}

func evalPropertyLookup(ctx context.Context, ec *Context, n *PropertyLookup) (value.Value, error) {
	target, err := Eval(ctx, ec, n.Target)
	if err != nil {
		return value.Null, err
	}
	switch target.Typ {
	case value.TypeNull:
		return value.Null, nil
	case value.TypeVertex:
		va, ok := target.Vertex.(accessor.VertexAccessor)
		if !ok {
			panic("expr: vertex handle does not implement accessor.VertexAccessor")
		}
		if err := va.Switch(ctx, ec.View); err != nil {
			return value.Null, err
		}
		return va.Property(ctx, n.Key)
	case value.TypeEdge:
		ea, ok := target.Edge.(accessor.EdgeAccessor)
		if !ok {
			panic("expr: edge handle does not implement accessor.EdgeAccessor")
		}
		if err := ea.Switch(ctx, ec.View); err != nil {
			return value.Null, err
		}
		return ea.Property(ctx, n.Key)
	default:
		return value.Null, qerror.TypeErrorf("property lookup on non-entity value of type %s", target.Typ)
	}
}

func evalUnary(ctx context.Context, ec *Context, n *UnaryOp) (value.Value, error) {
	v, err := Eval(ctx, ec, n.Operand)
	if err != nil {
		return value.Null, err
	}
	switch n.Op {
	case Neg:
		out, err := value.Neg(v)
		if err != nil {
			return value.Null, qerror.Wrap(qerror.KindType, err, "unary minus on non-numeric value")
		}
		return out, nil
	case Not:
		if v.IsNull() {
			return value.Null, nil
		}
		if v.Typ != value.TypeBool {
			return value.Null, qerror.TypeErrorf("NOT applied to non-boolean value of type %s", v.Typ)
		}
		return value.NewBool(!v.Bool), nil
	case IsNull:
		return value.NewBool(v.IsNull()), nil
	case IsNotNull:
		return value.NewBool(!v.IsNull()), nil
	default:
		panic(fmt.Sprintf("expr: unexpected unary operator %d", n.Op))
	}
}

func evalBinary(ctx context.Context, ec *Context, n *BinaryOp) (value.Value, error) {
	left, err := Eval(ctx, ec, n.Left)
	if err != nil {
		return value.Null, err
	}
	// And/Or use three-valued logic and must short-circuit Right's
	// evaluation the way the single-valued case would, so evaluate Right
	// lazily only when needed.
	switch n.Op {
	case And:
		if left.Typ == value.TypeBool && !left.Bool {
			return value.NewBool(false), nil
		}
		right, err := Eval(ctx, ec, n.Right)
		if err != nil {
			return value.Null, err
		}
		return threeValuedAnd(left, right)
	case Or:
		if left.Typ == value.TypeBool && left.Bool {
			return value.NewBool(true), nil
		}
		right, err := Eval(ctx, ec, n.Right)
		if err != nil {
			return value.Null, err
		}
		return threeValuedOr(left, right)
	}

	right, err := Eval(ctx, ec, n.Right)
	if err != nil {
		return value.Null, err
	}

	switch n.Op {
	case Add:
		out, err := value.Add(left, right)
		return out, arithErr(err, "+")
	case Sub:
		out, err := value.Sub(left, right)
		return out, arithErr(err, "-")
	case Mul:
		out, err := value.Mul(left, right)
		return out, arithErr(err, "*")
	case Div:
		out, err := value.Div(left, right)
		return out, arithErr(err, "/")
	case Mod:
		out, err := value.Mod(left, right)
		return out, arithErr(err, "%")
	case Eq:
		if left.IsNull() || right.IsNull() {
			return value.Null, nil
		}
		return value.NewBool(value.Equal(left, right)), nil
	case Neq:
		if left.IsNull() || right.IsNull() {
			return value.Null, nil
		}
		return value.NewBool(!value.Equal(left, right)), nil
	case Lt, Lte, Gt, Gte:
		if left.IsNull() || right.IsNull() {
			return value.Null, nil
		}
		cmp, err := value.Compare(left, right)
		if err != nil {
			return value.Null, qerror.Wrap(qerror.KindType, err, "comparison between incomparable types %s and %s", left.Typ, right.Typ)
		}
		return value.NewBool(compareSatisfies(n.Op, cmp)), nil
	case In:
		return evalIn(left, right)
	default:
		panic(fmt.Sprintf("expr: unexpected binary operator %d", n.Op))
	}
}

func compareSatisfies(op BinaryOperator, cmp int) bool {
	switch op {
	case Lt:
		return cmp < 0
	case Lte:
		return cmp <= 0
	case Gt:
		return cmp > 0
	case Gte:
		return cmp >= 0
	default:
		panic("expr: compareSatisfies called with non-comparison operator")
	}
}

func arithErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return qerror.Wrap(qerror.KindType, err, "arithmetic %q on non-numeric operand", op)
}

func threeValuedAnd(a, b value.Value) (value.Value, error) {
	af, aIsBool := boolOrNull(a)
	bf, bIsBool := boolOrNull(b)
	if aIsBool && !af {
		return value.NewBool(false), nil
	}
	if bIsBool && !bf {
		return value.NewBool(false), nil
	}
	if a.IsNull() || b.IsNull() {
		return value.Null, nil
	}
	if !aIsBool || !bIsBool {
		return value.Null, qerror.TypeErrorf("AND applied to non-boolean operand")
	}
	return value.NewBool(af && bf), nil
}

func threeValuedOr(a, b value.Value) (value.Value, error) {
	af, aIsBool := boolOrNull(a)
	bf, bIsBool := boolOrNull(b)
	if aIsBool && af {
		return value.NewBool(true), nil
	}
	if bIsBool && bf {
		return value.NewBool(true), nil
	}
	if a.IsNull() || b.IsNull() {
		return value.Null, nil
	}
	if !aIsBool || !bIsBool {
		return value.Null, qerror.TypeErrorf("OR applied to non-boolean operand")
	}
	return value.NewBool(af || bf), nil
}

// boolOrNull returns (value, true) for a Bool value.Value, or (false,
// false) for anything else, including Null.
func boolOrNull(v value.Value) (bool, bool) {
	if v.Typ == value.TypeBool {
		return v.Bool, true
	}
	return false, false
}

func evalIn(left, right value.Value) (value.Value, error) {
	if right.IsNull() {
		return value.Null, nil
	}
	if right.Typ != value.TypeList {
		return value.Null, qerror.TypeErrorf("IN applied to non-list right-hand operand of type %s", right.Typ)
	}
	if left.IsNull() {
		return value.Null, nil
	}
	sawNull := false
	for _, item := range right.List {
		if item.IsNull() {
			sawNull = true
			continue
		}
		if value.Equal(left, item) {
			return value.NewBool(true), nil
		}
	}
	if sawNull {
		return value.Null, nil
	}
	return value.NewBool(false), nil
}
