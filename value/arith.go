package value

import "errors"

// ErrNotNumeric is returned by the arithmetic helpers when an operand isn't
// Int, Double, or (for Add only) String/List used in concatenation.
var ErrNotNumeric = errors.New("value: operand is not numeric")

// Add implements +: numeric addition with Int+Int staying Int, string
// concatenation when both sides are String, and list concatenation when
// both sides are List. Null propagates: Add with either operand Null
// returns Null, nil.
func Add(a, b Value) (Value, error) {
	if a.IsNull() || b.IsNull() {
		return Null, nil
	}
	switch {
	case a.Typ == TypeString && b.Typ == TypeString:
		return NewString(a.Str + b.Str), nil
	case a.Typ == TypeList && b.Typ == TypeList:
		out := make([]Value, 0, len(a.List)+len(b.List))
		out = append(out, a.List...)
		out = append(out, b.List...)
		return NewList(out), nil
	case a.Typ == TypeInt && b.Typ == TypeInt:
		return NewInt(a.Int + b.Int), nil
	case a.IsNumeric() && b.IsNumeric():
		return NewDouble(a.AsDouble() + b.AsDouble()), nil
	default:
		return Null, ErrNotNumeric
	}
}

// Sub implements binary -.
func Sub(a, b Value) (Value, error) { return numericOp(a, b, func(x, y int64) int64 { return x - y }, func(x, y float64) float64 { return x - y }) }

// Mul implements *.
func Mul(a, b Value) (Value, error) { return numericOp(a, b, func(x, y int64) int64 { return x * y }, func(x, y float64) float64 { return x * y }) }

// Div implements /. Int / Int produces an Int, truncated toward zero; any
// Double operand produces a Double. Dividing an Int by Int zero is an error.
func Div(a, b Value) (Value, error) {
	if a.IsNull() || b.IsNull() {
		return Null, nil
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return Null, ErrNotNumeric
	}
	if a.Typ == TypeInt && b.Typ == TypeInt {
		if b.Int == 0 {
			return Null, errors.New("value: division by zero")
		}
		return NewInt(a.Int / b.Int), nil
	}
	return NewDouble(a.AsDouble() / b.AsDouble()), nil
}

// Mod implements %.
func Mod(a, b Value) (Value, error) {
	if a.IsNull() || b.IsNull() {
		return Null, nil
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return Null, ErrNotNumeric
	}
	if a.Typ == TypeInt && b.Typ == TypeInt {
		if b.Int == 0 {
			return Null, errors.New("value: modulo by zero")
		}
		return NewInt(a.Int % b.Int), nil
	}
	af, bf := a.AsDouble(), b.AsDouble()
	return NewDouble(af - bf*float64(int64(af/bf))), nil
}

// Neg implements unary -.
func Neg(a Value) (Value, error) {
	if a.IsNull() {
		return Null, nil
	}
	switch a.Typ {
	case TypeInt:
		return NewInt(-a.Int), nil
	case TypeDouble:
		return NewDouble(-a.Double), nil
	default:
		return Null, ErrNotNumeric
	}
}

func numericOp(a, b Value, intOp func(int64, int64) int64, floatOp func(float64, float64) float64) (Value, error) {
	if a.IsNull() || b.IsNull() {
		return Null, nil
	}
	if !a.IsNumeric() || !b.IsNumeric() {
		return Null, ErrNotNumeric
	}
	if a.Typ == TypeInt && b.Typ == TypeInt {
		return NewInt(intOp(a.Int, b.Int)), nil
	}
	return NewDouble(floatOp(a.AsDouble(), b.AsDouble())), nil
}
