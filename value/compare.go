package value

import "errors"

// ErrIncomparable is returned by Compare when the two values don't have a
// well-defined ordering (spec: "Ordering between incomparable types fails
// with a TypeError"). Callers in package expr/exec wrap this into the
// engine's TypeError kind; this package stays free of that dependency.
var ErrIncomparable = errors.New("value: incomparable types")

// Equal implements the typed-value equality used for group-by hashing and
// Accumulate-style set membership: Null equals Null (so nulls group
// together), and an Int and a Double compare equal when they denote the
// same number. This is deliberately distinct from BoolEqual, which Distinct
// (spec §4.12) uses and where Null never equals Null.
func Equal(a, b Value) bool {
	if a.Typ == TypeNull && b.Typ == TypeNull {
		return true
	}
	if a.IsNumeric() && b.IsNumeric() {
		return a.AsDouble() == b.AsDouble()
	}
	if a.Typ != b.Typ {
		return false
	}
	switch a.Typ {
	case TypeNull:
		return true
	case TypeBool:
		return a.Bool == b.Bool
	case TypeString:
		return a.Str == b.Str
	case TypeList:
		if len(a.List) != len(b.List) {
			return false
		}
		for i := range a.List {
			if !Equal(a.List[i], b.List[i]) {
				return false
			}
		}
		return true
	case TypeMap:
		if len(a.Map) != len(b.Map) {
			return false
		}
		for k, av := range a.Map {
			bv, ok := b.Map[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	case TypeVertex:
		return a.Vertex != nil && b.Vertex != nil && a.Vertex.Equal(b.Vertex)
	case TypeEdge:
		return a.Edge != nil && b.Edge != nil && a.Edge.Equal(b.Edge)
	case TypePath:
		if len(a.Path.Steps) != len(b.Path.Steps) {
			return false
		}
		for i := range a.Path.Steps {
			sa, sb := a.Path.Steps[i], b.Path.Steps[i]
			if (sa.Vertex == nil) != (sb.Vertex == nil) {
				return false
			}
			if sa.Vertex != nil && !sa.Vertex.Equal(sb.Vertex) {
				return false
			}
			if sa.Edge != nil && !sa.Edge.Equal(sb.Edge) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// BoolEqual is the three-valued-logic-free equality Distinct (spec §4.12)
// uses: Null never equals
// Null here, matching Cypher's "NULL = NULL is unknown" rule reduced to a
// boolean for memo-key purposes (two distinct nulls in a Distinct key tuple
// never collapse into the same emitted row's earlier occurrence).
func BoolEqual(a, b Value) bool {
	if a.Typ == TypeNull || b.Typ == TypeNull {
		return false
	}
	return Equal(a, b)
}

// Compare orders two values per spec §4.11: numeric ordering across
// Int/Double, lexicographic strings, false < true for Bool, Null sorts
// after any non-null value and is not less than Null. Lists, Maps, Vertex,
// Edge, and Path have no defined ordering and return ErrIncomparable.
//
// Compare returns -1, 0, or 1 the usual way. Null placement is part of
// Compare itself: Compare(Null, Null) returns 0, Compare(Null, x) returns 1
// and Compare(x, Null) returns -1 for any non-null x. OrderBy uses this raw
// result for ASC and negates it for DESC, which puts Nulls first there.
func Compare(a, b Value) (int, error) {
	if a.Typ == TypeNull && b.Typ == TypeNull {
		return 0, nil
	}
	if a.Typ == TypeNull {
		return 1, nil
	}
	if b.Typ == TypeNull {
		return -1, nil
	}
	if a.IsNumeric() && b.IsNumeric() {
		av, bv := a.AsDouble(), b.AsDouble()
		switch {
		case av < bv:
			return -1, nil
		case av > bv:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.Typ == TypeString && b.Typ == TypeString {
		switch {
		case a.Str < b.Str:
			return -1, nil
		case a.Str > b.Str:
			return 1, nil
		default:
			return 0, nil
		}
	}
	if a.Typ == TypeBool && b.Typ == TypeBool {
		switch {
		case a.Bool == b.Bool:
			return 0, nil
		case !a.Bool && b.Bool:
			return -1, nil
		default:
			return 1, nil
		}
	}
	return 0, ErrIncomparable
}
