package expr

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/value"
)

// evalFunction dispatches the evaluator's small built-in function registry:
// size/length, labels, type, id, coalesce, exists. This is an enrichment
// beyond spec.md's named operators (SPEC_FULL.md §7) — every one of these
// exists to give SetLabels/RemoveLabels, Distinct's memo keys, and
// ExpandUniquenessFilter something to call by name rather than reaching
// into accessor internals from plan-level code.
func evalFunction(ctx context.Context, ec *Context, n *FunctionCall) (value.Value, error) {
	switch n.Name {
	case "size", "length":
		return evalSize(ctx, ec, n)
	case "labels":
		return evalLabels(ctx, ec, n)
	case "type":
		return evalType(ctx, ec, n)
	case "id":
		return evalID(ctx, ec, n)
	case "coalesce":
		return evalCoalesce(ctx, ec, n)
	case "exists":
		return evalExists(ctx, ec, n)
	default:
		return value.Null, qerror.TypeErrorf("unknown function %q", n.Name)
	}
}

func arg(ctx context.Context, ec *Context, n *FunctionCall, i int) (value.Value, error) {
	return Eval(ctx, ec, n.Args[i])
}

func evalSize(ctx context.Context, ec *Context, n *FunctionCall) (value.Value, error) {
	v, err := arg(ctx, ec, n, 0)
	if err != nil {
		return value.Null, err
	}
	switch v.Typ {
	case value.TypeNull:
		return value.Null, nil
	case value.TypeList:
		return value.NewInt(int64(len(v.List))), nil
	case value.TypeString:
		return value.NewInt(int64(len(v.Str))), nil
	case value.TypePath:
		// Path length is its edge count, per convention.
		edges := 0
		for _, step := range v.Path.Steps {
			if step.Edge != nil {
				edges++
			}
		}
		return value.NewInt(int64(edges)), nil
	default:
		return value.Null, qerror.TypeErrorf("size()/length() applied to value of type %s", v.Typ)
	}
}

func evalLabels(ctx context.Context, ec *Context, n *FunctionCall) (value.Value, error) {
	v, err := arg(ctx, ec, n, 0)
	if err != nil {
		return value.Null, err
	}
	if v.IsNull() {
		return value.Null, nil
	}
	va, ok := v.Vertex.(accessor.VertexAccessor)
	if v.Typ != value.TypeVertex || !ok {
		return value.Null, qerror.TypeErrorf("labels() applied to non-vertex value of type %s", v.Typ)
	}
	if err := va.Switch(ctx, ec.View); err != nil {
		return value.Null, err
	}
	labels, err := va.Labels(ctx)
	if err != nil {
		return value.Null, err
	}
	out := make([]value.Value, len(labels))
	for i, l := range labels {
		out[i] = value.NewString(l)
	}
	return value.NewList(out), nil
}

func evalType(ctx context.Context, ec *Context, n *FunctionCall) (value.Value, error) {
	v, err := arg(ctx, ec, n, 0)
	if err != nil {
		return value.Null, err
	}
	if v.IsNull() {
		return value.Null, nil
	}
	ea, ok := v.Edge.(accessor.EdgeAccessor)
	if v.Typ != value.TypeEdge || !ok {
		return value.Null, qerror.TypeErrorf("type() applied to non-edge value of type %s", v.Typ)
	}
	return value.NewString(ea.EdgeType()), nil
}

func evalID(ctx context.Context, ec *Context, n *FunctionCall) (value.Value, error) {
	v, err := arg(ctx, ec, n, 0)
	if err != nil {
		return value.Null, err
	}
	switch v.Typ {
	case value.TypeNull:
		return value.Null, nil
	case value.TypeVertex:
		va := v.Vertex.(accessor.VertexAccessor)
		return value.NewInt(int64(va.ID())), nil
	case value.TypeEdge:
		ea := v.Edge.(accessor.EdgeAccessor)
		return value.NewInt(int64(ea.ID())), nil
	default:
		return value.Null, qerror.TypeErrorf("id() applied to non-entity value of type %s", v.Typ)
	}
}

func evalCoalesce(ctx context.Context, ec *Context, n *FunctionCall) (value.Value, error) {
	for _, a := range n.Args {
		v, err := Eval(ctx, ec, a)
		if err != nil {
			return value.Null, err
		}
		if !v.IsNull() {
			return v, nil
		}
	}
	return value.Null, nil
}

func evalExists(ctx context.Context, ec *Context, n *FunctionCall) (value.Value, error) {
	v, err := arg(ctx, ec, n, 0)
	if err != nil {
		return value.Null, err
	}
	return value.NewBool(!v.IsNull()), nil
}
