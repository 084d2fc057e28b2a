package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// deleteCursor evaluates every Exprs result for the row, then deletes
// edges before vertices. Deleting Null is a no-op; a non-entity result is
// a QueryRuntimeError (spec §4.6).
type deleteCursor struct {
	op    *plan.Delete
	rt    *Runtime
	input Cursor
}

func newDeleteCursor(op *plan.Delete, rt *Runtime) *deleteCursor {
	return &deleteCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *deleteCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}

	var vertices []accessor.VertexAccessor
	var edges []accessor.EdgeAccessor
	for _, e := range c.op.Exprs {
		v, err := eval(ctx, c.rt, frame, accessor.New, e)
		if err != nil {
			return false, err
		}
		switch v.Typ {
		case value.TypeNull:
			continue
		case value.TypeVertex:
			vertices = append(vertices, v.Vertex.(accessor.VertexAccessor))
		case value.TypeEdge:
			edges = append(edges, v.Edge.(accessor.EdgeAccessor))
		default:
			return false, qerror.QueryRuntimeErrorf("cannot delete non-entity value of type %s", v.Typ)
		}
	}
	for _, e := range edges {
		if err := c.rt.DB.RemoveEdge(ctx, e); err != nil {
			return false, err
		}
	}
	for _, v := range vertices {
		if err := c.rt.DB.RemoveVertex(ctx, v, c.op.Detach); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *deleteCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}
