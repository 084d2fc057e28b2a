package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// combinedEdgeIterator walks Out then In, skipping self-loops on the In
// pass, so Direction == Both enumerates each self-loop edge exactly once
// (spec §4.3).
type combinedEdgeIterator struct {
	out, in accessor.EdgeIterator
	onOut   bool
}

func newCombinedEdgeIterator(out, in accessor.EdgeIterator) *combinedEdgeIterator {
	return &combinedEdgeIterator{out: out, in: in, onOut: true}
}

func (c *combinedEdgeIterator) Next(ctx context.Context) (accessor.EdgeAccessor, bool, error) {
	for {
		if c.onOut {
			e, ok, err := c.out.Next(ctx)
			if err != nil {
				return nil, false, err
			}
			if ok {
				return e, true, nil
			}
			c.onOut = false
			continue
		}
		e, ok, err := c.in.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		if e.From().ID() == e.To().ID() {
			continue // already yielded by the Out pass
		}
		return e, true, nil
	}
}

// expandCursor produces, per input row, one row per incident edge of the
// vertex at InputSymbol (spec §4.3).
type expandCursor struct {
	op      *plan.Expand
	rt      *Runtime
	input   Cursor
	it      accessor.EdgeIterator
	inputID uint64
}

func newExpandCursor(op *plan.Expand, rt *Runtime) *expandCursor {
	return &expandCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *expandCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if c.it == nil {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			if frame.Get(c.op.InputSymbol).IsNull() {
				continue
			}
			va, err := c.inputVertex(ctx, frame)
			if err != nil {
				return false, err
			}
			c.inputID = va.ID()
			it, err := c.edgeIterator(ctx, va)
			if err != nil {
				return false, err
			}
			c.it = it
		}
		e, ok, err := c.it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			c.it = nil
			continue
		}
		node := c.otherEndpoint(e)
		if c.op.ExistingNode {
			existing := frame.Get(c.op.NodeSymbol)
			if existing.IsNull() || !existing.Vertex.Equal(node) {
				continue
			}
		}
		if c.op.ExistingEdge {
			existing := frame.Get(c.op.EdgeSymbol)
			if existing.IsNull() || !existing.Edge.Equal(e) {
				continue
			}
		}
		frame.Set(c.op.NodeSymbol, value.NewVertex(node))
		frame.Set(c.op.EdgeSymbol, value.NewEdge(e))
		return true, nil
	}
}

func (c *expandCursor) inputVertex(ctx context.Context, frame *symbol.Frame) (accessor.VertexAccessor, error) {
	v := frame.Get(c.op.InputSymbol)
	va := v.Vertex.(accessor.VertexAccessor)
	if err := va.Switch(ctx, c.op.View); err != nil {
		return nil, err
	}
	return va, nil
}

func (c *expandCursor) edgeIterator(ctx context.Context, va accessor.VertexAccessor) (accessor.EdgeIterator, error) {
	switch c.op.Direction {
	case accessor.Out:
		return va.OutEdges(ctx)
	case accessor.In:
		return va.InEdges(ctx)
	default:
		out, err := va.OutEdges(ctx)
		if err != nil {
			return nil, err
		}
		in, err := va.InEdges(ctx)
		if err != nil {
			return nil, err
		}
		return newCombinedEdgeIterator(out, in), nil
	}
}

// otherEndpoint picks whichever endpoint isn't the vertex this expansion
// started from, so a Both-direction self-loop still reports a sensible
// "other side" (itself).
func (c *expandCursor) otherEndpoint(e accessor.EdgeAccessor) accessor.VertexAccessor {
	if c.op.Direction == accessor.In {
		return e.From()
	}
	if c.op.Direction == accessor.Out {
		return e.To()
	}
	if e.From().ID() == c.inputID {
		return e.To()
	}
	return e.From()
}

func (c *expandCursor) Reset(ctx context.Context) error {
	c.it = nil
	return c.input.Reset(ctx)
}

// uniquenessCursor rejects a row iff frame[Current] equals any of
// frame[Previous...] (spec §4.4).
type uniquenessCursor struct {
	op    *plan.ExpandUniquenessFilter
	rt    *Runtime
	input Cursor
}

func newUniquenessCursor(op *plan.ExpandUniquenessFilter, rt *Runtime) *uniquenessCursor {
	return &uniquenessCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *uniquenessCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		ok, err := c.input.Pull(ctx, frame)
		if err != nil || !ok {
			return false, err
		}
		if c.duplicatesAny(frame) {
			continue
		}
		return true, nil
	}
}

func (c *uniquenessCursor) duplicatesAny(frame *symbol.Frame) bool {
	current := frame.Get(c.op.Current)
	for _, prev := range c.op.Previous {
		other := frame.Get(prev)
		if c.equal(current, other) {
			return true
		}
	}
	return false
}

func (c *uniquenessCursor) equal(a, b value.Value) bool {
	if a.IsNull() || b.IsNull() {
		return false
	}
	switch c.op.Kind {
	case plan.UniqueEdge:
		return a.Edge != nil && b.Edge != nil && a.Edge.Equal(b.Edge)
	default:
		return a.Vertex != nil && b.Vertex != nil && a.Vertex.Equal(b.Vertex)
	}
}

func (c *uniquenessCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}
