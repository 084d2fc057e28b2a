package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// applyPropertySpecs evaluates each spec under NEW and writes it onto va.
func applyPropertySpecs(ctx context.Context, rt *Runtime, frame *symbol.Frame, va interface {
	SetProperty(ctx context.Context, key string, v value.Value) error
}, specs []plan.PropertySpec) error {
	for _, spec := range specs {
		v, err := eval(ctx, rt, frame, accessor.New, spec.Expr)
		if err != nil {
			return err
		}
		if err := va.SetProperty(ctx, spec.Key, v); err != nil {
			return err
		}
	}
	return nil
}

// createNodeCursor inserts a vertex per input row, applies Labels and
// evaluated Properties under NEW, and binds it to Output (spec §4.6).
type createNodeCursor struct {
	op    *plan.CreateNode
	rt    *Runtime
	input Cursor
}

func newCreateNodeCursor(op *plan.CreateNode, rt *Runtime) *createNodeCursor {
	return &createNodeCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *createNodeCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	va, err := c.rt.DB.InsertVertex(ctx)
	if err != nil {
		return false, err
	}
	for _, label := range c.op.Labels {
		if err := va.AddLabel(ctx, label); err != nil {
			return false, err
		}
	}
	if err := applyPropertySpecs(ctx, c.rt, frame, va, c.op.Properties); err != nil {
		return false, err
	}
	frame.Set(c.op.Output, value.NewVertex(va))
	return true, nil
}

func (c *createNodeCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}

// createExpandCursor creates an edge (and, unless ExistingNode, the other
// endpoint) from frame[InputSymbol] per input row (spec §4.6).
type createExpandCursor struct {
	op    *plan.CreateExpand
	rt    *Runtime
	input Cursor
}

func newCreateExpandCursor(op *plan.CreateExpand, rt *Runtime) *createExpandCursor {
	return &createExpandCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *createExpandCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	inputVal := frame.Get(c.op.InputSymbol)
	inputVA := inputVal.Vertex.(accessor.VertexAccessor)

	var nodeVA accessor.VertexAccessor
	if c.op.ExistingNode {
		nodeVal := frame.Get(c.op.NodeOutput)
		nodeVA = nodeVal.Vertex.(accessor.VertexAccessor)
	} else {
		nodeVA, err = c.rt.DB.InsertVertex(ctx)
		if err != nil {
			return false, err
		}
		for _, label := range c.op.NodeLabels {
			if err := nodeVA.AddLabel(ctx, label); err != nil {
				return false, err
			}
		}
		if err := applyPropertySpecs(ctx, c.rt, frame, nodeVA, c.op.NodeProperties); err != nil {
			return false, err
		}
		frame.Set(c.op.NodeOutput, value.NewVertex(nodeVA))
	}

	from, to := inputVA, nodeVA
	if c.op.Direction == accessor.In {
		from, to = nodeVA, inputVA
	}
	edgeVA, err := c.rt.DB.InsertEdge(ctx, from, to, c.op.EdgeType)
	if err != nil {
		return false, err
	}
	if err := applyPropertySpecs(ctx, c.rt, frame, edgeVA, c.op.EdgeProperties); err != nil {
		return false, err
	}
	frame.Set(c.op.EdgeOutput, value.NewEdge(edgeVA))
	return true, nil
}

func (c *createExpandCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}
