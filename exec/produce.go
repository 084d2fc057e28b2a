package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// produceCursor evaluates each Item under NEW and writes results to their
// output symbols. Streaming, no accumulation (spec §4.7).
type produceCursor struct {
	op    *plan.Produce
	rt    *Runtime
	input Cursor
}

func newProduceCursor(op *plan.Produce, rt *Runtime) *produceCursor {
	return &produceCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *produceCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	for _, item := range c.op.Items {
		v, err := eval(ctx, c.rt, frame, accessor.New, item.Expr)
		if err != nil {
			return false, err
		}
		frame.Set(item.Output, v)
	}
	return true, nil
}

func (c *produceCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}

// accumulateCursor blocks: drains Input into an in-memory row cache of
// Symbols. If AdvanceCommand is set, it calls db.AdvanceCommand() and then
// reconstructs every accessor in the cache, dropping rows whose entity is
// no longer visible (spec §4.8).
type accumulateCursor struct {
	op      *plan.Accumulate
	rt      *Runtime
	input   Cursor
	rows    [][]value.Value
	pos     int
	drained bool
}

func newAccumulateCursor(op *plan.Accumulate, rt *Runtime) *accumulateCursor {
	return &accumulateCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *accumulateCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	if !c.drained {
		if err := c.drain(ctx, frame); err != nil {
			return false, err
		}
	}
	if c.pos >= len(c.rows) {
		return false, nil
	}
	row := c.rows[c.pos]
	c.pos++
	for i, s := range c.op.Symbols {
		frame.Set(s, row[i])
	}
	return true, nil
}

func (c *accumulateCursor) drain(ctx context.Context, frame *symbol.Frame) error {
	for {
		ok, err := c.input.Pull(ctx, frame)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		row := make([]value.Value, len(c.op.Symbols))
		for i, s := range c.op.Symbols {
			row[i] = frame.Get(s)
		}
		c.rows = append(c.rows, row)
	}
	if c.op.AdvanceCommand {
		if err := c.rt.DB.AdvanceCommand(ctx); err != nil {
			return err
		}
		kept := c.rows[:0]
		for _, row := range c.rows {
			visible, err := reconstructRow(ctx, row)
			if err != nil {
				return err
			}
			if visible {
				kept = append(kept, row)
			}
		}
		c.rows = kept
	}
	c.drained = true
	return nil
}

// reconstructRow reconstructs every Vertex/Edge cell in row, including
// those embedded in a Path, reporting false if any is no longer visible
// after a command boundary.
func reconstructRow(ctx context.Context, row []value.Value) (bool, error) {
	for _, v := range row {
		switch v.Typ {
		case value.TypeVertex:
			va := v.Vertex.(accessor.VertexAccessor)
			visible, err := va.Reconstruct(ctx)
			if err != nil {
				return false, err
			}
			if !visible {
				return false, nil
			}
		case value.TypeEdge:
			ea := v.Edge.(accessor.EdgeAccessor)
			visible, err := ea.Reconstruct(ctx)
			if err != nil {
				return false, err
			}
			if !visible {
				return false, nil
			}
		case value.TypePath:
			visible, err := reconstructPath(ctx, v)
			if err != nil {
				return false, err
			}
			if !visible {
				return false, nil
			}
		}
	}
	return true, nil
}

// reconstructPath reconstructs every vertex/edge accessor embedded in a
// Path's steps, reporting false if any step is no longer visible.
func reconstructPath(ctx context.Context, v value.Value) (bool, error) {
	for _, step := range v.Path.Steps {
		switch {
		case step.Vertex != nil:
			va := step.Vertex.(accessor.VertexAccessor)
			visible, err := va.Reconstruct(ctx)
			if err != nil {
				return false, err
			}
			if !visible {
				return false, nil
			}
		case step.Edge != nil:
			ea := step.Edge.(accessor.EdgeAccessor)
			visible, err := ea.Reconstruct(ctx)
			if err != nil {
				return false, err
			}
			if !visible {
				return false, nil
			}
		}
	}
	return true, nil
}

func (c *accumulateCursor) Reset(ctx context.Context) error {
	c.rows = nil
	c.pos = 0
	c.drained = false
	return c.input.Reset(ctx)
}
