package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// onceCursor yields exactly one empty row, then is exhausted (spec §4.2).
type onceCursor struct {
	pulled bool
}

func newOnceCursor() *onceCursor { return &onceCursor{} }

func (c *onceCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if c.pulled {
		return false, nil
	}
	c.pulled = true
	return true, nil
}

func (c *onceCursor) Reset(ctx context.Context) error {
	c.pulled = false
	return nil
}

// scanAllCursor iterates the vertex set under op.View, restarting the scan
// for every parent row (spec §4.2) — this is what lets a bare ScanAll sit
// on the right side of a Cartesian without the planner needing a distinct
// "rescan" operator.
type scanAllCursor struct {
	op    *plan.ScanAll
	rt    *Runtime
	input Cursor
	it    accessor.VertexIterator
}

func newScanAllCursor(op *plan.ScanAll, rt *Runtime) *scanAllCursor {
	return &scanAllCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *scanAllCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if c.it == nil {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			it, err := c.rt.DB.Vertices(ctx, c.op.View)
			if err != nil {
				return false, err
			}
			c.it = it
		}
		v, ok, err := c.it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			c.it = nil
			continue
		}
		frame.Set(c.op.Output, value.NewVertex(v))
		return true, nil
	}
}

func (c *scanAllCursor) Reset(ctx context.Context) error {
	c.it = nil
	return c.input.Reset(ctx)
}

// scanAllByLabelCursor is ScanAll restricted to an in-memory label index
// (spec §4.2).
type scanAllByLabelCursor struct {
	op    *plan.ScanAllByLabel
	rt    *Runtime
	input Cursor
	it    accessor.VertexIterator
}

func newScanAllByLabelCursor(op *plan.ScanAllByLabel, rt *Runtime) *scanAllByLabelCursor {
	return &scanAllByLabelCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *scanAllByLabelCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if c.it == nil {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			it, err := c.rt.DB.VerticesByLabel(ctx, c.op.View, c.op.Label)
			if err != nil {
				return false, err
			}
			c.it = it
		}
		v, ok, err := c.it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			c.it = nil
			continue
		}
		frame.Set(c.op.Output, value.NewVertex(v))
		return true, nil
	}
}

func (c *scanAllByLabelCursor) Reset(ctx context.Context) error {
	c.it = nil
	return c.input.Reset(ctx)
}

var indexableTypes = map[value.Type]bool{
	value.TypeBool:   true,
	value.TypeInt:    true,
	value.TypeDouble: true,
	value.TypeString: true,
}

// scanAllByLabelPropertyValueCursor evaluates op.Expr after each parent
// pull under op.View (spec §4.2).
type scanAllByLabelPropertyValueCursor struct {
	op    *plan.ScanAllByLabelPropertyValue
	rt    *Runtime
	input Cursor
	it    accessor.VertexIterator
}

func newScanAllByLabelPropertyValueCursor(op *plan.ScanAllByLabelPropertyValue, rt *Runtime) *scanAllByLabelPropertyValueCursor {
	return &scanAllByLabelPropertyValueCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *scanAllByLabelPropertyValueCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if c.it == nil {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			val, err := eval(ctx, c.rt, frame, c.op.View, c.op.Expr)
			if err != nil {
				return false, err
			}
			if val.IsNull() {
				c.it = emptyVertexIterator{}
				continue
			}
			if !indexableTypes[val.Typ] {
				return false, qerror.QueryRuntimeErrorf("ScanAllByLabelPropertyValue: non-indexable value of type %s", val.Typ)
			}
			it, err := c.rt.DB.VerticesByLabelPropertyValue(ctx, c.op.View, c.op.Label, c.op.Property, val)
			if err != nil {
				return false, err
			}
			c.it = it
		}
		v, ok, err := c.it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			c.it = nil
			continue
		}
		frame.Set(c.op.Output, value.NewVertex(v))
		return true, nil
	}
}

func (c *scanAllByLabelPropertyValueCursor) Reset(ctx context.Context) error {
	c.it = nil
	return c.input.Reset(ctx)
}

// scanAllByLabelPropertyRangeCursor evaluates bounds per parent row (spec
// §4.2).
type scanAllByLabelPropertyRangeCursor struct {
	op    *plan.ScanAllByLabelPropertyRange
	rt    *Runtime
	input Cursor
	it    accessor.VertexIterator
}

func newScanAllByLabelPropertyRangeCursor(op *plan.ScanAllByLabelPropertyRange, rt *Runtime) *scanAllByLabelPropertyRangeCursor {
	return &scanAllByLabelPropertyRangeCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *scanAllByLabelPropertyRangeCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if c.it == nil {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			r, skip, err := c.evalRange(ctx, frame)
			if err != nil {
				return false, err
			}
			if skip {
				c.it = emptyVertexIterator{}
				continue
			}
			it, err := c.rt.DB.VerticesByLabelPropertyRange(ctx, c.op.View, c.op.Label, c.op.Property, r)
			if err != nil {
				return false, err
			}
			c.it = it
		}
		v, ok, err := c.it.Next(ctx)
		if err != nil {
			return false, err
		}
		if !ok {
			c.it = nil
			continue
		}
		frame.Set(c.op.Output, value.NewVertex(v))
		return true, nil
	}
}

func (c *scanAllByLabelPropertyRangeCursor) evalRange(ctx context.Context, frame *symbol.Frame) (accessor.PropertyRange, bool, error) {
	var r accessor.PropertyRange
	if c.op.Lower != nil {
		v, err := eval(ctx, c.rt, frame, c.op.View, c.op.Lower)
		if err != nil {
			return r, false, err
		}
		if v.IsNull() {
			return r, true, nil
		}
		r.Lower = &v
		r.LowerInclusive = c.op.LowerInclusive
	}
	if c.op.Upper != nil {
		v, err := eval(ctx, c.rt, frame, c.op.View, c.op.Upper)
		if err != nil {
			return r, false, err
		}
		if v.IsNull() {
			return r, true, nil
		}
		r.Upper = &v
		r.UpperInclusive = c.op.UpperInclusive
	}
	return r, false, nil
}

func (c *scanAllByLabelPropertyRangeCursor) Reset(ctx context.Context) error {
	c.it = nil
	return c.input.Reset(ctx)
}

// eval is the shared helper every source/filter/mutation cursor uses to run
// an expr.Node against the current frame under a specific view.
func eval(ctx context.Context, rt *Runtime, frame *symbol.Frame, view accessor.View, n expr.Node) (value.Value, error) {
	ec := &expr.Context{Frame: frame, DB: rt.DB, View: view, Params: rt.Params}
	return expr.Eval(ctx, ec, n)
}

type emptyVertexIterator struct{}

func (emptyVertexIterator) Next(ctx context.Context) (accessor.VertexAccessor, bool, error) {
	return nil, false, nil
}
