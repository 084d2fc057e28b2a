package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// unwindCursor evaluates Expr per input row, requires a List, and emits
// one row per element bound to Output. Null: no rows for that parent
// row. A non-list, non-null result is a TypeError (spec §4.15).
type unwindCursor struct {
	op        *plan.Unwind
	rt        *Runtime
	input     Cursor
	items     []value.Value
	pos       int
	haveItems bool
}

func newUnwindCursor(op *plan.Unwind, rt *Runtime) *unwindCursor {
	return &unwindCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *unwindCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if !c.haveItems {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			v, err := eval(ctx, c.rt, frame, accessor.New, c.op.Expr)
			if err != nil {
				return false, err
			}
			if v.IsNull() {
				continue
			}
			if v.Typ != value.TypeList {
				return false, qerror.TypeErrorf("UNWIND requires a list, got %s", v.Typ)
			}
			c.items = v.List
			c.pos = 0
			c.haveItems = true
		}
		if c.pos >= len(c.items) {
			c.haveItems = false
			continue
		}
		frame.Set(c.op.Output, c.items[c.pos])
		c.pos++
		return true, nil
	}
}

func (c *unwindCursor) Reset(ctx context.Context) error {
	c.haveItems = false
	c.items = nil
	c.pos = 0
	return c.input.Reset(ctx)
}
