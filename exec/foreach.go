package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// foreachCursor evaluates ListExpr per input row, then runs Body once per
// element, discarding Body's output rows — it exists for its mutation side
// effects (SPEC_FULL.md §8 supplement, UNWIND's sibling).
type foreachCursor struct {
	op    *plan.Foreach
	rt    *Runtime
	input Cursor
	body  Cursor
}

func newForeachCursor(op *plan.Foreach, rt *Runtime) *foreachCursor {
	return &foreachCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt), body: MakeCursor(op.Body, rt)}
}

func (c *foreachCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	listVal, err := eval(ctx, c.rt, frame, accessor.New, c.op.ListExpr)
	if err != nil {
		return false, err
	}
	if listVal.IsNull() {
		return true, nil
	}
	if listVal.Typ != value.TypeList {
		return false, qerror.TypeErrorf("FOREACH requires a list, got %s", listVal.Typ)
	}
	for _, elem := range listVal.List {
		frame.Set(c.op.ElementOutput, elem)
		if err := c.body.Reset(ctx); err != nil {
			return false, err
		}
		for {
			more, err := c.body.Pull(ctx, frame)
			if err != nil {
				return false, err
			}
			if !more {
				break
			}
		}
	}
	return true, nil
}

func (c *foreachCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}
