package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// filterCursor evaluates Expr under OLD per input row and drops rows whose
// result isn't true: Null is filtered out silently, a non-boolean result
// is a TypeError (spec §4.5).
type filterCursor struct {
	op    *plan.Filter
	rt    *Runtime
	input Cursor
}

func newFilterCursor(op *plan.Filter, rt *Runtime) *filterCursor {
	return &filterCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *filterCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		ok, err := c.input.Pull(ctx, frame)
		if err != nil || !ok {
			return false, err
		}
		v, err := eval(ctx, c.rt, frame, accessor.Old, c.op.Expr)
		if err != nil {
			return false, err
		}
		if v.IsNull() {
			continue
		}
		if v.Typ != value.TypeBool {
			return false, qerror.TypeErrorf("filter expression evaluated to non-boolean value of type %s", v.Typ)
		}
		if v.Bool {
			return true, nil
		}
	}
}

func (c *filterCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}
