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

// evalNonNegativeInt evaluates n under NEW and requires a non-negative
// Int result, the shared contract SKIP and LIMIT both impose on their
// operand (spec §4.10).
func evalNonNegativeInt(ctx context.Context, rt *Runtime, frame *symbol.Frame, n expr.Node, clause string) (int64, error) {
	v, err := eval(ctx, rt, frame, accessor.New, n)
	if err != nil {
		return 0, err
	}
	if v.Typ != value.TypeInt || v.Int < 0 {
		return 0, qerror.QueryRuntimeErrorf("%s requires a non-negative integer, got %s", clause, v)
	}
	return v.Int, nil
}

// skipCursor evaluates Expr once, at first pull; it must be a
// non-negative Int. Discards the first N input rows, then passes through
// (spec §4.10).
type skipCursor struct {
	op        *plan.Skip
	rt        *Runtime
	input     Cursor
	evaluated bool
	n         int64
	skipped   int64
}

func newSkipCursor(op *plan.Skip, rt *Runtime) *skipCursor {
	return &skipCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *skipCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	if !c.evaluated {
		n, err := evalNonNegativeInt(ctx, c.rt, frame, c.op.Expr, "SKIP")
		if err != nil {
			return false, err
		}
		c.n = n
		c.evaluated = true
	}
	for c.skipped < c.n {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		ok, err := c.input.Pull(ctx, frame)
		if err != nil || !ok {
			return false, err
		}
		c.skipped++
	}
	return c.input.Pull(ctx, frame)
}

func (c *skipCursor) Reset(ctx context.Context) error {
	c.evaluated = false
	c.n = 0
	c.skipped = 0
	return c.input.Reset(ctx)
}

// limitCursor evaluates Expr once, at first pull; it must be a
// non-negative Int. Passes through, returning false after N emissions
// (spec §4.10).
type limitCursor struct {
	op        *plan.Limit
	rt        *Runtime
	input     Cursor
	evaluated bool
	n         int64
	emitted   int64
}

func newLimitCursor(op *plan.Limit, rt *Runtime) *limitCursor {
	return &limitCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *limitCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	if !c.evaluated {
		n, err := evalNonNegativeInt(ctx, c.rt, frame, c.op.Expr, "LIMIT")
		if err != nil {
			return false, err
		}
		c.n = n
		c.evaluated = true
	}
	if c.emitted >= c.n {
		return false, nil
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	c.emitted++
	return true, nil
}

func (c *limitCursor) Reset(ctx context.Context) error {
	c.evaluated = false
	c.n = 0
	c.emitted = 0
	return c.input.Reset(ctx)
}
