package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// distinctCursor streams with a memo: emits only rows whose Symbols
// tuple hasn't been seen before, using BoolEqual where Null never equals
// Null (spec §4.12).
type distinctCursor struct {
	op    *plan.Distinct
	rt    *Runtime
	input Cursor
	seen  [][]value.Value
}

func newDistinctCursor(op *plan.Distinct, rt *Runtime) *distinctCursor {
	return &distinctCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *distinctCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		ok, err := c.input.Pull(ctx, frame)
		if err != nil || !ok {
			return false, err
		}
		key := frame.Row(c.op.Symbols)
		if c.wasSeen(key) {
			continue
		}
		c.seen = append(c.seen, key)
		return true, nil
	}
}

func (c *distinctCursor) wasSeen(key []value.Value) bool {
	for _, prior := range c.seen {
		if tupleBoolEqual(prior, key) {
			return true
		}
	}
	return false
}

func tupleBoolEqual(a, b []value.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !value.BoolEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (c *distinctCursor) Reset(ctx context.Context) error {
	c.seen = nil
	return c.input.Reset(ctx)
}
