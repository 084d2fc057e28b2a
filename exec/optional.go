package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// optionalCursor runs Branch per input row; if it yields nothing, sets
// every Symbols entry to Null and emits once instead (spec §4.14).
type optionalCursor struct {
	op            *plan.Optional
	rt            *Runtime
	input         Cursor
	branch        Cursor
	inBranch      bool
	branchYielded bool
}

func newOptionalCursor(op *plan.Optional, rt *Runtime) *optionalCursor {
	return &optionalCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt), branch: MakeCursor(op.Branch, rt)}
}

func (c *optionalCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if !c.inBranch {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			if err := c.branch.Reset(ctx); err != nil {
				return false, err
			}
			c.inBranch = true
			c.branchYielded = false
		}
		ok, err := c.branch.Pull(ctx, frame)
		if err != nil {
			return false, err
		}
		if ok {
			c.branchYielded = true
			return true, nil
		}
		c.inBranch = false
		if !c.branchYielded {
			for _, s := range c.op.Symbols {
				frame.Set(s, value.Null)
			}
			return true, nil
		}
	}
}

func (c *optionalCursor) Reset(ctx context.Context) error {
	c.inBranch = false
	c.branchYielded = false
	return c.input.Reset(ctx)
}
