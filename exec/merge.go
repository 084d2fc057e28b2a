package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
)

// mergeCursor runs, per input row, MergeMatch to completion; if it
// yielded zero rows, runs MergeCreate exactly once instead (spec §4.13).
type mergeCursor struct {
	op       *plan.Merge
	rt       *Runtime
	input    Cursor
	match    Cursor
	create   Cursor
	matching bool
	matched  bool
}

func newMergeCursor(op *plan.Merge, rt *Runtime) *mergeCursor {
	return &mergeCursor{
		op:     op,
		rt:     rt,
		input:  MakeCursor(op.Input, rt),
		match:  MakeCursor(op.MergeMatch, rt),
		create: MakeCursor(op.MergeCreate, rt),
	}
}

func (c *mergeCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if !c.matching {
			ok, err := c.input.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			if err := c.match.Reset(ctx); err != nil {
				return false, err
			}
			c.matching = true
			c.matched = false
		}
		ok, err := c.match.Pull(ctx, frame)
		if err != nil {
			return false, err
		}
		if ok {
			c.matched = true
			return true, nil
		}
		c.matching = false
		if c.matched {
			continue
		}
		if err := c.create.Reset(ctx); err != nil {
			return false, err
		}
		ok, err = c.create.Pull(ctx, frame)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
}

func (c *mergeCursor) Reset(ctx context.Context) error {
	c.matching = false
	c.matched = false
	return c.input.Reset(ctx)
}
