package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
)

// cartesianCursor pairs every row of Left with every row of Right by
// nested loop (plan.Cartesian doc comment; supplement to spec §4.2).
type cartesianCursor struct {
	op      *plan.Cartesian
	rt      *Runtime
	left    Cursor
	right   Cursor
	started bool
}

func newCartesianCursor(op *plan.Cartesian, rt *Runtime) *cartesianCursor {
	return &cartesianCursor{
		op:    op,
		rt:    rt,
		left:  MakeCursor(op.Left, rt),
		right: MakeCursor(op.Right, rt),
	}
}

func (c *cartesianCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return false, err
		}
		if !c.started {
			ok, err := c.left.Pull(ctx, frame)
			if err != nil || !ok {
				return false, err
			}
			if err := c.right.Reset(ctx); err != nil {
				return false, err
			}
			c.started = true
		}
		ok, err := c.right.Pull(ctx, frame)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
		c.started = false
	}
}

func (c *cartesianCursor) Reset(ctx context.Context) error {
	c.started = false
	if err := c.left.Reset(ctx); err != nil {
		return err
	}
	return c.right.Reset(ctx)
}
