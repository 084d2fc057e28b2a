package exec

import (
	"context"
	"errors"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
)

// createIndexCursor is a non-data DDL operator: on first pull it requests
// storage to build an index on (Label, Property), swallowing
// accessor.ErrIndexExists; any other error propagates (spec §4.16).
type createIndexCursor struct {
	op   *plan.CreateIndex
	rt   *Runtime
	done bool
}

func newCreateIndexCursor(op *plan.CreateIndex, rt *Runtime) *createIndexCursor {
	return &createIndexCursor{op: op, rt: rt}
}

func (c *createIndexCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	if c.done {
		return false, nil
	}
	c.done = true
	if err := c.rt.DB.BuildIndex(ctx, c.op.Label, c.op.Property); err != nil && !errors.Is(err, accessor.ErrIndexExists) {
		return false, err
	}
	return true, nil
}

func (c *createIndexCursor) Reset(ctx context.Context) error {
	c.done = false
	return nil
}
