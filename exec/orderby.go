package exec

import (
	"context"
	"sort"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// orderByCursor blocks: drains Input, sorts stably by OrderBy keys, and
// emits Items' evaluated values written back to their output symbols
// (spec §4.11).
//
// Deviation from the teacher's own orderby.go: the teacher drains its
// input on a goroutine over a channel (util/parallel.Go). Spec §5's "no
// operator spawns a task" rules that out here, so this drains Input
// synchronously inside the first Pull call instead (SPEC_FULL.md §11).
type orderByCursor struct {
	op      *plan.OrderBy
	rt      *Runtime
	input   Cursor
	rows    []orderByRow
	pos     int
	drained bool
	sortErr error
}

type orderByRow struct {
	snapshot []value.Value
	keys     []value.Value
}

func newOrderByCursor(op *plan.OrderBy, rt *Runtime) *orderByCursor {
	return &orderByCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *orderByCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if !c.drained {
		if err := c.drain(ctx, frame); err != nil {
			return false, err
		}
	}
	if c.sortErr != nil {
		return false, c.sortErr
	}
	if c.pos >= len(c.rows) {
		return false, nil
	}
	row := c.rows[c.pos]
	c.pos++
	frame.Restore(row.snapshot)
	for _, item := range c.op.Items {
		v, err := eval(ctx, c.rt, frame, accessor.New, item.Expr)
		if err != nil {
			return false, err
		}
		frame.Set(item.Output, v)
	}
	return true, nil
}

func (c *orderByCursor) drain(ctx context.Context, frame *symbol.Frame) error {
	for {
		if err := checkAbort(ctx, c.rt); err != nil {
			return err
		}
		ok, err := c.input.Pull(ctx, frame)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		keys := make([]value.Value, len(c.op.OrderBy))
		for i, spec := range c.op.OrderBy {
			v, err := eval(ctx, c.rt, frame, accessor.New, spec.Expr)
			if err != nil {
				return err
			}
			keys[i] = v
		}
		c.rows = append(c.rows, orderByRow{snapshot: frame.Snapshot(), keys: keys})
	}
	c.drained = true
	sort.SliceStable(c.rows, func(i, j int) bool {
		less, err := c.less(c.rows[i].keys, c.rows[j].keys)
		if err != nil && c.sortErr == nil {
			c.sortErr = err
		}
		return less
	})
	return nil
}

// less compares two key tuples key-by-key: each key's own Direction
// governs both its comparison order and its own null-placement (Null
// sorts after non-null on ASC, and DESC reverses that key's placement
// too — SPEC_FULL.md Open Question resolution).
func (c *orderByCursor) less(a, b []value.Value) (bool, error) {
	for i, spec := range c.op.OrderBy {
		av, bv := a[i], b[i]
		cmp, err := value.Compare(av, bv)
		if err != nil {
			return false, qerror.Wrap(qerror.KindType, err, "ORDER BY over incomparable values")
		}
		if spec.Direction == plan.SortDesc {
			cmp = -cmp
		}
		if cmp != 0 {
			return cmp < 0, nil
		}
	}
	return false, nil
}

func (c *orderByCursor) Reset(ctx context.Context) error {
	c.rows = nil
	c.pos = 0
	c.drained = false
	c.sortErr = nil
	return c.input.Reset(ctx)
}
