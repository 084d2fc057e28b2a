// Package exec compiles a plan.Operator tree into a cursor tree and
// implements every cursor's pull/reset contract (spec §4.1). MakeCursor is
// the "fold over the variant" spec §9 calls for: each plan.Operator type
// maps to exactly one cursor type, built once when the query starts
// executing and then pulled until exhausted.
package exec

import (
	"context"
	"fmt"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// Cursor is the uniform pull/reset contract every operator exposes (spec
// §4.1). Pull advances by one row; on true the frame has been updated
// with this cursor's output symbols. Once Pull returns false, it must
// keep returning false until Reset (spec §8 invariant 2).
type Cursor interface {
	Pull(ctx context.Context, frame *symbol.Frame) (bool, error)
	Reset(ctx context.Context) error
}

// Runtime bundles the per-query state every cursor needs beyond its own
// plan.Operator: the storage accessor and the query's bound parameters.
type Runtime struct {
	DB     accessor.GraphDbAccessor
	Params map[string]value.Value
}

// checkAbort is the cooperative cancellation check. Most cursors call it at
// the start of Pull or of each step of their Pull loop; Aggregate and
// OrderBy call it once per input row while draining, and Once does not
// call it.
func checkAbort(ctx context.Context, rt *Runtime) error {
	if rt.DB.ShouldAbort(ctx) {
		return qerror.Abort
	}
	return nil
}

// MakeCursor folds a plan.Operator into its corresponding Cursor,
// recursively building child cursors first. Unexpected operator types are
// a planner-contract violation and panic, the same way the teacher's own
// operator dispatch panics on an unexpected plan shape.
func MakeCursor(op plan.Operator, rt *Runtime) Cursor {
	switch op := op.(type) {
	case *plan.Once:
		return newOnceCursor()
	case *plan.ScanAll:
		return newScanAllCursor(op, rt)
	case *plan.ScanAllByLabel:
		return newScanAllByLabelCursor(op, rt)
	case *plan.ScanAllByLabelPropertyValue:
		return newScanAllByLabelPropertyValueCursor(op, rt)
	case *plan.ScanAllByLabelPropertyRange:
		return newScanAllByLabelPropertyRangeCursor(op, rt)
	case *plan.Expand:
		return newExpandCursor(op, rt)
	case *plan.ExpandUniquenessFilter:
		return newUniquenessCursor(op, rt)
	case *plan.Cartesian:
		return newCartesianCursor(op, rt)
	case *plan.Filter:
		return newFilterCursor(op, rt)
	case *plan.CreateNode:
		return newCreateNodeCursor(op, rt)
	case *plan.CreateExpand:
		return newCreateExpandCursor(op, rt)
	case *plan.Delete:
		return newDeleteCursor(op, rt)
	case *plan.SetProperty:
		return newSetPropertyCursor(op, rt)
	case *plan.SetProperties:
		return newSetPropertiesCursor(op, rt)
	case *plan.SetLabels:
		return newSetLabelsCursor(op, rt)
	case *plan.RemoveProperty:
		return newRemovePropertyCursor(op, rt)
	case *plan.RemoveLabels:
		return newRemoveLabelsCursor(op, rt)
	case *plan.Foreach:
		return newForeachCursor(op, rt)
	case *plan.Produce:
		return newProduceCursor(op, rt)
	case *plan.Accumulate:
		return newAccumulateCursor(op, rt)
	case *plan.Aggregate:
		return newAggregateCursor(op, rt)
	case *plan.Skip:
		return newSkipCursor(op, rt)
	case *plan.Limit:
		return newLimitCursor(op, rt)
	case *plan.OrderBy:
		return newOrderByCursor(op, rt)
	case *plan.Distinct:
		return newDistinctCursor(op, rt)
	case *plan.Merge:
		return newMergeCursor(op, rt)
	case *plan.Optional:
		return newOptionalCursor(op, rt)
	case *plan.Unwind:
		return newUnwindCursor(op, rt)
	case *plan.CreateIndex:
		return newCreateIndexCursor(op, rt)
	default:
		panic(fmt.Sprintf("exec: unexpected operator type %T", op))
	}
}
