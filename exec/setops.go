package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// setPropertyCursor evaluates Rhs under NEW and writes it to the property
// Lhs names; a Null Lhs target is a no-op, a Null Rhs erases the property
// (spec §4.6).
type setPropertyCursor struct {
	op    *plan.SetProperty
	rt    *Runtime
	input Cursor
}

func newSetPropertyCursor(op *plan.SetProperty, rt *Runtime) *setPropertyCursor {
	return &setPropertyCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *setPropertyCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	target, err := eval(ctx, c.rt, frame, accessor.New, c.op.Lhs.Target)
	if err != nil {
		return false, err
	}
	if target.IsNull() {
		return true, nil
	}
	rhs, err := eval(ctx, c.rt, frame, accessor.New, c.op.Rhs)
	if err != nil {
		return false, err
	}
	switch target.Typ {
	case value.TypeVertex:
		va := target.Vertex.(accessor.VertexAccessor)
		if err := va.Switch(ctx, accessor.New); err != nil {
			return false, err
		}
		if rhs.IsNull() {
			err = va.EraseProperty(ctx, c.op.Lhs.Key)
		} else {
			err = va.SetProperty(ctx, c.op.Lhs.Key, rhs)
		}
	case value.TypeEdge:
		ea := target.Edge.(accessor.EdgeAccessor)
		if err := ea.Switch(ctx, accessor.New); err != nil {
			return false, err
		}
		if rhs.IsNull() {
			err = ea.EraseProperty(ctx, c.op.Lhs.Key)
		} else {
			err = ea.SetProperty(ctx, c.op.Lhs.Key, rhs)
		}
	default:
		return false, qerror.QueryRuntimeErrorf("SET property on non-entity value of type %s", target.Typ)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *setPropertyCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}

type propertyHolder interface {
	Switch(ctx context.Context, v accessor.View) error
	Property(ctx context.Context, key string) (value.Value, error)
	SetProperty(ctx context.Context, key string, v value.Value) error
	EraseProperty(ctx context.Context, key string) error
	Properties(ctx context.Context) (map[string]value.Value, error)
}

// setPropertiesCursor copies properties from evaluating Rhs onto
// frame[Target]; Op == PropertiesReplace clears the target's properties
// first (spec §4.6).
type setPropertiesCursor struct {
	op    *plan.SetProperties
	rt    *Runtime
	input Cursor
}

func newSetPropertiesCursor(op *plan.SetProperties, rt *Runtime) *setPropertiesCursor {
	return &setPropertiesCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *setPropertiesCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	targetVal := frame.Get(c.op.Target)
	if targetVal.IsNull() {
		return true, nil
	}
	var holder propertyHolder
	switch targetVal.Typ {
	case value.TypeVertex:
		holder = targetVal.Vertex.(accessor.VertexAccessor)
	case value.TypeEdge:
		holder = targetVal.Edge.(accessor.EdgeAccessor)
	default:
		return false, qerror.QueryRuntimeErrorf("SET properties on non-entity value of type %s", targetVal.Typ)
	}
	if err := holder.Switch(ctx, accessor.New); err != nil {
		return false, err
	}

	rhs, err := eval(ctx, c.rt, frame, accessor.New, c.op.Rhs)
	if err != nil {
		return false, err
	}
	var props map[string]value.Value
	switch rhs.Typ {
	case value.TypeNull:
		props = nil
	case value.TypeMap:
		props = rhs.Map
	case value.TypeVertex:
		src := rhs.Vertex.(accessor.VertexAccessor)
		if err := src.Switch(ctx, accessor.New); err != nil {
			return false, err
		}
		props, err = src.Properties(ctx)
	case value.TypeEdge:
		src := rhs.Edge.(accessor.EdgeAccessor)
		if err := src.Switch(ctx, accessor.New); err != nil {
			return false, err
		}
		props, err = src.Properties(ctx)
	default:
		return false, qerror.TypeErrorf("SET properties source must be a Map, Vertex, or Edge, got %s", rhs.Typ)
	}
	if err != nil {
		return false, err
	}

	if c.op.Op == plan.PropertiesReplace {
		existing, err := holder.Properties(ctx)
		if err != nil {
			return false, err
		}
		for k := range existing {
			if err := holder.EraseProperty(ctx, k); err != nil {
				return false, err
			}
		}
	}
	for k, v := range props {
		if err := holder.SetProperty(ctx, k, v); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *setPropertiesCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}

// setLabelsCursor idempotently adds Labels to frame[Target]. Null target:
// no-op; non-Vertex: QueryRuntimeError (spec §4.6).
type setLabelsCursor struct {
	op    *plan.SetLabels
	rt    *Runtime
	input Cursor
}

func newSetLabelsCursor(op *plan.SetLabels, rt *Runtime) *setLabelsCursor {
	return &setLabelsCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *setLabelsCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	targetVal := frame.Get(c.op.Target)
	if targetVal.IsNull() {
		return true, nil
	}
	if targetVal.Typ != value.TypeVertex {
		return false, qerror.QueryRuntimeErrorf("SET labels on non-vertex value of type %s", targetVal.Typ)
	}
	va := targetVal.Vertex.(accessor.VertexAccessor)
	if err := va.Switch(ctx, accessor.New); err != nil {
		return false, err
	}
	for _, label := range c.op.Labels {
		if err := va.AddLabel(ctx, label); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *setLabelsCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}

// removePropertyCursor is the dual of SetProperty.
type removePropertyCursor struct {
	op    *plan.RemoveProperty
	rt    *Runtime
	input Cursor
}

func newRemovePropertyCursor(op *plan.RemoveProperty, rt *Runtime) *removePropertyCursor {
	return &removePropertyCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *removePropertyCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	target, err := eval(ctx, c.rt, frame, accessor.New, c.op.Lhs.Target)
	if err != nil {
		return false, err
	}
	if target.IsNull() {
		return true, nil
	}
	switch target.Typ {
	case value.TypeVertex:
		va := target.Vertex.(accessor.VertexAccessor)
		if err := va.Switch(ctx, accessor.New); err != nil {
			return false, err
		}
		err = va.EraseProperty(ctx, c.op.Lhs.Key)
	case value.TypeEdge:
		ea := target.Edge.(accessor.EdgeAccessor)
		if err := ea.Switch(ctx, accessor.New); err != nil {
			return false, err
		}
		err = ea.EraseProperty(ctx, c.op.Lhs.Key)
	default:
		return false, qerror.QueryRuntimeErrorf("REMOVE property on non-entity value of type %s", target.Typ)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (c *removePropertyCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}

// removeLabelsCursor is the dual of SetLabels.
type removeLabelsCursor struct {
	op    *plan.RemoveLabels
	rt    *Runtime
	input Cursor
}

func newRemoveLabelsCursor(op *plan.RemoveLabels, rt *Runtime) *removeLabelsCursor {
	return &removeLabelsCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *removeLabelsCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if err := checkAbort(ctx, c.rt); err != nil {
		return false, err
	}
	ok, err := c.input.Pull(ctx, frame)
	if err != nil || !ok {
		return false, err
	}
	targetVal := frame.Get(c.op.Target)
	if targetVal.IsNull() {
		return true, nil
	}
	if targetVal.Typ != value.TypeVertex {
		return false, qerror.QueryRuntimeErrorf("REMOVE labels on non-vertex value of type %s", targetVal.Typ)
	}
	va := targetVal.Vertex.(accessor.VertexAccessor)
	if err := va.Switch(ctx, accessor.New); err != nil {
		return false, err
	}
	for _, label := range c.op.Labels {
		if err := va.RemoveLabel(ctx, label); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (c *removeLabelsCursor) Reset(ctx context.Context) error {
	return c.input.Reset(ctx)
}
