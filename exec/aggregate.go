package exec

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/qerror"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
)

// aggState reduces one AggregateSpec's values across a group (spec §4.9).
type aggState struct {
	op           plan.AggregateOp
	count        int64
	sumInt       int64
	sumFloat     float64
	sawDouble    bool
	min, max     value.Value
	haveExtremum bool
	collected    []value.Value
}

func newAggState(op plan.AggregateOp) aggState {
	return aggState{op: op, collected: []value.Value{}}
}

func (s *aggState) apply(countUnconditionally bool, v value.Value) error {
	switch s.op {
	case plan.AggCount:
		if countUnconditionally || !v.IsNull() {
			s.count++
		}
	case plan.AggSum:
		if v.IsNull() {
			return nil
		}
		if !v.IsNumeric() {
			return qerror.TypeErrorf("SUM applied to non-numeric value of type %s", v.Typ)
		}
		s.addNumeric(v)
	case plan.AggAvg:
		if v.IsNull() {
			return nil
		}
		if !v.IsNumeric() {
			return qerror.TypeErrorf("AVG applied to non-numeric value of type %s", v.Typ)
		}
		s.sumFloat += v.AsDouble()
		s.count++
	case plan.AggMin:
		if v.IsNull() {
			return nil
		}
		if !s.haveExtremum {
			if _, err := value.Compare(v, v); err != nil {
				return qerror.Wrap(qerror.KindType, err, "MIN over incomparable values")
			}
			s.min, s.haveExtremum = v, true
			return nil
		}
		cmp, err := value.Compare(v, s.min)
		if err != nil {
			return qerror.Wrap(qerror.KindType, err, "MIN over incomparable values")
		}
		if cmp < 0 {
			s.min = v
		}
	case plan.AggMax:
		if v.IsNull() {
			return nil
		}
		if !s.haveExtremum {
			if _, err := value.Compare(v, v); err != nil {
				return qerror.Wrap(qerror.KindType, err, "MAX over incomparable values")
			}
			s.max, s.haveExtremum = v, true
			return nil
		}
		cmp, err := value.Compare(v, s.max)
		if err != nil {
			return qerror.Wrap(qerror.KindType, err, "MAX over incomparable values")
		}
		if cmp > 0 {
			s.max = v
		}
	case plan.AggCollect:
		s.collected = append(s.collected, v) // includes Null (SPEC_FULL.md Open Question)
	}
	return nil
}

func (s *aggState) addNumeric(v value.Value) {
	if v.Typ == value.TypeInt && !s.sawDouble {
		s.sumInt += v.Int
		s.count++
		return
	}
	if v.Typ == value.TypeDouble && !s.sawDouble {
		s.sawDouble = true
	}
	s.sumFloat += v.AsDouble()
	s.count++
}

func (s *aggState) result() value.Value {
	switch s.op {
	case plan.AggCount:
		return value.NewInt(s.count)
	case plan.AggSum:
		if s.sawDouble {
			return value.NewDouble(s.sumFloat + float64(s.sumInt))
		}
		return value.NewInt(s.sumInt)
	case plan.AggAvg:
		if s.count == 0 {
			return value.Null
		}
		return value.NewDouble(s.sumFloat / float64(s.count))
	case plan.AggMin:
		if !s.haveExtremum {
			return value.Null
		}
		return s.min
	case plan.AggMax:
		if !s.haveExtremum {
			return value.Null
		}
		return s.max
	case plan.AggCollect:
		return value.NewList(s.collected)
	default:
		return value.Null
	}
}

type aggGroup struct {
	key      []value.Value
	remember []value.Value
	state    []aggState
}

// aggregateCursor blocks: groups input rows by GroupBy, reduces each
// group's Aggregations, and places Remember symbol values alongside the
// reduced values on the output frame (spec §4.9).
type aggregateCursor struct {
	op      *plan.Aggregate
	rt      *Runtime
	input   Cursor
	groups  []*aggGroup
	pos     int
	drained bool
}

func newAggregateCursor(op *plan.Aggregate, rt *Runtime) *aggregateCursor {
	return &aggregateCursor{op: op, rt: rt, input: MakeCursor(op.Input, rt)}
}

func (c *aggregateCursor) Pull(ctx context.Context, frame *symbol.Frame) (bool, error) {
	if !c.drained {
		if err := c.drain(ctx, frame); err != nil {
			return false, err
		}
	}
	if c.pos >= len(c.groups) {
		return false, nil
	}
	g := c.groups[c.pos]
	c.pos++
	for i, spec := range c.op.Aggregations {
		frame.Set(spec.Output, g.state[i].result())
	}
	for i, s := range c.op.Remember {
		frame.Set(s, g.remember[i])
	}
	return true, nil
}

func (c *aggregateCursor) drain(ctx context.Context, frame *symbol.Frame) error {
	rowSeen := false
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
		rowSeen = true
		key := make([]value.Value, len(c.op.GroupBy))
		for i, ge := range c.op.GroupBy {
			v, err := eval(ctx, c.rt, frame, accessor.New, ge)
			if err != nil {
				return err
			}
			key[i] = v
		}
		g := c.findGroup(key)
		if g == nil {
			g = c.newGroup(key, frame)
			c.groups = append(c.groups, g)
		}
		for i, spec := range c.op.Aggregations {
			var v value.Value
			if spec.Expr != nil {
				v, err = eval(ctx, c.rt, frame, accessor.New, spec.Expr)
				if err != nil {
					return err
				}
			}
			if err := g.state[i].apply(spec.Expr == nil, v); err != nil {
				return err
			}
		}
	}
	if !rowSeen && len(c.op.GroupBy) == 0 {
		c.groups = append(c.groups, c.newGroup(nil, nil))
	}
	c.drained = true
	return nil
}

func (c *aggregateCursor) findGroup(key []value.Value) *aggGroup {
	for _, g := range c.groups {
		if sameKey(g.key, key) {
			return g
		}
	}
	return nil
}

func sameKey(a, b []value.Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !value.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (c *aggregateCursor) newGroup(key []value.Value, frame *symbol.Frame) *aggGroup {
	remember := make([]value.Value, len(c.op.Remember))
	if frame != nil {
		for i, s := range c.op.Remember {
			remember[i] = frame.Get(s)
		}
	}
	state := make([]aggState, len(c.op.Aggregations))
	for i, spec := range c.op.Aggregations {
		state[i] = newAggState(spec.Op)
	}
	return &aggGroup{key: key, remember: remember, state: state}
}

func (c *aggregateCursor) Reset(ctx context.Context) error {
	c.groups = nil
	c.pos = 0
	c.drained = false
	return c.input.Reset(ctx)
}
