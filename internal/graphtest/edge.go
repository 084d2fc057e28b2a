package graphtest

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/value"
)

type edgeAccessor struct {
	db   *DB
	id   uint64
	view accessor.View
}

func (e *edgeAccessor) ID() uint64 { return e.id }

func (e *edgeAccessor) Equal(other value.EdgeHandle) bool {
	o, ok := other.(*edgeAccessor)
	return ok && o.db == e.db && o.id == e.id
}

func (e *edgeAccessor) Switch(ctx context.Context, view accessor.View) error {
	if view == accessor.AsIs {
		return nil
	}
	st, ok := e.db.stateOf(e.id, view, false)
	if !ok || st.deleted {
		return accessor.ErrDeleted
	}
	e.view = view
	return nil
}

func (e *edgeAccessor) Reconstruct(ctx context.Context) (bool, error) {
	st, ok := e.db.stateOf(e.id, e.view, false)
	if !ok || st.deleted {
		return false, nil
	}
	return true, nil
}

func (e *edgeAccessor) rec() (*edgeRecord, error) {
	rec, ok := e.db.edges[e.id]
	if !ok {
		return nil, accessor.ErrDeleted
	}
	return rec, nil
}

func (e *edgeAccessor) currentState() (entityState, error) {
	st, ok := e.db.stateOf(e.id, e.view, false)
	if !ok || st.deleted {
		return entityState{}, accessor.ErrDeleted
	}
	return st, nil
}

func (e *edgeAccessor) From() accessor.VertexAccessor {
	rec, err := e.rec()
	if err != nil {
		return nil
	}
	return &vertexAccessor{db: e.db, id: rec.from, view: e.view}
}

func (e *edgeAccessor) To() accessor.VertexAccessor {
	rec, err := e.rec()
	if err != nil {
		return nil
	}
	return &vertexAccessor{db: e.db, id: rec.to, view: e.view}
}

func (e *edgeAccessor) EdgeType() string {
	rec, err := e.rec()
	if err != nil {
		return ""
	}
	return rec.edgeType
}

func (e *edgeAccessor) Property(ctx context.Context, key string) (value.Value, error) {
	st, err := e.currentState()
	if err != nil {
		return value.Null, err
	}
	if v, ok := st.props[key]; ok {
		return v, nil
	}
	return value.Null, nil
}

func (e *edgeAccessor) SetProperty(ctx context.Context, key string, val value.Value) error {
	rec, err := e.rec()
	if err != nil || rec.new_.deleted {
		return accessor.ErrDeleted
	}
	rec.new_.props[key] = val
	return nil
}

func (e *edgeAccessor) EraseProperty(ctx context.Context, key string) error {
	rec, err := e.rec()
	if err != nil || rec.new_.deleted {
		return accessor.ErrDeleted
	}
	delete(rec.new_.props, key)
	return nil
}

func (e *edgeAccessor) Properties(ctx context.Context) (map[string]value.Value, error) {
	st, err := e.currentState()
	if err != nil {
		return nil, err
	}
	out := make(map[string]value.Value, len(st.props))
	for k, v := range st.props {
		out[k] = v
	}
	return out, nil
}
