package graphtest

import (
	"context"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/value"
)

type vertexAccessor struct {
	db   *DB
	id   uint64
	view accessor.View
}

func (v *vertexAccessor) ID() uint64 { return v.id }

func (v *vertexAccessor) Equal(other value.VertexHandle) bool {
	o, ok := other.(*vertexAccessor)
	return ok && o.db == v.db && o.id == v.id
}

func (v *vertexAccessor) Switch(ctx context.Context, view accessor.View) error {
	if view == accessor.AsIs {
		return nil
	}
	st, ok := v.db.stateOf(v.id, view, true)
	if !ok {
		return accessor.ErrDeleted
	}
	if st.deleted {
		return accessor.ErrDeleted
	}
	v.view = view
	return nil
}

func (v *vertexAccessor) Reconstruct(ctx context.Context) (bool, error) {
	st, ok := v.db.stateOf(v.id, v.view, true)
	if !ok || st.deleted {
		return false, nil
	}
	return true, nil
}

func (v *vertexAccessor) currentState() (entityState, error) {
	st, ok := v.db.stateOf(v.id, v.view, true)
	if !ok || st.deleted {
		return entityState{}, accessor.ErrDeleted
	}
	return st, nil
}

func (v *vertexAccessor) Property(ctx context.Context, key string) (value.Value, error) {
	st, err := v.currentState()
	if err != nil {
		return value.Null, err
	}
	if val, ok := st.props[key]; ok {
		return val, nil
	}
	return value.Null, nil
}

func (v *vertexAccessor) SetProperty(ctx context.Context, key string, val value.Value) error {
	rec, ok := v.db.vertices[v.id]
	if !ok || rec.new_.deleted {
		return accessor.ErrDeleted
	}
	rec.new_.props[key] = val
	return nil
}

func (v *vertexAccessor) EraseProperty(ctx context.Context, key string) error {
	rec, ok := v.db.vertices[v.id]
	if !ok || rec.new_.deleted {
		return accessor.ErrDeleted
	}
	delete(rec.new_.props, key)
	return nil
}

func (v *vertexAccessor) Properties(ctx context.Context) (map[string]value.Value, error) {
	st, err := v.currentState()
	if err != nil {
		return nil, err
	}
	out := make(map[string]value.Value, len(st.props))
	for k, val := range st.props {
		out[k] = val
	}
	return out, nil
}

func (v *vertexAccessor) HasLabel(ctx context.Context, label string) (bool, error) {
	st, err := v.currentState()
	if err != nil {
		return false, err
	}
	return st.labels[label], nil
}

func (v *vertexAccessor) AddLabel(ctx context.Context, label string) error {
	rec, ok := v.db.vertices[v.id]
	if !ok || rec.new_.deleted {
		return accessor.ErrDeleted
	}
	rec.new_.labels[label] = true
	return nil
}

func (v *vertexAccessor) RemoveLabel(ctx context.Context, label string) error {
	rec, ok := v.db.vertices[v.id]
	if !ok || rec.new_.deleted {
		return accessor.ErrDeleted
	}
	delete(rec.new_.labels, label)
	return nil
}

func (v *vertexAccessor) Labels(ctx context.Context) ([]string, error) {
	st, err := v.currentState()
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(st.labels))
	for l := range st.labels {
		out = append(out, l)
	}
	return out, nil
}

func (v *vertexAccessor) InEdges(ctx context.Context) (accessor.EdgeIterator, error) {
	var ids []uint64
	for _, e := range v.db.edges {
		st, ok := v.db.stateOf(e.id, v.view, false)
		if !ok || st.deleted {
			continue
		}
		if e.to == v.id {
			ids = append(ids, e.id)
		}
	}
	return &edgeIter{db: v.db, view: v.view, ids: ids}, nil
}

func (v *vertexAccessor) OutEdges(ctx context.Context) (accessor.EdgeIterator, error) {
	var ids []uint64
	for _, e := range v.db.edges {
		st, ok := v.db.stateOf(e.id, v.view, false)
		if !ok || st.deleted {
			continue
		}
		if e.from == v.id {
			ids = append(ids, e.id)
		}
	}
	return &edgeIter{db: v.db, view: v.view, ids: ids}, nil
}

type edgeIter struct {
	db   *DB
	view accessor.View
	ids  []uint64
	pos  int
}

func (it *edgeIter) Next(ctx context.Context) (accessor.EdgeAccessor, bool, error) {
	if it.pos >= len(it.ids) {
		return nil, false, nil
	}
	id := it.ids[it.pos]
	it.pos++
	return &edgeAccessor{db: it.db, id: id, view: it.view}, true, nil
}

type vertexIter struct {
	db   *DB
	view accessor.View
	ids  []uint64
	pos  int
}

func (it *vertexIter) Next(ctx context.Context) (accessor.VertexAccessor, bool, error) {
	if it.pos >= len(it.ids) {
		return nil, false, nil
	}
	id := it.ids[it.pos]
	it.pos++
	return &vertexAccessor{db: it.db, id: id, view: it.view}, true, nil
}
