package graphtest

import (
	"context"
	"fmt"

	"github.com/google/btree"
	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/value"
)

// indexKey is a (label, property) pair BuildIndex has created, so a
// second BuildIndex call for the same pair can return accessor.ErrIndexExists
// (spec §4.16/§6.1).
type indexKey struct{ label, property string }

func (db *DB) indexExists(k indexKey) bool {
	if db.indexes == nil {
		return false
	}
	return db.indexes[k]
}

func (db *DB) BuildIndex(ctx context.Context, label, property string) error {
	if db.indexes == nil {
		db.indexes = map[indexKey]bool{}
	}
	k := indexKey{label, property}
	if db.indexes[k] {
		return accessor.ErrIndexExists
	}
	db.indexes[k] = true
	return nil
}

func (db *DB) Vertices(ctx context.Context, v accessor.View) (accessor.VertexIterator, error) {
	var ids []uint64
	for id := range db.vertices {
		st, _ := db.stateOf(id, v, true)
		if !st.deleted {
			ids = append(ids, id)
		}
	}
	return &vertexIter{db: db, view: v, ids: ids}, nil
}

func (db *DB) VerticesByLabel(ctx context.Context, v accessor.View, label string) (accessor.VertexIterator, error) {
	var ids []uint64
	for id := range db.vertices {
		st, _ := db.stateOf(id, v, true)
		if st.deleted || !st.labels[label] {
			continue
		}
		ids = append(ids, id)
	}
	return &vertexIter{db: db, view: v, ids: ids}, nil
}

func (db *DB) VerticesByLabelPropertyValue(ctx context.Context, v accessor.View, label, property string, val value.Value) (accessor.VertexIterator, error) {
	var ids []uint64
	for id := range db.vertices {
		st, _ := db.stateOf(id, v, true)
		if st.deleted || !st.labels[label] {
			continue
		}
		if pv, ok := st.props[property]; ok && value.Equal(pv, val) {
			ids = append(ids, id)
		}
	}
	return &vertexIter{db: db, view: v, ids: ids}, nil
}

// btreeItem orders (property value, vertex id) pairs so
// VerticesByLabelPropertyRange can do an ordered range walk instead of a
// linear scan-and-filter, the way a real label-property index would.
type btreeItem struct {
	val value.Value
	id  uint64
}

func (a btreeItem) Less(than btree.Item) bool {
	b := than.(btreeItem)
	cmp, err := value.Compare(a.val, b.val)
	if err != nil {
		// Incomparable types never co-occur in a single property index in
		// practice; treat them as unordered-but-stable via id to keep the
		// tree well-formed rather than panicking mid-query.
		return a.id < b.id
	}
	if cmp != 0 {
		return cmp < 0
	}
	return a.id < b.id
}

func (db *DB) VerticesByLabelPropertyRange(ctx context.Context, v accessor.View, label, property string, r accessor.PropertyRange) (accessor.VertexIterator, error) {
	if r.Lower == nil && r.Upper == nil {
		return nil, fmt.Errorf("graphtest: property range scan requires at least one bound")
	}
	tree := btree.New(32)
	for id := range db.vertices {
		st, _ := db.stateOf(id, v, true)
		if st.deleted || !st.labels[label] {
			continue
		}
		pv, ok := st.props[property]
		if !ok || pv.IsNull() {
			continue
		}
		tree.ReplaceOrInsert(btreeItem{val: pv, id: id})
	}

	var ids []uint64
	visit := func(it btree.Item) bool {
		item := it.(btreeItem)
		if r.Lower != nil {
			cmp, err := value.Compare(item.val, *r.Lower)
			if err == nil {
				if cmp < 0 || (cmp == 0 && !r.LowerInclusive) {
					return true
				}
			}
		}
		if r.Upper != nil {
			cmp, err := value.Compare(item.val, *r.Upper)
			if err == nil {
				if cmp > 0 || (cmp == 0 && !r.UpperInclusive) {
					return false
				}
			}
		}
		ids = append(ids, item.id)
		return true
	}
	tree.Ascend(visit)
	return &vertexIter{db: db, view: v, ids: ids}, nil
}

func (db *DB) VerticesCount(ctx context.Context, label string) (uint64, error) {
	it, err := db.VerticesByLabel(context.Background(), accessor.New, label)
	if err != nil {
		return 0, err
	}
	return countAll(it), nil
}

func (db *DB) VerticesCountByValue(ctx context.Context, label, property string, val *value.Value) (uint64, error) {
	if val == nil {
		it, err := db.VerticesByLabel(context.Background(), accessor.New, label)
		if err != nil {
			return 0, err
		}
		return countAll(it), nil
	}
	it, err := db.VerticesByLabelPropertyValue(context.Background(), accessor.New, label, property, *val)
	if err != nil {
		return 0, err
	}
	return countAll(it), nil
}

func (db *DB) VerticesCountByRange(ctx context.Context, label, property string, r accessor.PropertyRange) (uint64, error) {
	it, err := db.VerticesByLabelPropertyRange(context.Background(), accessor.New, label, property, r)
	if err != nil {
		return 0, err
	}
	return countAll(it), nil
}

func countAll(it accessor.VertexIterator) uint64 {
	var n uint64
	for {
		_, ok, err := it.Next(context.Background())
		if err != nil || !ok {
			break
		}
		n++
	}
	return n
}
