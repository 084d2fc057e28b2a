// Package graphtest is an in-memory fake of accessor.GraphDbAccessor used
// by the exec/expr package tests. It is modeled on the teacher's
// viewclient/mockstore.DB: a constructor plus Add* convenience helpers, and
// an explicit Old/New snapshot pair standing in for the real storage
// layer's MVCC version list.
//
// It is not a storage engine — no persistence, no concurrency control
// beyond what's needed to satisfy the accessor contract in single-threaded
// tests. Writes always land in the New snapshot; AdvanceCommand folds New
// into Old, the same semantics a real command boundary has (spec §3
// "Command boundary").
package graphtest

import (
	"context"
	"fmt"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/value"
)

type vertexRecord struct {
	id     uint64
	old    entityState
	new_   entityState
}

type edgeRecord struct {
	id       uint64
	edgeType string
	from, to uint64
	old      entityState
	new_     entityState
}

// entityState is one MVCC snapshot of a vertex or edge: its properties,
// its labels (vertices only), and whether it's visible at all.
type entityState struct {
	props   map[string]value.Value
	labels  map[string]bool
	deleted bool
}

func newEntityState() entityState {
	return entityState{props: map[string]value.Value{}, labels: map[string]bool{}}
}

func (e entityState) clone() entityState {
	c := newEntityState()
	for k, v := range e.props {
		c.props[k] = v
	}
	for l := range e.labels {
		c.labels[l] = true
	}
	c.deleted = e.deleted
	return c
}

// DB is the fake GraphDbAccessor.
type DB struct {
	vertices map[uint64]*vertexRecord
	edges    map[uint64]*edgeRecord
	nextID   uint64
	aborted  bool
	indexes  map[indexKey]bool
}

// NewDB creates an empty fake accessor.
func NewDB() *DB {
	return &DB{
		vertices: map[uint64]*vertexRecord{},
		edges:    map[uint64]*edgeRecord{},
	}
}

func (db *DB) allocID() uint64 {
	db.nextID++
	return db.nextID
}

// AddVertex is a test convenience: inserts a vertex already visible in
// both OLD and NEW view, with the given labels and properties.
func (db *DB) AddVertex(labels []string, props map[string]value.Value) uint64 {
	id := db.allocID()
	st := newEntityState()
	for k, v := range props {
		st.props[k] = v
	}
	for _, l := range labels {
		st.labels[l] = true
	}
	db.vertices[id] = &vertexRecord{id: id, old: st.clone(), new_: st.clone()}
	return id
}

// AddEdge is a test convenience mirroring AddVertex.
func (db *DB) AddEdge(from, to uint64, edgeType string, props map[string]value.Value) uint64 {
	id := db.allocID()
	st := newEntityState()
	for k, v := range props {
		st.props[k] = v
	}
	db.edges[id] = &edgeRecord{id: id, edgeType: edgeType, from: from, to: to, old: st.clone(), new_: st.clone()}
	return id
}

// SetAborted flips the ShouldAbort signal for cooperative-cancellation
// tests.
func (db *DB) SetAborted(v bool) { db.aborted = v }

func (db *DB) ShouldAbort(ctx context.Context) bool { return db.aborted }

// AdvanceCommand folds every record's New snapshot into Old: as spec §3
// puts it, "new view reflects accumulated changes" once the command
// boundary passes.
func (db *DB) AdvanceCommand(ctx context.Context) error {
	for _, v := range db.vertices {
		v.old = v.new_.clone()
	}
	for _, e := range db.edges {
		e.old = e.new_.clone()
	}
	return nil
}

func (db *DB) InsertVertex(ctx context.Context) (accessor.VertexAccessor, error) {
	id := db.allocID()
	db.vertices[id] = &vertexRecord{id: id, old: newEntityState(), new_: newEntityState()}
	// A freshly inserted vertex is visible in NEW immediately but not in
	// OLD until advance_command; mark old as deleted so OLD-view reads see
	// nothing, matching snapshot-isolation semantics.
	db.vertices[id].old.deleted = true
	return &vertexAccessor{db: db, id: id, view: accessor.New}, nil
}

func (db *DB) InsertEdge(ctx context.Context, from, to accessor.VertexAccessor, edgeType string) (accessor.EdgeAccessor, error) {
	id := db.allocID()
	db.edges[id] = &edgeRecord{id: id, edgeType: edgeType, from: from.ID(), to: to.ID(), old: newEntityState(), new_: newEntityState()}
	db.edges[id].old.deleted = true
	return &edgeAccessor{db: db, id: id, view: accessor.New}, nil
}

func (db *DB) RemoveVertex(ctx context.Context, v accessor.VertexAccessor, detach bool) error {
	rec, ok := db.vertices[v.ID()]
	if !ok {
		return fmt.Errorf("graphtest: no such vertex %d", v.ID())
	}
	if !detach {
		for _, e := range db.edges {
			if e.new_.deleted {
				continue
			}
			if e.from == v.ID() || e.to == v.ID() {
				return fmt.Errorf("graphtest: vertex %d still has incident edges", v.ID())
			}
		}
	} else {
		for _, e := range db.edges {
			if e.from == v.ID() || e.to == v.ID() {
				e.new_.deleted = true
			}
		}
	}
	rec.new_.deleted = true
	return nil
}

func (db *DB) RemoveEdge(ctx context.Context, e accessor.EdgeAccessor) error {
	rec, ok := db.edges[e.ID()]
	if !ok {
		return fmt.Errorf("graphtest: no such edge %d", e.ID())
	}
	rec.new_.deleted = true
	return nil
}

func (db *DB) stateOf(id uint64, v accessor.View, vertex bool) (entityState, bool) {
	if vertex {
		rec, ok := db.vertices[id]
		if !ok {
			return entityState{}, false
		}
		if v == accessor.Old {
			return rec.old, true
		}
		return rec.new_, true
	}
	rec, ok := db.edges[id]
	if !ok {
		return entityState{}, false
	}
	if v == accessor.Old {
		return rec.old, true
	}
	return rec.new_, true
}
