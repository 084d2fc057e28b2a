// Package accessor defines the contract the engine consumes from the
// storage/MVCC layer (spec §6.1): vertex/edge lookup, iteration, index
// scans, mutation, command-boundary advance, cooperative abort, and
// accessor reconstruction across command boundaries. The storage layer
// implements these interfaces; the engine only ever calls through them.
package accessor

import (
	"context"
	"errors"

	"github.com/panda-sheep/memgraph/value"
)

// View selects which version of a record an accessor currently exposes.
// OLD is the snapshot at statement start; NEW folds in this statement's
// own writes. AS_IS means "whatever the accessor is already switched to" —
// legal almost everywhere, but spec §4.2 makes it illegal for a bare
// ScanAll, which must commit to OLD or NEW.
type View int

const (
	AsIs View = iota
	Old
	New
)

func (v View) String() string {
	switch v {
	case Old:
		return "OLD"
	case New:
		return "NEW"
	default:
		return "AS_IS"
	}
}

// Direction selects which incident edges Expand enumerates.
type Direction int

const (
	Out Direction = iota
	In
	Both
)

// ErrDeleted is returned by Switch (and by any accessor method called
// after a record was deleted in this transaction) to signal that the
// record is no longer visible; Reconstruct reports the same condition as
// false with no error. The engine passes ErrDeleted through unchanged: it
// is not converted into a QueryRuntimeError.
var ErrDeleted = errors.New("accessor: record no longer visible")

// VertexAccessor is a handle into the storage layer's MVCC version list for
// one vertex. All mutating calls operate on whichever version Switch last
// selected.
type VertexAccessor interface {
	// ID is a stable identifier across versions of the same vertex, used for
	// equality and as an Expand/Distinct/ExpandUniquenessFilter memo key.
	ID() uint64
	Equal(value.VertexHandle) bool

	// Switch rebinds this accessor to the requested view. Returns an error
	// (wrapping ErrDeleted) if no visible version exists under that view.
	Switch(ctx context.Context, v View) error
	// Reconstruct re-resolves visibility under the current command. Returns
	// false (no error) if the record is no longer visible, e.g. deleted in
	// this transaction; callers must stop using the accessor when false.
	Reconstruct(ctx context.Context) (bool, error)

	Property(ctx context.Context, key string) (value.Value, error)
	SetProperty(ctx context.Context, key string, v value.Value) error
	EraseProperty(ctx context.Context, key string) error
	Properties(ctx context.Context) (map[string]value.Value, error)

	HasLabel(ctx context.Context, label string) (bool, error)
	AddLabel(ctx context.Context, label string) error
	RemoveLabel(ctx context.Context, label string) error
	Labels(ctx context.Context) ([]string, error)

	// InEdges/OutEdges are lazy sequences of EdgeAccessor, consumed via the
	// returned EdgeIterator.
	InEdges(ctx context.Context) (EdgeIterator, error)
	OutEdges(ctx context.Context) (EdgeIterator, error)
}

// EdgeAccessor is a handle into the storage layer's MVCC version list for
// one edge.
type EdgeAccessor interface {
	ID() uint64
	Equal(value.EdgeHandle) bool

	Switch(ctx context.Context, v View) error
	Reconstruct(ctx context.Context) (bool, error)

	From() VertexAccessor
	To() VertexAccessor
	EdgeType() string

	Property(ctx context.Context, key string) (value.Value, error)
	SetProperty(ctx context.Context, key string, v value.Value) error
	EraseProperty(ctx context.Context, key string) error
	Properties(ctx context.Context) (map[string]value.Value, error)
}

// EdgeIterator is a lazy, single-pass sequence of EdgeAccessor. Next
// advances and returns (edge, true, nil) while items remain, (nil, false,
// nil) at exhaustion, or a non-nil error on storage failure.
type EdgeIterator interface {
	Next(ctx context.Context) (EdgeAccessor, bool, error)
}

// VertexIterator is a lazy, single-pass sequence of VertexAccessor, used by
// ScanAll and its label/index-restricted variants.
type VertexIterator interface {
	Next(ctx context.Context) (VertexAccessor, bool, error)
}

// PropertyRange bounds a ScanAllByLabelPropertyRange scan. At least one of
// Lower/Upper must be set (spec §4.2). Each bound is independently
// inclusive or exclusive.
type PropertyRange struct {
	Lower          *value.Value
	LowerInclusive bool
	Upper          *value.Value
	UpperInclusive bool
}

// GraphDbAccessor is the full contract the engine consumes from the
// storage/MVCC layer (spec §6.1).
type GraphDbAccessor interface {
	InsertVertex(ctx context.Context) (VertexAccessor, error)
	InsertEdge(ctx context.Context, from, to VertexAccessor, edgeType string) (EdgeAccessor, error)
	RemoveVertex(ctx context.Context, v VertexAccessor, detach bool) error
	RemoveEdge(ctx context.Context, e EdgeAccessor) error

	Vertices(ctx context.Context, v View) (VertexIterator, error)
	VerticesByLabel(ctx context.Context, v View, label string) (VertexIterator, error)
	VerticesByLabelPropertyValue(ctx context.Context, v View, label, property string, val value.Value) (VertexIterator, error)
	VerticesByLabelPropertyRange(ctx context.Context, v View, label, property string, r PropertyRange) (VertexIterator, error)

	// BuildIndex requests storage to build an index on (label, property).
	// Returns ErrIndexExists if one already exists.
	BuildIndex(ctx context.Context, label, property string) error

	VerticesCount(ctx context.Context, label string) (uint64, error)
	VerticesCountByValue(ctx context.Context, label, property string, val *value.Value) (uint64, error)
	VerticesCountByRange(ctx context.Context, label, property string, r PropertyRange) (uint64, error)

	// AdvanceCommand ends the current statement: the next NEW-view read
	// folds in everything written so far in this transaction, as if it were
	// now OLD.
	AdvanceCommand(ctx context.Context) error

	// ShouldAbort is the cooperative cancellation signal, polled before
	// every row-producing step (spec §4.1).
	ShouldAbort(ctx context.Context) bool
}

// ErrIndexExists is returned by BuildIndex when the requested (label,
// property) index already exists. CreateIndex is the only operator that
// swallows it (spec §4.16, §7); everywhere else it's fatal.
var ErrIndexExists = errors.New("accessor: index already exists")
