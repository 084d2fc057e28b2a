package engine

import "io"

// RunOptions is the only "configuration" execution has: no config files,
// no CLI, just per-query knobs (SPEC_FULL.md §2), grounded on the
// teacher's query.Options.Debug/DebugOut.
type RunOptions struct {
	// Debug, when true, makes Run write a one-line report of the top-level
	// cursor's pull count and row count to DebugOut after the query
	// succeeds. Nothing is written when the query fails.
	Debug    bool
	DebugOut io.Writer

	// ChunkSize caps how many rows Run batches into one ResultChunk before
	// sending it. Zero means DefaultChunkSize.
	ChunkSize int
}

// DefaultChunkSize is used when RunOptions.ChunkSize is zero.
const DefaultChunkSize = 64
