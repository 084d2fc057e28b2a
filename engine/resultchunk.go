package engine

import "github.com/panda-sheep/memgraph/value"

// ResultChunk carries a batch of output rows, row-major flattened into
// Values the way the teacher's query/exec.ResultChunk does: Values holds
// len(Columns) entries per row, one row after another (spec §6.3).
type ResultChunk struct {
	Columns []string
	Values  []value.Value
}

// NumRows reports how many rows this chunk holds.
func (r ResultChunk) NumRows() int {
	if len(r.Columns) == 0 {
		return 0
	}
	return len(r.Values) / len(r.Columns)
}
