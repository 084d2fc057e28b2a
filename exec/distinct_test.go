package exec_test

import (
	"testing"

	"github.com/panda-sheep/memgraph/exec"
	"github.com/panda-sheep/memgraph/internal/graphtest"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
	"github.com/stretchr/testify/require"
)

func TestDistinctCursor_NullNeverEqualsNull(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	src := unwindLiteralList([]value.Value{
		value.NewInt(1), value.NewInt(1), value.Null, value.Null, value.NewInt(2),
	}, n)
	distinctOp := &plan.Distinct{Input: src, Symbols: []symbol.Symbol{n}}
	c := exec.MakeCursor(distinctOp, &exec.Runtime{DB: db})
	// 1, Null, Null, 2 survive: Null never dedupes against another Null.
	require.Equal(t, 4, pullAll(t, c, frame))
}
