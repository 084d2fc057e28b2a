package exec_test

import (
	"context"
	"testing"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/exec"
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/internal/graphtest"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
	"github.com/stretchr/testify/require"
)

func fiveVertices(db *graphtest.DB) {
	for i := 0; i < 5; i++ {
		db.AddVertex(nil, nil)
	}
}

func TestSkipCursor(t *testing.T) {
	db := graphtest.NewDB()
	fiveVertices(db)

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAll{Input: &plan.Once{}, Output: n, View: accessor.New}
	skip := &plan.Skip{Input: scan, Expr: &expr.Literal{Value: value.NewInt(3)}}
	c := exec.MakeCursor(skip, &exec.Runtime{DB: db})
	require.Equal(t, 2, pullAll(t, c, frame))
}

func TestLimitCursor(t *testing.T) {
	db := graphtest.NewDB()
	fiveVertices(db)

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAll{Input: &plan.Once{}, Output: n, View: accessor.New}
	limit := &plan.Limit{Input: scan, Expr: &expr.Literal{Value: value.NewInt(2)}}
	c := exec.MakeCursor(limit, &exec.Runtime{DB: db})
	require.Equal(t, 2, pullAll(t, c, frame))
}

// TestLimitOverSkipCursor_ComposesToMiddleWindow exercises spec scenario
// S7: Limit(5, Skip(3, input)) over 10 rows yields exactly rows 4..8
// (1-indexed).
func TestLimitOverSkipCursor_ComposesToMiddleWindow(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	x := tbl.Create("x", true)
	frame := symbol.NewFrame(tbl)

	items := make([]value.Value, 10)
	for i := range items {
		items[i] = value.NewInt(int64(i + 1))
	}
	src := unwindLiteralList(items, x)
	skip := &plan.Skip{Input: src, Expr: &expr.Literal{Value: value.NewInt(3)}}
	limit := &plan.Limit{Input: skip, Expr: &expr.Literal{Value: value.NewInt(5)}}
	c := exec.MakeCursor(limit, &exec.Runtime{DB: db})

	var got []value.Value
	for {
		ok, err := c.Pull(context.Background(), frame)
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, frame.Get(x))
	}
	require.Equal(t, []value.Value{
		value.NewInt(4), value.NewInt(5), value.NewInt(6), value.NewInt(7), value.NewInt(8),
	}, got)
}

func TestSkipCursor_NegativeIsQueryRuntimeError(t *testing.T) {
	db := graphtest.NewDB()
	fiveVertices(db)

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAll{Input: &plan.Once{}, Output: n, View: accessor.New}
	skip := &plan.Skip{Input: scan, Expr: &expr.Literal{Value: value.NewInt(-1)}}
	c := exec.MakeCursor(skip, &exec.Runtime{DB: db})
	_, err := c.Pull(context.Background(), frame)
	require.Error(t, err)
}
