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

func TestProduceCursor_EvaluatesItems(t *testing.T) {
	db := graphtest.NewDB()
	db.AddVertex(nil, nil)

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	doubled := tbl.Create("doubled", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAll{Input: &plan.Once{}, Output: n, View: accessor.New}
	produceOp := &plan.Produce{
		Input: scan,
		Items: []plan.ProduceItem{
			{Expr: &expr.Literal{Value: value.NewInt(21)}, Output: doubled},
		},
	}
	c := exec.MakeCursor(produceOp, &exec.Runtime{DB: db})
	ok, err := c.Pull(context.Background(), frame)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, value.NewInt(21), frame.Get(doubled))
}

func TestAccumulateCursor_DropsInvisibleAfterAdvance(t *testing.T) {
	db := graphtest.NewDB()
	v1 := db.AddVertex(nil, nil)
	_ = v1

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAll{Input: &plan.Once{}, Output: n, View: accessor.New}
	del := &plan.Delete{
		Input: scan,
		Exprs: []expr.Node{&expr.SymbolRef{Name: "n", Position: n.Position}},
	}
	acc := &plan.Accumulate{Input: del, Symbols: []symbol.Symbol{n}, AdvanceCommand: true}

	c := exec.MakeCursor(acc, &exec.Runtime{DB: db})
	require.Equal(t, 0, pullAll(t, c, frame))
}

func TestAccumulateCursor_PlainCache(t *testing.T) {
	db := graphtest.NewDB()
	db.AddVertex(nil, nil)
	db.AddVertex(nil, nil)

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAll{Input: &plan.Once{}, Output: n, View: accessor.New}
	acc := &plan.Accumulate{Input: scan, Symbols: []symbol.Symbol{n}}

	c := exec.MakeCursor(acc, &exec.Runtime{DB: db})
	require.Equal(t, 2, pullAll(t, c, frame))
}
