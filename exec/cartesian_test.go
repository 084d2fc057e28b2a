package exec_test

import (
	"testing"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/exec"
	"github.com/panda-sheep/memgraph/internal/graphtest"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/stretchr/testify/require"
)

func TestCartesianCursor_NestedLoop(t *testing.T) {
	db := graphtest.NewDB()
	db.AddVertex([]string{"A"}, nil)
	db.AddVertex([]string{"A"}, nil)
	db.AddVertex([]string{"B"}, nil)
	db.AddVertex([]string{"B"}, nil)
	db.AddVertex([]string{"B"}, nil)

	tbl := symbol.NewTable()
	a := tbl.Create("a", true)
	b := tbl.Create("b", true)
	frame := symbol.NewFrame(tbl)

	left := &plan.ScanAllByLabel{Input: &plan.Once{}, Output: a, Label: "A", View: accessor.New}
	right := &plan.ScanAllByLabel{Input: &plan.Once{}, Output: b, Label: "B", View: accessor.New}
	op := &plan.Cartesian{Left: left, Right: right}

	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 6, pullAll(t, c, frame))
}
