package exec_test

import (
	"context"
	"testing"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/exec"
	"github.com/panda-sheep/memgraph/internal/graphtest"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/stretchr/testify/require"
)

func TestMergeCursor_CreatesWhenMatchYieldsNothing(t *testing.T) {
	db := graphtest.NewDB()

	tbl := symbol.NewTable()
	out := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	match := &plan.ScanAllByLabel{Input: &plan.Once{}, Output: out, Label: "Target", View: accessor.New}
	create := &plan.CreateNode{Input: &plan.Once{}, Output: out, Labels: []string{"Target"}}
	op := &plan.Merge{Input: &plan.Once{}, MergeMatch: match, MergeCreate: create}

	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 1, pullAll(t, c, frame))

	count, err := db.VerticesCount(context.Background(), "Target")
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)
}

func TestMergeCursor_SkipsCreateWhenMatchYieldsRows(t *testing.T) {
	db := graphtest.NewDB()
	db.AddVertex([]string{"Target"}, nil)

	tbl := symbol.NewTable()
	out := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	match := &plan.ScanAllByLabel{Input: &plan.Once{}, Output: out, Label: "Target", View: accessor.New}
	create := &plan.CreateNode{Input: &plan.Once{}, Output: out, Labels: []string{"Target"}}
	op := &plan.Merge{Input: &plan.Once{}, MergeMatch: match, MergeCreate: create}

	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 1, pullAll(t, c, frame))

	count, err := db.VerticesCount(context.Background(), "Target")
	require.NoError(t, err)
	require.Equal(t, uint64(1), count) // unchanged: no create ran
}
