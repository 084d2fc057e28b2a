package exec_test

import (
	"context"
	"testing"

	"github.com/panda-sheep/memgraph/exec"
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/internal/graphtest"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
	"github.com/stretchr/testify/require"
)

// unwindLiteralList builds an Unwind over a literal list, a convenient
// multi-row source for operators below ScanAll in the pipeline.
func unwindLiteralList(items []value.Value, out symbol.Symbol) *plan.Unwind {
	return &plan.Unwind{
		Input:  &plan.Once{},
		Expr:   &expr.Literal{Value: value.NewList(items)},
		Output: out,
	}
}

func TestUnwindCursor_NullSkipsParentRow(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	out := tbl.Create("x", true)
	frame := symbol.NewFrame(tbl)

	op := &plan.Unwind{Input: &plan.Once{}, Expr: &expr.Literal{Value: value.Null}, Output: out}
	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 0, pullAll(t, c, frame))
}

func TestUnwindCursor_NonListIsTypeError(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	out := tbl.Create("x", true)
	frame := symbol.NewFrame(tbl)

	op := &plan.Unwind{Input: &plan.Once{}, Expr: &expr.Literal{Value: value.NewInt(5)}, Output: out}
	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	_, err := c.Pull(context.Background(), frame)
	require.Error(t, err)
}

func TestUnwindCursor_EmitsEachElement(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	out := tbl.Create("x", true)
	frame := symbol.NewFrame(tbl)

	op := unwindLiteralList([]value.Value{value.NewInt(1), value.NewInt(2), value.NewInt(3)}, out)
	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 3, pullAll(t, c, frame))
}

// TestUnwindCursor_EmptyListYieldsNoRows confirms an empty list unwinds to
// zero rows rather than one row with a Null element.
func TestUnwindCursor_EmptyListYieldsNoRows(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	out := tbl.Create("x", true)
	frame := symbol.NewFrame(tbl)

	op := unwindLiteralList(nil, out)
	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 0, pullAll(t, c, frame))
}
