package expr_test

import (
	"context"
	"testing"

	"github.com/panda-sheep/memgraph/accessor"
	"github.com/panda-sheep/memgraph/expr"
	"github.com/panda-sheep/memgraph/internal/graphtest"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/panda-sheep/memgraph/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCtx(db accessor.GraphDbAccessor, view accessor.View) (*symbol.Table, *expr.Context) {
	tbl := symbol.NewTable()
	f := symbol.NewFrame(tbl)
	return tbl, &expr.Context{Frame: f, DB: db, View: view, Params: map[string]value.Value{}}
}

func Test_Eval_Literal(t *testing.T) {
	_, ec := newCtx(nil, accessor.Old)
	v, err := expr.Eval(context.Background(), ec, &expr.Literal{Value: value.NewInt(42)})
	require.NoError(t, err)
	assert.Equal(t, value.NewInt(42), v)
}

func Test_Eval_BinaryAddNullPropagates(t *testing.T) {
	_, ec := newCtx(nil, accessor.Old)
	v, err := expr.Eval(context.Background(), ec, &expr.BinaryOp{
		Op:    expr.Add,
		Left:  &expr.Literal{Value: value.Null},
		Right: &expr.Literal{Value: value.NewInt(1)},
	})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func Test_Eval_ComparisonNullPropagates(t *testing.T) {
	_, ec := newCtx(nil, accessor.Old)
	v, err := expr.Eval(context.Background(), ec, &expr.BinaryOp{
		Op:    expr.Lt,
		Left:  &expr.Literal{Value: value.Null},
		Right: &expr.Literal{Value: value.NewInt(1)},
	})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func Test_Eval_ThreeValuedAnd(t *testing.T) {
	_, ec := newCtx(nil, accessor.Old)
	// false AND null == false
	v, err := expr.Eval(context.Background(), ec, &expr.BinaryOp{
		Op:    expr.And,
		Left:  &expr.Literal{Value: value.NewBool(false)},
		Right: &expr.Literal{Value: value.Null},
	})
	require.NoError(t, err)
	assert.Equal(t, value.NewBool(false), v)

	// true AND null == null
	v, err = expr.Eval(context.Background(), ec, &expr.BinaryOp{
		Op:    expr.And,
		Left:  &expr.Literal{Value: value.NewBool(true)},
		Right: &expr.Literal{Value: value.Null},
	})
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func Test_Eval_PropertyLookup(t *testing.T) {
	db := graphtest.NewDB()
	id := db.AddVertex([]string{"Person"}, map[string]value.Value{"age": value.NewInt(42)})
	va, err := db.Vertices(context.Background(), accessor.Old)
	require.NoError(t, err)
	v, _, err := va.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, id, v.ID())

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	f := symbol.NewFrame(tbl)
	f.Set(n, value.NewVertex(v))
	ec := &expr.Context{Frame: f, DB: db, View: accessor.Old, Params: map[string]value.Value{}}

	out, err := expr.Eval(context.Background(), ec, &expr.PropertyLookup{
		Target: &expr.SymbolRef{Name: "n", Position: n.Position},
		Key:    "age",
	})
	require.NoError(t, err)
	assert.Equal(t, value.NewInt(42), out)
}

func Test_Eval_PropertyLookupOnNullIsNull(t *testing.T) {
	_, ec := newCtx(nil, accessor.Old)
	out, err := expr.Eval(context.Background(), ec, &expr.PropertyLookup{
		Target: &expr.Literal{Value: value.Null},
		Key:    "x",
	})
	require.NoError(t, err)
	assert.True(t, out.IsNull())
}

func Test_Eval_InList(t *testing.T) {
	_, ec := newCtx(nil, accessor.Old)
	out, err := expr.Eval(context.Background(), ec, &expr.BinaryOp{
		Op:   expr.In,
		Left: &expr.Literal{Value: value.NewInt(2)},
		Right: &expr.ListLiteral{Items: []expr.Node{
			&expr.Literal{Value: value.NewInt(1)},
			&expr.Literal{Value: value.NewInt(2)},
		}},
	})
	require.NoError(t, err)
	assert.Equal(t, value.NewBool(true), out)
}

func Test_Eval_CoalesceAndSize(t *testing.T) {
	_, ec := newCtx(nil, accessor.Old)
	out, err := expr.Eval(context.Background(), ec, &expr.FunctionCall{
		Name: "coalesce",
		Args: []expr.Node{&expr.Literal{Value: value.Null}, &expr.Literal{Value: value.NewInt(9)}},
	})
	require.NoError(t, err)
	assert.Equal(t, value.NewInt(9), out)

	out, err = expr.Eval(context.Background(), ec, &expr.FunctionCall{
		Name: "size",
		Args: []expr.Node{&expr.ListLiteral{Items: []expr.Node{
			&expr.Literal{Value: value.NewInt(1)},
			&expr.Literal{Value: value.NewInt(2)},
		}}},
	})
	require.NoError(t, err)
	assert.Equal(t, value.NewInt(2), out)
}
