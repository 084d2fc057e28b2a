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

func TestCreateNodeCursor_AppliesLabelsAndProperties(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	frame := symbol.NewFrame(tbl)

	op := &plan.CreateNode{
		Input:  &plan.Once{},
		Output: n,
		Labels: []string{"Person"},
		Properties: []plan.PropertySpec{
			{Key: "name", Expr: &expr.Literal{Value: value.NewString("Ada")}},
		},
	}
	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 1, pullAll(t, c, frame))

	va := frame.Get(n).Vertex.(accessor.VertexAccessor)
	require.NoError(t, va.Switch(context.Background(), accessor.New))
	has, err := va.HasLabel(context.Background(), "Person")
	require.NoError(t, err)
	require.True(t, has)
	name, err := va.Property(context.Background(), "name")
	require.NoError(t, err)
	require.Equal(t, value.NewString("Ada"), name)
}

// TestProduceCreateNode_ReturnsVertexAndPropertyThenVisibleInOldView
// exercises spec scenario S1: Produce(CreateNode(n: Person {age: 42}),
// [n, n.age]) yields one row, and after AdvanceCommand the vertex is
// present in the OLD view too.
func TestProduceCreateNode_ReturnsVertexAndPropertyThenVisibleInOldView(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	age := tbl.Create("age", true)
	frame := symbol.NewFrame(tbl)

	create := &plan.CreateNode{
		Input:  &plan.Once{},
		Output: n,
		Labels: []string{"Person"},
		Properties: []plan.PropertySpec{
			{Key: "age", Expr: &expr.Literal{Value: value.NewInt(42)}},
		},
	}
	produceOp := &plan.Produce{
		Input: create,
		Items: []plan.ProduceItem{
			{Expr: &expr.SymbolRef{Name: "n", Position: n.Position}, Output: n},
			{Expr: &expr.PropertyLookup{Target: &expr.SymbolRef{Name: "n", Position: n.Position}, Key: "age"}, Output: age},
		},
	}
	c := exec.MakeCursor(produceOp, &exec.Runtime{DB: db})
	require.Equal(t, 1, pullAll(t, c, frame))
	require.Equal(t, value.NewInt(42), frame.Get(age))

	require.NoError(t, db.AdvanceCommand(context.Background()))
	va := frame.Get(n).Vertex.(accessor.VertexAccessor)
	require.NoError(t, va.Switch(context.Background(), accessor.Old))
	has, err := va.HasLabel(context.Background(), "Person")
	require.NoError(t, err)
	require.True(t, has)
}

// TestCreateExpandCursor_ExistingNodeSelfLoopPerVertex exercises spec
// scenario S2: CreateExpand over every vertex with the node endpoint set
// to the same scanned vertex (m=n) adds one self-loop edge per vertex and
// no new vertices.
func TestCreateExpandCursor_ExistingNodeSelfLoopPerVertex(t *testing.T) {
	db := graphtest.NewDB()
	db.AddVertex(nil, nil)
	db.AddVertex(nil, nil)
	db.AddVertex(nil, nil)

	tbl := symbol.NewTable()
	n := tbl.Create("n", true)
	r := tbl.Create("r", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAll{Input: &plan.Once{}, Output: n, View: accessor.New}
	op := &plan.CreateExpand{
		Input: scan, InputSymbol: n,
		NodeOutput: n, ExistingNode: true,
		EdgeOutput: r, EdgeType: "T",
		Direction: accessor.Out,
	}
	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 3, pullAll(t, c, frame))

	it, err := db.Vertices(context.Background(), accessor.New)
	require.NoError(t, err)
	var total int
	for {
		_, ok, err := it.Next(context.Background())
		require.NoError(t, err)
		if !ok {
			break
		}
		total++
	}
	require.Equal(t, 3, total) // no new vertices created, only self-loop edges
}

func TestCreateExpandCursor_CreatesEdgeAndEndpoint(t *testing.T) {
	db := graphtest.NewDB()
	startID := db.AddVertex([]string{"Person"}, nil)

	tbl := symbol.NewTable()
	start := tbl.Create("a", true)
	node := tbl.Create("b", true)
	edge := tbl.Create("r", true)
	frame := symbol.NewFrame(tbl)

	scan := &plan.ScanAllByLabel{Input: &plan.Once{}, Output: start, Label: "Person", View: accessor.New}
	op := &plan.CreateExpand{
		Input: scan, InputSymbol: start,
		NodeOutput: node, NodeLabels: []string{"Dog"},
		EdgeOutput: edge, EdgeType: "OWNS",
		Direction: accessor.Out,
	}
	c := exec.MakeCursor(op, &exec.Runtime{DB: db})
	require.Equal(t, 1, pullAll(t, c, frame))

	ea := frame.Get(edge).Edge.(accessor.EdgeAccessor)
	require.Equal(t, "OWNS", ea.EdgeType())
	require.Equal(t, startID, ea.From().ID())
}
