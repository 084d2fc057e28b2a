package exec_test

import (
	"context"
	"testing"

	"github.com/panda-sheep/memgraph/exec"
	"github.com/panda-sheep/memgraph/internal/graphtest"
	"github.com/panda-sheep/memgraph/plan"
	"github.com/panda-sheep/memgraph/symbol"
	"github.com/stretchr/testify/require"
)

func TestCreateIndexCursor_FirstAndSecondCall(t *testing.T) {
	db := graphtest.NewDB()
	tbl := symbol.NewTable()
	frame := symbol.NewFrame(tbl)

	op := &plan.CreateIndex{Label: "Person", Property: "age"}

	c1 := exec.MakeCursor(op, &exec.Runtime{DB: db})
	ok, err := c1.Pull(context.Background(), frame)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = c1.Pull(context.Background(), frame)
	require.NoError(t, err)
	require.False(t, ok)

	// Building the same index again is silently swallowed, not an error.
	c2 := exec.MakeCursor(op, &exec.Runtime{DB: db})
	ok, err = c2.Pull(context.Background(), frame)
	require.NoError(t, err)
	require.True(t, ok)
}
