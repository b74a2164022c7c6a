// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbfs/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls on one hub
// are safe and every spoke appears in the hub's adjacency.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("X", 0, 0))

	const num = 200
	for i := 0; i < num; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("V%d", i), i, 1))
	}

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			require.NoError(t, g.AddEdge("X", fmt.Sprintf("V%d", id)))
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.EdgeCount())
}

// TestConcurrentReaders mixes queries with vertex inserts to catch races
// under `go test -race`.
func TestConcurrentReaders(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("root", 0, 0))

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			vid := fmt.Sprintf("N%d", id)
			_ = g.AddVertex(vid, id, id)
			_ = g.AddEdge("root", vid)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Vertices()
			_, _ = g.Neighbors("root")
			_, _ = g.AreConnected("root", "N0")
		}()
	}
	wg.Wait()

	require.Equal(t, rounds+1, g.VertexCount())
}
