package greedy_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbfs/core"
	"github.com/katalvlaran/gbfs/greedy"
)

// islandGrid builds an n×n unit grid plus an unreachable vertex "goal", so a
// search from "0,0" expands every grid vertex and ends Exhausted.
func islandGrid(tb testing.TB, n int) *core.Graph {
	tb.Helper()

	g := core.NewGraph(core.WithCapacity(n*n + 1))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			require.NoError(tb, g.AddVertex(fmt.Sprintf("%d,%d", x, y), x, y))
		}
	}
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x+1 < n {
				require.NoError(tb, g.AddEdge(fmt.Sprintf("%d,%d", x, y), fmt.Sprintf("%d,%d", x+1, y)))
			}
			if y+1 < n {
				require.NoError(tb, g.AddEdge(fmt.Sprintf("%d,%d", x, y), fmt.Sprintf("%d,%d", x, y+1)))
			}
		}
	}
	require.NoError(tb, g.AddVertex("goal", n, n))

	return g
}

// TestRun_LinearAllocation exhausts a 10k-vertex grid and bounds the bytes
// allocated by the search. Copying the open and closed sets on every step
// would allocate gigabytes here.
func TestRun_LinearAllocation(t *testing.T) {
	if testing.Short() {
		t.Skip("large grid")
	}
	g := islandGrid(t, 100)

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	res, err := greedy.Search(g, "0,0", "goal")
	runtime.ReadMemStats(&after)

	require.NoError(t, err)
	assert.Equal(t, greedy.StatusExhausted, res.Status)
	assert.Equal(t, 100*100+1, res.Steps)
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(64<<20))
}

// BenchmarkRun_Exhausted expands every vertex of a 100×100 grid.
func BenchmarkRun_Exhausted(b *testing.B) {
	g := islandGrid(b, 100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := greedy.Search(g, "0,0", "goal")
		if err != nil || res.Status != greedy.StatusExhausted {
			b.Fatalf("unexpected outcome: %v %v", res.Status, err)
		}
	}
}
