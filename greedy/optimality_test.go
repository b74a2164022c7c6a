package greedy_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbfs/core"
	"github.com/katalvlaran/gbfs/dijkstra"
	"github.com/katalvlaran/gbfs/greedy"
	"github.com/katalvlaran/gbfs/internal/fixture"
)

// randomGraph builds n vertices on a 10x10 plane joined by m random edges.
func randomGraph(t *testing.T, rng *rand.Rand, n, m int) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i), rng.Intn(10), rng.Intn(10)))
	}
	for i := 0; i < m; i++ {
		a := fmt.Sprintf("v%02d", rng.Intn(n))
		b := fmt.Sprintf("v%02d", rng.Intn(n))
		require.NoError(t, g.AddEdge(a, b, core.WithWeight(int64(rng.Intn(9)+1))))
	}

	return g
}

// TestAgainstDijkstra checks, on seeded random graphs, that every greedy
// result is a valid simple path no cheaper than the optimum, and that
// greedy search finds a path exactly when one exists.
func TestAgainstDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		g := randomGraph(t, rng, 20, 30)
		start, goal := "v00", fmt.Sprintf("v%02d", 1+rng.Intn(19))

		for name, opt := range map[string]greedy.Option{
			"manhattan": greedy.WithHeuristic(greedy.Manhattan),
			"euclidean": greedy.WithHeuristic(greedy.Euclidean),
			"weighted":  greedy.WithCost(greedy.WeightedHeuristic(greedy.Manhattan)),
		} {
			res, err := greedy.Search(g, start, goal, opt)
			require.NoError(t, err)

			dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(start))
			require.NoError(t, err)

			label := fmt.Sprintf("round %d %s %s→%s", round, name, start, goal)
			if dist[goal] == math.MaxInt64 {
				assert.Equal(t, greedy.StatusExhausted, res.Status, label)
				continue
			}

			require.Equal(t, greedy.StatusSucceeded, res.Status, label)
			assert.Equal(t, start, res.Path[0], label)
			assert.Equal(t, goal, res.Path[len(res.Path)-1], label)
			assert.GreaterOrEqual(t, res.Cost, dist[goal], label)

			seen := make(map[string]bool, len(res.Path))
			for i, id := range res.Path {
				assert.False(t, seen[id], "%s: %s repeated", label, id)
				seen[id] = true
				if i > 0 {
					ok, err := g.AreConnected(res.Path[i-1], id)
					require.NoError(t, err)
					assert.True(t, ok, "%s: %s-%s not an edge", label, res.Path[i-1], id)
				}
			}
		}
	}
}

func TestToyIsNotOptimal(t *testing.T) {
	g := fixture.Toy()

	res, err := greedy.Search(g, "A", "X", greedy.WithHeuristic(greedy.Table(fixture.ToyEstimates)))
	require.NoError(t, err)

	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source("A"))
	require.NoError(t, err)

	assert.Equal(t, int64(86), res.Cost)
	assert.Equal(t, int64(80), dist["X"])
}
