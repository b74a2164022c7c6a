// Package core_test verifies vertex and edge lifecycle, neighborhood order
// and cloning of core.Graph.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gbfs/core"
)

// newTriangle builds A(0,0), B(1,0), C(0,1) with edges A—B(1), B—C(2), A—C(5).
func newTriangle(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	require.NoError(t, g.AddVertex("A", 0, 0))
	require.NoError(t, g.AddVertex("B", 1, 0))
	require.NoError(t, g.AddVertex("C", 0, 1))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "C", core.WithWeight(2)))
	require.NoError(t, g.AddEdge("A", "C", core.WithWeight(5)))

	return g
}

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex("", 0, 0), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("S", 3, 4))
	require.ErrorIs(t, g.AddVertex("S", 9, 9), core.ErrDuplicateVertex)

	v, ok := g.FindVertex("S")
	require.True(t, ok)
	assert.Equal(t, core.Vertex{ID: "S", X: 3, Y: 4}, v, "duplicate insert must not move the vertex")
	assert.Equal(t, 1, g.VertexCount())

	_, ok = g.FindVertex("missing")
	assert.False(t, ok)
	assert.False(t, g.HasVertex(""))
}

func TestVertices_InsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(4))
	for i, id := range []string{"Z", "A", "M", "B"} {
		require.NoError(t, g.AddVertex(id, i, -i))
	}

	assert.Equal(t, []string{"Z", "A", "M", "B"}, g.VertexIDs())
	vs := g.Vertices()
	require.Len(t, vs, 4)
	assert.Equal(t, core.Vertex{ID: "M", X: 2, Y: -2}, vs[2])
}

func TestAddEdge_Symmetric(t *testing.T) {
	g := newTriangle(t)

	for _, pair := range [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}, {"C", "A"}} {
		ok, err := g.AreConnected(pair[0], pair[1])
		require.NoError(t, err)
		assert.True(t, ok, "%s—%s", pair[0], pair[1])
	}

	w, ok := g.EdgeWeight("C", "B")
	require.True(t, ok)
	assert.Equal(t, int64(2), w)

	w, ok = g.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.Equal(t, core.DefaultWeight, w)

	assert.Equal(t, 3, g.EdgeCount())
}

func TestAddEdge_UnknownVertex(t *testing.T) {
	g := newTriangle(t)

	require.ErrorIs(t, g.AddEdge("A", "X"), core.ErrVertexNotFound)
	require.ErrorIs(t, g.AddEdge("X", "A"), core.ErrVertexNotFound)
	assert.Equal(t, 3, g.EdgeCount(), "failed insert must not change the graph")

	_, err := g.AreConnected("A", "X")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.AreConnected("X", "A")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0, 0))
	require.NoError(t, g.AddVertex("B", 0, 1))

	require.ErrorIs(t, g.AddEdge("A", "B", core.WithWeight(-1)), core.ErrBadWeight)

	// Permissive by default: loops and parallel edges are kept as given.
	require.NoError(t, g.AddEdge("A", "A"))
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(4)))
	require.NoError(t, g.AddEdge("A", "B", core.WithWeight(2)))

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 4, deg, "loop counts twice, parallel edges once each")

	w, ok := g.EdgeWeight("A", "B")
	require.True(t, ok)
	assert.Equal(t, int64(2), w, "EdgeWeight picks the lightest parallel edge")

	strict := core.NewGraph(core.WithoutLoops(), core.WithoutMultiEdges())
	require.NoError(t, strict.AddVertex("A", 0, 0))
	require.NoError(t, strict.AddVertex("B", 0, 1))
	require.ErrorIs(t, strict.AddEdge("A", "A"), core.ErrLoopNotAllowed)
	require.NoError(t, strict.AddEdge("A", "B"))
	require.ErrorIs(t, strict.AddEdge("B", "A"), core.ErrMultiEdgeNotAllowed)
	assert.False(t, strict.Looped())
	assert.False(t, strict.Multigraph())
}

func TestNeighbors_InsertionOrder(t *testing.T) {
	g := newTriangle(t)

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{ID: "B", Weight: 1}, {ID: "C", Weight: 5}}, nbs)

	nbs, err = g.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{ID: "B", Weight: 2}, {ID: "A", Weight: 5}}, nbs)

	// The returned slice is a copy.
	nbs[0].ID = "mutated"
	again, err := g.Neighbors("C")
	require.NoError(t, err)
	assert.Equal(t, "B", again[0].ID)

	_, err = g.Neighbors("X")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestNeighborIDs_Unique(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", 0, 0))
	require.NoError(t, g.AddVertex("B", 0, 1))
	require.NoError(t, g.AddVertex("C", 1, 1))
	require.NoError(t, g.AddEdge("A", "C"))
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("A", "C"))

	ids, err := g.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B"}, ids)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{"C", "B", "C"}, adj["A"])
	assert.Equal(t, []string{"A"}, adj["B"])
}

func TestEdges_InsertionOrder(t *testing.T) {
	g := newTriangle(t)

	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "A", To: "C", Weight: 5},
	}, g.Edges())
}

func TestClone_Independent(t *testing.T) {
	g := newTriangle(t, core.WithoutMultiEdges())
	c := g.Clone()

	require.NoError(t, c.AddVertex("D", 5, 5))
	require.NoError(t, c.AddEdge("D", "A"))

	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, 4, c.VertexCount())
	assert.False(t, c.Multigraph(), "clone keeps configuration flags")

	nbs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Len(t, nbs, 2)

	c.Clear()
	assert.Equal(t, 0, c.VertexCount())
	assert.Equal(t, 3, g.VertexCount())
}

func TestString(t *testing.T) {
	g := newTriangle(t)
	assert.Equal(t, "A (0,0): B/1 C/5\nB (1,0): A/1 C/2\nC (0,1): B/2 A/5\n", g.String())
}
