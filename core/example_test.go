// Package core_test provides runnable examples for core.Graph.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/gbfs/core"
)

// ExampleGraph_AddEdge builds a unit square and queries its adjacency.
//
//	A───B
//	│   │
//	C───D
func ExampleGraph_AddEdge() {
	g := core.NewGraph()
	_ = g.AddVertex("A", 0, 1)
	_ = g.AddVertex("B", 1, 1)
	_ = g.AddVertex("C", 0, 0)
	_ = g.AddVertex("D", 1, 0)

	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "D", core.WithWeight(3))
	_ = g.AddEdge("D", "C")
	_ = g.AddEdge("C", "A")

	ok, _ := g.AreConnected("A", "D")
	ids, _ := g.NeighborIDs("D")
	fmt.Println(g.VertexCount(), g.EdgeCount(), ok, ids)
	// Output: 4 4 false [B C]
}
