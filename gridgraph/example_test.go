package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/gbfs/greedy"
	"github.com/katalvlaran/gbfs/gridgraph"
)

// ExampleGridGraph_ConnectedComponents identifies islands of land cells.
func ExampleGridGraph_ConnectedComponents() {
	grid := [][]int{
		{1, 1, 0, 1},
		{0, 1, 0, 1},
		{1, 0, 0, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())

	for i, comp := range gg.ConnectedComponents() {
		fmt.Println(i, comp)
	}
	// Output:
	// 0 [0,0 1,0 1,1]
	// 1 [3,0 3,1 3,2]
	// 2 [0,2]
}

// ExampleGridGraph_ToCoreGraph walks around a wall with greedy search.
func ExampleGridGraph_ToCoreGraph() {
	grid := [][]int{
		{1, 1, 1, 0, 1},
		{0, 0, 1, 0, 1},
		{1, 1, 1, 1, 1},
	}
	gg, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	g, err := gg.ToCoreGraph()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, _ := greedy.Search(g, gridgraph.VertexID(0, 0), gridgraph.VertexID(4, 0))
	fmt.Println(res)
	fmt.Println(res.Length(), res.Steps)
	// Output:
	// 0,0 -> 1,0 -> 2,0 -> 2,1 -> 2,2 -> 3,2 -> 4,2 -> 4,1 -> 4,0
	// 8 9
}
