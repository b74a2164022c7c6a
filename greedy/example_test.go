// Package greedy_test provides examples demonstrating greedy best-first search.
// Each example is runnable via “go test -run Example”.
package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/gbfs/core"
	"github.com/katalvlaran/gbfs/greedy"
	"github.com/katalvlaran/gbfs/internal/fixture"
)

// ExampleSearch runs the worked example from S(0,0) to T(3,2).
func ExampleSearch() {
	g := fixture.Grid13()

	res, err := greedy.Search(g, "S", "T")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res)
	fmt.Printf("Length of the path: %d (steps: %d)\n", res.Length(), res.Steps)
	// Output:
	// S -> B -> E -> F -> G -> I -> M -> T
	// Length of the path: 7 (steps: 8)
}

// ExampleSearch_noPath shows that an unreachable goal is an outcome, not an error.
func ExampleSearch_noPath() {
	g := core.NewGraph()
	_ = g.AddVertex("A", 0, 0)
	_ = g.AddVertex("B", 1, 0)
	_ = g.AddVertex("Island", 9, 9)
	_ = g.AddEdge("A", "B")

	res, err := greedy.Search(g, "A", "Island")
	fmt.Println(res.Status, res.Found(), res.Steps, err)
	// Output: exhausted false 3 <nil>
}

// ExampleEngine_Step traces the first expansions of the worked example.
func ExampleEngine_Step() {
	e, _ := greedy.New(fixture.Grid13(), "S", "T")
	for i := 0; i < 3; i++ {
		snap, _ := e.Step()
		fmt.Println(snap.Current, snap.Open)
	}
	// Output:
	// S [B D]
	// B [E D]
	// E [F D]
}
