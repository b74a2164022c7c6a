// Package fixture builds the reference graphs used by the demo and the tests.
package fixture

import (
	"fmt"

	"github.com/katalvlaran/gbfs/core"
)

// Point is a named vertex position.
type Point struct {
	ID   string
	X, Y int
}

// Link is an undirected edge; Weight 0 means core.DefaultWeight.
type Link struct {
	A, B   string
	Weight int64
}

// Grid13Vertices are the 13 vertices of the worked example, in insertion order.
//
//	y
//	3  C   G   I   M
//	2      F       T
//	1  B   E       K
//	0  S   D   H   J
//	   0   1   2   3  x
var Grid13Vertices = []Point{
	{"S", 0, 0}, {"B", 0, 1}, {"C", 0, 3}, {"D", 1, 0}, {"E", 1, 1},
	{"F", 1, 2}, {"G", 1, 3}, {"H", 2, 0}, {"I", 2, 3}, {"J", 3, 0},
	{"K", 3, 1}, {"T", 3, 2}, {"M", 3, 3},
}

// Grid13Edges are the unit-weight edges of the worked example, in insertion order.
var Grid13Edges = []Link{
	{A: "S", B: "B"}, {A: "S", B: "D"}, {A: "B", B: "E"}, {A: "C", B: "G"},
	{A: "D", B: "E"}, {A: "D", B: "H"}, {A: "E", B: "F"}, {A: "F", B: "G"},
	{A: "G", B: "I"}, {A: "H", B: "J"}, {A: "I", B: "M"}, {A: "J", B: "K"},
	{A: "K", B: "T"}, {A: "T", B: "M"},
}

// ToyEdges is the weighted toy map searched with ToyEstimates.
//
// Each pair is listed once, in the direction it was first given, and is
// built as an undirected edge because core.Graph has no directed edges.
// The greedy route A → C → M → N → X is the same either way, but baselines
// run over the reverse directions too: Dijkstra and BFS reach X through
// A → D → P → X, using D → P and P → X as given.
var ToyEdges = []Link{
	{"A", "B", 20}, {"A", "C", 18}, {"A", "D", 25},
	{"B", "C", 20}, {"B", "F", 20}, {"B", "J", 18},
	{"C", "L", 20}, {"C", "M", 23},
	{"D", "E", 30}, {"D", "P", 25},
	{"F", "G", 10}, {"F", "J", 25},
	{"H", "I", 15},
	{"J", "H", 10}, {"J", "K", 20},
	{"M", "N", 19}, {"M", "O", 37}, {"M", "P", 16},
	{"N", "Q", 30}, {"N", "X", 26},
	{"O", "P", 22},
	{"P", "X", 30},
}

// ToyEstimates is the per-vertex heuristic table for ToyEdges, goal X.
var ToyEstimates = map[string]float64{
	"A": 79, "B": 70, "C": 50, "D": 53, "E": 80, "F": 75, "G": 60, "H": 50, "I": 70,
	"J": 40, "K": 20, "L": 12, "M": 20, "N": 15, "O": 10, "P": 30, "Q": 8, "X": 0,
}

// Build creates a graph from points and links.
func Build(points []Point, links []Link) (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(points)))
	for _, p := range points {
		if err := g.AddVertex(p.ID, p.X, p.Y); err != nil {
			return nil, fmt.Errorf("fixture: %w", err)
		}
	}
	for _, l := range links {
		var opts []core.EdgeOption
		if l.Weight != 0 {
			opts = append(opts, core.WithWeight(l.Weight))
		}
		if err := g.AddEdge(l.A, l.B, opts...); err != nil {
			return nil, fmt.Errorf("fixture: %w", err)
		}
	}

	return g, nil
}

// Grid13 returns the 13-vertex worked example graph.
func Grid13() *core.Graph {
	return mustBuild(Grid13Vertices, Grid13Edges)
}

// Toy returns the weighted toy map as an undirected graph. Its vertices have no meaningful
// coordinates (all at the origin); search it with greedy.Table(ToyEstimates).
func Toy() *core.Graph {
	seen := make(map[string]bool)
	var points []Point
	for _, l := range ToyEdges {
		for _, id := range []string{l.A, l.B} {
			if !seen[id] {
				seen[id] = true
				points = append(points, Point{ID: id})
			}
		}
	}

	return mustBuild(points, ToyEdges)
}

func mustBuild(points []Point, links []Link) *core.Graph {
	g, err := Build(points, links)
	if err != nil {
		panic(err)
	}

	return g
}
