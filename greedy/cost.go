package greedy

import (
	"math"

	"github.com/katalvlaran/gbfs/core"
)

// Heuristic estimates the remaining cost from v to goal.
type Heuristic func(v, goal core.Vertex) float64

// Candidate describes a vertex about to be placed on (or re-prioritized in)
// the open set: the vertex itself, the vertex it is reached from, the goal,
// and the weight of the edge Parent—Vertex.
//
// For the start vertex Parent is the zero Vertex and Weight is 0.
type Candidate struct {
	Vertex core.Vertex
	Parent core.Vertex
	Goal   core.Vertex
	Weight int64
}

// CostFunc maps a candidate to its priority in the open set. Lower is
// expanded first. +Inf is a valid value. NaN is accepted and sorts after
// +Inf; a NaN-cost vertex never wins a re-parenting comparison.
type CostFunc func(c Candidate) float64

// Manhattan returns |v.X-goal.X| + |v.Y-goal.Y|.
func Manhattan(v, goal core.Vertex) float64 {
	return float64(absInt(v.X-goal.X) + absInt(v.Y-goal.Y))
}

// Euclidean returns the straight-line distance between v and goal.
func Euclidean(v, goal core.Vertex) float64 {
	return math.Hypot(float64(v.X-goal.X), float64(v.Y-goal.Y))
}

// Chebyshev returns max(|dx|, |dy|), the move count on an 8-connected grid.
func Chebyshev(v, goal core.Vertex) float64 {
	dx, dy := absInt(v.X-goal.X), absInt(v.Y-goal.Y)
	if dx > dy {
		return float64(dx)
	}

	return float64(dy)
}

// Table returns a Heuristic backed by a fixed per-vertex estimate, ignoring
// coordinates. Vertices missing from the table get +Inf and are expanded
// last. The map is copied.
func Table(estimates map[string]float64) Heuristic {
	table := make(map[string]float64, len(estimates))
	for id, h := range estimates {
		table[id] = h
	}

	return func(v, _ core.Vertex) float64 {
		if h, ok := table[v.ID]; ok {
			return h
		}

		return math.Inf(1)
	}
}

// FromHeuristic lifts a Heuristic into a CostFunc that ignores the parent
// and the edge weight. This is plain greedy best-first ordering.
func FromHeuristic(h Heuristic) CostFunc {
	return func(c Candidate) float64 { return h(c.Vertex, c.Goal) }
}

// WeightedHeuristic orders candidates by the weight of the edge that
// reaches them plus h. Because the value depends on the parent, the same
// vertex can be offered at different costs, and an open entry is re-parented
// when a cheaper offer arrives.
func WeightedHeuristic(h Heuristic) CostFunc {
	return func(c Candidate) float64 { return float64(c.Weight) + h(c.Vertex, c.Goal) }
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
