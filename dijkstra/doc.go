// Package dijkstra provides Dijkstra's shortest-path algorithm on a core.Graph
// with non-negative integer edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest vertex.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// When to use:
//
//   - As the optimality baseline for package greedy: a greedy route is valid but
//     may be longer than dist[goal].
//   - In any scenario where you need guaranteed shortest paths on a static weighted graph.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     the Source string is empty.
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrVertexNotFound:  the source vertex does not exist in the graph.
//   - ErrBadMaxDistance:  (via panic) MaxDistance set to a negative value.
//   - ErrBadInfThreshold: (via panic) InfEdgeThreshold set to zero or a negative value.
//   - ErrNoPath:          PathTo was asked for an unreached destination.
//
// API reference:
//
//	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("S"), dijkstra.WithReturnPath())
//	path, err := dijkstra.PathTo(prev, "S", "T")
//
//	  - dist: map[v] = minimal distance from Source to v, or math.MaxInt64 if unreachable.
//	  - prev: map[v] = immediate predecessor of v on one shortest path from Source,
//	          or "" if v is the Source or v is unreachable. Nil if ReturnPath=false.
//
// Thread safety:
//
//   - Dijkstra only reads the graph through its locked accessors; concurrent runs
//     on the same *core.Graph are safe.
package dijkstra
