// Package gbfs is an in-memory toolkit for greedy best-first search over
// weighted, undirected graphs whose vertices sit on the integer plane.
//
// What is inside?
//
//	core/       – Graph, Vertex, Neighbor: thread-safe construction and lookup
//	greedy/     – the GBFS engine: one-call Search or step-by-step Engine,
//	              pluggable heuristics (Manhattan, Euclidean, Chebyshev, Table)
//	dijkstra/   – exact shortest paths, the optimality baseline for greedy
//	gridgraph/  – turn a 2D grid of cells into a core.Graph of coordinates
//	cmd/gbfs/   – command-line demo on the bundled graphs
//	examples/   – runnable maze scenario
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddVertex("S", 0, 0)
//	_ = g.AddVertex("T", 1, 0)
//	_ = g.AddEdge("S", "T")
//
//	res, err := greedy.Search(g, "S", "T")
//	fmt.Println(res, res.Length()) // S -> T 1
//
// Greedy search follows the heuristic alone, so its route is valid and
// loop-free but not necessarily the shortest; compare with dijkstra when it
// matters.
package gbfs
