// Package bfs provides breadth-first search over a core.Graph.
//
// Every edge counts as one hop regardless of its weight, so BFS answers
// "how few edges can a route have?". The gbfs command reports it next to the
// greedy route and the Dijkstra optimum.
//
// Determinism
//
//	core.Graph returns neighbors in insertion order, and BFS queues them in
//	that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, "S", bfs.WithTarget("T"))
//	hops, err := res.Hops("T")
//	path, err := res.PathTo("T")
//
// Options
//
//   - WithContext(ctx):  cancellation; the context error is returned.
//   - WithMaxDepth(d):   do not expand vertices at depth ≥ d (>0).
//   - WithTarget(id):    stop once id is visited.
//   - WithOnVisit(fn):   hook during visit; returning an error aborts BFS.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if a neighbor lookup fails.
//   - ErrNoPath               from Hops and PathTo for an unreached vertex.
package bfs
