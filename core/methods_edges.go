// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AreConnected/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - Adjacency entries are appended, so Neighbors() reflects insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import "fmt"

// AddEdge connects a and b with an undirected edge.
//
// Steps:
//  1. Apply edge options; weight defaults to DefaultWeight.
//  2. Validate weight (ErrBadWeight) and the loop policy (ErrLoopNotAllowed).
//  3. Lock, resolve both endpoints (ErrVertexNotFound).
//  4. Check the multi-edge policy (ErrMultiEdgeNotAllowed).
//  5. Append (b, w) to a's adjacency and (a, w) to b's adjacency.
//
// A self-loop therefore appears twice in the adjacency of its vertex.
// Complexity: O(1) amortized, O(deg(a)) when multi-edges are forbidden.
func (g *Graph) AddEdge(a, b string, opts ...EdgeOption) error {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.weight < 0 {
		return fmt.Errorf("%w: %s—%s weight=%d", ErrBadWeight, a, b, cfg.weight)
	}
	if a == b && g.forbidLoops {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, a)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	ia, ok := g.index[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	ib, ok := g.index[b]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	if g.forbidMulti && containsNeighbor(g.adjacency[ia], b) {
		return fmt.Errorf("%w: %s—%s", ErrMultiEdgeNotAllowed, a, b)
	}

	g.adjacency[ia] = append(g.adjacency[ia], Neighbor{ID: b, Weight: cfg.weight})
	g.adjacency[ib] = append(g.adjacency[ib], Neighbor{ID: a, Weight: cfg.weight})
	g.edges = append(g.edges, Edge{From: a, To: b, Weight: cfg.weight})

	return nil
}

// AreConnected reports whether b appears in a's neighbor list.
//
// Errors:
//   - ErrVertexNotFound: if a or b is absent.
//
// Complexity: O(deg(a)).
func (g *Graph) AreConnected(a, b string) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, ok := g.index[a]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrVertexNotFound, a)
	}
	if _, ok = g.index[b]; !ok {
		return false, fmt.Errorf("%w: %q", ErrVertexNotFound, b)
	}

	return containsNeighbor(g.adjacency[ia], b), nil
}

// EdgeWeight returns the smallest weight among the edges joining a and b.
// The second result is false if the vertices are not adjacent or unknown.
func (g *Graph) EdgeWeight(a, b string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ia, ok := g.index[a]
	if !ok {
		return 0, false
	}

	var (
		best  int64
		found bool
	)
	for _, nb := range g.adjacency[ia] {
		if nb.ID != b {
			continue
		}
		if !found || nb.Weight < best {
			best, found = nb.Weight, true
		}
	}

	return best, found
}

// Edges returns every edge once, in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of edges (parallel edges counted separately).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// containsNeighbor reports whether id occurs in list. Caller holds mu.
func containsNeighbor(list []Neighbor, id string) bool {
	for _, nb := range list {
		if nb.ID == id {
			return true
		}
	}

	return false
}
