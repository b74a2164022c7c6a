// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs, AdjacencyList).
// Determinism:
//   - All results follow adjacency insertion order; search tie-breaking
//     and duplicate handling depend on it.
// Concurrency:
//   - Read operations hold the read lock and return copies.

package core

import "fmt"

// Neighbors returns the adjacency entries of id in insertion order.
//
// Behavior highlights:
//   - Parallel edges appear once per edge; a self-loop appears twice.
//   - The returned slice is a copy; callers may keep or modify it.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the degree of id.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	out := make([]Neighbor, len(g.adjacency[i]))
	copy(out, g.adjacency[i])

	return out, nil
}

// NeighborIDs returns the distinct neighbor IDs of id in first-seen order.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(nbs))
	ids := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		if _, dup := seen[nb.ID]; dup {
			continue
		}
		seen[nb.ID] = struct{}{}
		ids = append(ids, nb.ID)
	}

	return ids, nil
}

// AdjacencyList returns a snapshot mapping each vertex ID to its neighbor IDs
// (with repeats for parallel edges), each slice in insertion order.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.vertices))
	for i, v := range g.vertices {
		ids := make([]string, len(g.adjacency[i]))
		for j, nb := range g.adjacency[i] {
			ids[j] = nb.ID
		}
		out[v.ID] = ids
	}

	return out
}
