// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and VertexIDs() return vertices in insertion order.
//
// Concurrency:
//   - Mutations hold mu for writing, queries hold mu for reading.
package core

import "fmt"

// AddVertex inserts a vertex at (x, y).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under the write lock, reject a known ID (ErrDuplicateVertex).
//   - Stage 3: Append the vertex and an empty adjacency slot, record its index.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrDuplicateVertex: if id is already present (wrapped with the id).
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string, x, y int) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.index[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}

	g.index[id] = len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, X: x, Y: y})
	g.adjacency = append(g.adjacency, nil)

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// FindVertex returns the vertex with the given ID. The second result is
// false if no such vertex exists.
// Complexity: O(1).
func (g *Graph) FindVertex(id string) (Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return Vertex{}, false
	}

	return g.vertices[i], true
}

// Vertices returns a copy of all vertices in insertion order.
// Complexity: O(V).
func (g *Graph) Vertices() []Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(g.vertices))
	copy(out, g.vertices)

	return out
}

// VertexIDs returns all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph) VertexIDs() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, len(g.vertices))
	for i, v := range g.vertices {
		ids[i] = v.ID
	}

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of adjacency entries of id. A self-loop counts
// twice and every parallel edge counts separately.
//
// Errors:
//   - ErrVertexNotFound: if id is absent.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(g.adjacency[i]), nil
}
