// File: methods_clone.go
// Role: Cloning, clearing and printing graph instances.
// Concurrency:
//   - Read lock for snapshotting; the source graph is never mutated.

package core

import (
	"fmt"
	"strings"
)

// Clone returns a deep copy of the Graph: flags, vertices, adjacency and edges.
// Mutating the clone never affects the original.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		forbidLoops: g.forbidLoops,
		forbidMulti: g.forbidMulti,
		vertices:    make([]Vertex, len(g.vertices)),
		adjacency:   make([][]Neighbor, len(g.adjacency)),
		index:       make(map[string]int, len(g.index)),
		edges:       make([]Edge, len(g.edges)),
	}
	copy(clone.vertices, g.vertices)
	copy(clone.edges, g.edges)
	for id, i := range g.index {
		clone.index[id] = i
	}
	for i, list := range g.adjacency {
		if list == nil {
			continue
		}
		clone.adjacency[i] = make([]Neighbor, len(list))
		copy(clone.adjacency[i], list)
	}

	return clone
}

// Clear removes all vertices and edges but keeps the configuration flags.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices = nil
	g.adjacency = nil
	g.edges = nil
	g.index = make(map[string]int)
}

// String renders one line per vertex: "ID (x,y): N1/w N2/w ...".
func (g *Graph) String() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder
	for i, v := range g.vertices {
		fmt.Fprintf(&sb, "%s (%d,%d):", v.ID, v.X, v.Y)
		for _, nb := range g.adjacency[i] {
			fmt.Fprintf(&sb, " %s/%d", nb.ID, nb.Weight)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
