// Package core provides a thread-safe, in-memory undirected graph whose
// vertices sit on the integer plane.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Each vertex has a unique string ID and immutable (X, Y) coordinates.
//   - Each edge is undirected and weighted; the weight defaults to 1.
//   - Adjacency is stored per vertex in insertion order, so every traversal
//     of the graph is reproducible without sorting.
//   - Self-loops and parallel edges are accepted unless the graph is built
//     WithoutLoops / WithoutMultiEdges.
//
// Search packages (greedy, dijkstra) only read a Graph; they keep their own
// per-run state, so one Graph may be shared by concurrent searches.
//
// Configuration Options (GraphOption):
//
//	– WithoutLoops()        AddEdge(v,v) → ErrLoopNotAllowed
//	– WithoutMultiEdges()   second AddEdge(a,b) → ErrMultiEdgeNotAllowed
//	– WithCapacity(n)       preallocate for n vertices
//
// EdgeOptions:
//
//	– WithWeight(w)         edge weight (w ≥ 0), default DefaultWeight
//
// Core Methods:
//
//	// Vertices
//	AddVertex(id string, x, y int) error    // O(1)
//	HasVertex(id string) bool               // O(1)
//	FindVertex(id string) (Vertex, bool)    // O(1)
//	Vertices() []Vertex                     // O(V), insertion order
//	VertexCount() int                       // O(1)
//
//	// Edges
//	AddEdge(a, b string, opts ...EdgeOption) error  // O(1)†
//	AreConnected(a, b string) (bool, error)          // O(deg a)
//	EdgeWeight(a, b string) (int64, bool)            // O(deg a)
//	Edges() []Edge                                   // O(E), insertion order
//	EdgeCount() int                                  // O(1)
//
//	// Neighborhood
//	Neighbors(id string) ([]Neighbor, error)  // O(d), insertion order
//	NeighborIDs(id string) ([]string, error)  // O(d), unique, first-seen order
//	Degree(id string) (int, error)            // O(1)
//
//	// Maintenance
//	Clone() *Graph                             // O(V+E) deep copy
//	Clear()                                    // O(1)
//
// † O(deg a) when multi-edges are forbidden.
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrDuplicateVertex     – AddVertex with a known ID
//	ErrVertexNotFound      – missing vertex (edge insertion, queries)
//	ErrBadWeight           – negative weight
//	ErrLoopNotAllowed      – self-loop when loops are forbidden
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges are forbidden
package core
