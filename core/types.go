// Package core defines the Graph, Vertex and Neighbor types used by the
// search packages, and the sentinel errors returned by graph mutation and
// lookup.
//
// A Graph is built once (vertices first, then edges) and then searched.
// All methods are guarded by a sync.RWMutex, so any number of concurrent
// readers may share one Graph while no writer is active.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrDuplicateVertex     - vertex ID already present.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrBadWeight           - negative edge weight.
//	ErrLoopNotAllowed      - self-loop on a graph built WithoutLoops.
//	ErrMultiEdgeNotAllowed - parallel edge on a graph built WithoutMultiEdges.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates AddVertex was called with an ID that is already present.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultWeight is the weight of an edge added without WithWeight.
const DefaultWeight int64 = 1

// Vertex is a named point on the integer plane.
//
// ID uniquely identifies the vertex within its Graph. X and Y never change
// after AddVertex.
type Vertex struct {
	ID string
	X  int
	Y  int
}

// Neighbor is one adjacency entry: the vertex on the other side of an edge
// and the weight of that edge.
type Neighbor struct {
	ID     string
	Weight int64
}

// Edge is an undirected connection as reported by Graph.Edges.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithoutLoops makes AddEdge(v, v) fail with ErrLoopNotAllowed.
func WithoutLoops() GraphOption {
	return func(g *Graph) { g.forbidLoops = true }
}

// WithoutMultiEdges makes a second AddEdge between the same endpoints fail
// with ErrMultiEdgeNotAllowed.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.forbidMulti = true }
}

// WithCapacity preallocates storage for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]Vertex, 0, n)
			g.adjacency = make([][]Neighbor, 0, n)
			g.index = make(map[string]int, n)
		}
	}
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight int64
}

// WithWeight overrides DefaultWeight for this edge.
func WithWeight(w int64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// Graph is an undirected, weighted graph of coordinate vertices.
//
// Storage is arena-style: vertices and their adjacency slices live in
// parallel slices addressed through index, so insertion order is preserved
// for Vertices and Neighbors. Edges are stored as a symmetric pair of
// adjacency entries.
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags
	forbidLoops bool
	forbidMulti bool

	// Storage
	vertices  []Vertex       // insertion order
	adjacency [][]Neighbor   // adjacency[i] belongs to vertices[i]
	index     map[string]int // vertex ID → position in vertices
	edges     []Edge         // each undirected edge once, insertion order
}

// NewGraph creates an empty Graph with the given options.
// By default self-loops and parallel edges are accepted.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Looped reports whether self-loops are accepted.
func (g *Graph) Looped() bool { return !g.forbidLoops }

// Multigraph reports whether parallel edges are accepted.
func (g *Graph) Multigraph() bool { return !g.forbidMulti }
