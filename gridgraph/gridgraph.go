package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gbfs/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// IsLand reports whether (x,y) is in bounds and its value is at least LandThreshold.
func (gg *GridGraph) IsLand(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// VertexID formats the vertex identifier of cell (x,y) as "x,y".
func VertexID(x, y int) string {
	return fmt.Sprintf("%d,%d", x, y)
}

// Locate returns the vertex ID of cell (x,y), or ErrOutOfBounds.
// A water cell has an ID but no vertex in ToCoreGraph's result.
func (gg *GridGraph) Locate(x, y int) (string, error) {
	if !gg.InBounds(x, y) {
		return "", fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, gg.Width, gg.Height)
	}

	return VertexID(x, y), nil
}

// ToCoreGraph converts the land cells of the GridGraph into a *core.Graph.
// Each land cell (x,y) becomes a vertex with ID "x,y" at coordinates (x,y),
// added in row-major order. Edges of unit weight connect neighboring land
// cells according to gg.Conn; each pair is joined once.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() (*core.Graph, error) {
	g := core.NewGraph(core.WithoutLoops(), core.WithoutMultiEdges(), core.WithCapacity(gg.Width*gg.Height))

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			if err := g.AddVertex(VertexID(x, y), x, y); err != nil {
				return nil, fmt.Errorf("gridgraph: %w", err)
			}
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.IsLand(x, y) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				// join each pair from its row-major smaller end only
				if !gg.IsLand(nx, ny) || gg.index(nx, ny) < gg.index(x, y) {
					continue
				}
				if err := g.AddEdge(VertexID(x, y), VertexID(nx, ny)); err != nil {
					return nil, fmt.Errorf("gridgraph: %w", err)
				}
			}
		}
	}

	return g, nil
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
