// Package gridgraph turns a 2D grid of integer cells into a core.Graph of
// coordinate vertices, ready for greedy or Dijkstra search.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with a tunable LandThreshold.
//   - Cells with value ≥ LandThreshold are “land” and become vertices "x,y"
//     at coordinates (x, y); other cells are “water” and are dropped.
//   - Neighboring land cells are joined by unit-weight edges (Conn4 or Conn8).
//   - ConnectedComponents lists the islands, so reachability can be checked
//     before searching.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H + E).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered "land".
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: Locate was given a coordinate outside the grid.
package gridgraph
