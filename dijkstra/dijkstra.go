// Dijkstra's shortest-path algorithm on a core.Graph.
//
// It is the exact counterpart of package greedy: where greedy returns some
// path quickly, Dijkstra returns the minimum-weight distance to every
// reachable vertex. The two are used side by side to measure how far a
// greedy route is from the optimum.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst-case heap entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - core.Graph rejects negative weights at insertion, so no pre-scan is needed.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Heap ties are broken by vertex ID so predecessor maps are reproducible.

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gbfs/core"
)

// Dijkstra computes shortest distances from Options.Source to all vertices of g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: predecessor map if ReturnPath was requested (nil otherwise);
//     prev[v] == "" for the source and for unreachable v.
//   - err:  ErrEmptySource, ErrNilGraph or ErrVertexNotFound, checked in that order.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %q", ErrVertexNotFound, cfg.Source)
	}

	// 3) Prepare per-run state
	ids := g.VertexIDs()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(ids)),
		prev:    make(map[string]string, len(ids)),
		visited: make(map[string]bool, len(ids)),
		pq:      make(nodePQ, 0, len(ids)),
	}

	// 4) Initialize and run
	r.init(ids)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// PathTo rebuilds the source → dest route from a predecessor map returned
// with WithReturnPath. Returns ErrNoPath if dest was not reached.
func PathTo(prev map[string]string, source, dest string) ([]string, error) {
	if dest != source && prev[dest] == "" {
		return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
	}

	path := []string{dest}
	for cur := dest; cur != source; {
		cur = prev[cur]
		if cur == "" {
			return nil, fmt.Errorf("%w: %q", ErrNoPath, dest)
		}
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph       // The input graph; read-only within Dijkstra.
	options Options           // Configuration options (Source, thresholds, etc.).
	dist    map[string]int64  // Maps vertex ID → current best distance from Source.
	prev    map[string]string // Maps vertex ID → predecessor on the shortest path.
	visited map[string]bool   // Tracks if a vertex's distance is finalized.
	pq      nodePQ            // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist[v] = +∞ for all v, dist[Source] = 0 and seeds the heap.
func (r *runner) init(ids []string) {
	for _, v := range ids {
		r.dist[v] = math.MaxInt64
		r.prev[v] = ""
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unvisited vertex and relaxes its
// edges, until the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.id] = true

		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every neighbor of u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		if nb.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		newDist := r.dist[u] + nb.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[nb.ID] {
			continue
		}

		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
