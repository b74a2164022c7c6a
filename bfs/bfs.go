// Breadth-first search over a core.Graph. Edge weights are ignored: every
// edge is one hop, so BFS gives the fewest-hops baseline for a greedy route.

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gbfs/core"
)

// ErrNeighbors is returned when fetching neighbors from the graph fails.
var ErrNeighbors = errors.New("bfs: neighbor iteration error")

// errStop ends the walk early once the target is visited.
var errStop = errors.New("bfs: target reached")

// queueItem pairs a vertex ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
}

// BFS runs breadth-first search on g starting from startID.
//
// Returns ErrGraphNil, ErrOptionViolation for bad options,
// ErrStartVertexNotFound (also matching core.ErrVertexNotFound),
// the context error on cancellation, or any OnVisit error.
// Neighbors are taken in the graph's insertion order, so Order is reproducible.
func BFS(g *core.Graph, startID string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, fmt.Errorf("%w: %q: %w", ErrStartVertexNotFound, startID, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &BFSResult{
			Start:  startID,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.discover(startID, 0, "")
	if err := w.loop(); err != nil && !errors.Is(err, errStop) {
		return w.res, err
	}

	return w.res, nil
}

// discover records depth and parent of id and queues it.
func (w *walker) discover(id string, depth int, parent string) {
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth})
}

// loop processes the queue until empty, target, error or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return err
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if item.id == w.opts.Target {
			return errStop
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}

		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: %q: %w", ErrNeighbors, item.id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := w.res.Depth[nbr]; !seen {
				w.discover(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}
