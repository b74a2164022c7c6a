// Greedy best-first search (GBFS) on a core.Graph.
//
// GBFS always expands the open vertex with the smallest cost, ties broken by
// vertex ID ascending. It ignores the cost accumulated so far, so the path it
// returns is not necessarily the shortest one.
//
// Notes on implementation choices:
//
//   - All per-run state (priority, parent, heap position) lives in a side
//     table owned by the Engine; the Graph is only read.
//   - Closed vertices are never reopened, even if a cheaper route is found.
//   - An open vertex offered at a strictly lower cost by a different parent
//     is re-parented in place with heap.Fix.

package greedy

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gbfs/core"
)

// Engine runs one greedy best-first search. It is single-use: once a
// terminal Status is reached, Step returns ErrFinished and Run returns the
// same Result again.
//
// An Engine is not safe for concurrent use; independent engines may share a
// Graph.
type Engine struct {
	g      *core.Graph
	opts   Options
	log    *slog.Logger
	start  core.Vertex
	goal   core.Vertex
	status Status
	steps  int

	open     *openQueue
	nodes    map[string]*node    // every discovered vertex
	closed   map[string]struct{} // expanded vertices
	expanded []string            // closed, in expansion order
	current  string              // vertex expanded by the latest step
	path     []string
	cost     int64
	reason   error
}

// New prepares a search from start to goal on g.
//
// Returns ErrNilGraph, ErrOptionViolation for bad options, or
// ErrVertexNotFound (also matching core.ErrVertexNotFound) if start or goal
// is absent.
func New(g *core.Graph, start, goal string, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	s, ok := g.FindVertex(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %q: %w", ErrVertexNotFound, start, core.ErrVertexNotFound)
	}
	t, ok := g.FindVertex(goal)
	if !ok {
		return nil, fmt.Errorf("%w: goal %q: %w", ErrVertexNotFound, goal, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	e := &Engine{
		g:      g,
		opts:   o,
		log:    o.Logger.With(slog.String("start", start), slog.String("goal", goal)),
		start:  s,
		goal:   t,
		status: StatusInitialized,
		open:   newOpenQueue(byPriority, n),
		nodes:  make(map[string]*node, n),
		closed: make(map[string]struct{}, n),
	}

	// Seed the open set with the start vertex (no parent).
	root := &node{vertex: s, h: o.Cost(Candidate{Vertex: s, Goal: t})}
	e.nodes[s.ID] = root
	e.open.push(root)

	return e, nil
}

// Search is New followed by Run.
func Search(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	e, err := New(g, start, goal, opts...)
	if err != nil {
		return Result{}, err
	}

	return e.Run()
}

// Status returns the current state of the engine.
func (e *Engine) Status() Status { return e.status }

// Run steps until a terminal state and returns the Result. An empty open set
// is not an error: it yields Status == StatusExhausted.
func (e *Engine) Run() (Result, error) {
	for !e.status.Terminal() {
		if err := e.step(); err != nil {
			return Result{}, err
		}
	}

	return e.result(), nil
}

// Step performs exactly one iteration of the search loop and returns a
// Snapshot of the state after it. Building the Snapshot copies the open and
// closed sets, so Step costs O(V log V) on top of the iteration; use Run when
// no per-step view is needed.
func (e *Engine) Step() (Snapshot, error) {
	if e.status.Terminal() {
		return e.snapshot(), ErrFinished
	}
	err := e.step()

	return e.snapshot(), err
}

// step is one iteration of the search loop:
//
//  1. abort if the context is done or MaxSteps is reached;
//  2. count the step;
//  3. an empty open set ends the search as Exhausted;
//  4. pop the cheapest open vertex and close it;
//  5. the goal ends the search as Succeeded;
//  6. otherwise offer every neighbor to the open set.
func (e *Engine) step() error {
	e.status = StatusRunning
	e.current = ""

	if err := e.opts.Ctx.Err(); err != nil {
		e.abort(err)
		return nil
	}
	if e.opts.MaxSteps > 0 && e.steps >= e.opts.MaxSteps {
		e.abort(ErrStepLimit)
		return nil
	}

	e.steps++

	if e.open.Len() == 0 {
		e.status = StatusExhausted
		e.log.Info("no path found", slog.Int("steps", e.steps), slog.Int("expanded", len(e.expanded)))
		return nil
	}

	cur := e.open.pop()
	id := cur.vertex.ID
	e.closed[id] = struct{}{}
	e.expanded = append(e.expanded, id)
	e.current = id
	e.opts.OnExpand(id, e.steps)
	e.log.Debug("expand", slog.Int("step", e.steps), slog.String("vertex", id), slog.Float64("h", cur.h))

	if id == e.goal.ID {
		return e.finish(cur)
	}

	return e.expand(cur)
}

// expand offers each neighbor of cur, in adjacency order, to the open set.
func (e *Engine) expand(cur *node) error {
	neighbors, err := e.g.Neighbors(cur.vertex.ID)
	if err != nil {
		return fmt.Errorf("greedy: neighbors of %q: %w", cur.vertex.ID, err)
	}

	for _, nb := range neighbors {
		if _, done := e.closed[nb.ID]; done {
			continue
		}

		existing, seen := e.nodes[nb.ID]
		var v core.Vertex
		if seen {
			v = existing.vertex
		} else {
			var ok bool
			if v, ok = e.g.FindVertex(nb.ID); !ok {
				return fmt.Errorf("greedy: neighbor %q of %q: %w", nb.ID, cur.vertex.ID, core.ErrVertexNotFound)
			}
		}

		h := e.opts.Cost(Candidate{Vertex: v, Parent: cur.vertex, Goal: e.goal, Weight: nb.Weight})

		switch {
		case !seen:
			n := &node{vertex: v, h: h, parent: cur.vertex.ID}
			e.nodes[nb.ID] = n
			e.open.push(n)
			e.opts.OnDiscover(nb.ID, cur.vertex.ID, h)
		case existing.parent != cur.vertex.ID && costLess(h, existing.h):
			old := existing.parent
			existing.parent = cur.vertex.ID
			existing.h = h
			e.open.fix(existing)
			e.opts.OnReparent(nb.ID, old, cur.vertex.ID, h)
			e.log.Debug("reparent", slog.String("vertex", nb.ID), slog.String("from", old),
				slog.String("to", cur.vertex.ID), slog.Float64("h", h))
		}
	}

	return nil
}

// finish records the Succeeded outcome and rebuilds the path from goal back
// to start via the parent links, then reverses it.
func (e *Engine) finish(goal *node) error {
	path := []string{goal.vertex.ID}
	for n := goal; n.parent != ""; {
		parent, ok := e.nodes[n.parent]
		if !ok {
			return fmt.Errorf("greedy: broken parent chain at %q", n.vertex.ID)
		}
		path = append(path, parent.vertex.ID)
		n = parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	var cost int64
	for i := 1; i < len(path); i++ {
		w, _ := e.g.EdgeWeight(path[i-1], path[i])
		cost += w
	}

	e.path = path
	e.cost = cost
	e.status = StatusSucceeded
	e.log.Info("path found", slog.Int("steps", e.steps), slog.Int("length", len(path)-1), slog.Int64("cost", cost))

	return nil
}

func (e *Engine) abort(reason error) {
	e.status = StatusAborted
	e.reason = reason
	e.log.Info("search aborted", slog.Int("steps", e.steps), slog.Any("reason", reason))
}

func (e *Engine) snapshot() Snapshot {
	s := Snapshot{
		Step:    e.steps,
		Status:  e.status,
		Current: e.current,
		Open:    e.open.ids(),
		Closed:  append([]string(nil), e.expanded...),
	}
	if e.path != nil {
		s.Path = append([]string(nil), e.path...)
	}

	return s
}

func (e *Engine) result() Result {
	r := Result{
		Status:   e.status,
		Steps:    e.steps,
		Expanded: append([]string(nil), e.expanded...),
		Reason:   e.reason,
	}
	if e.status == StatusSucceeded {
		r.Path = append([]string(nil), e.path...)
		r.Cost = e.cost
	}

	return r
}
