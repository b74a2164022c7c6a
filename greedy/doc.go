// Package greedy provides greedy best-first search (GBFS) from one start
// vertex to one goal vertex of a core.Graph.
//
// Overview:
//
//   - GBFS keeps an open set (discovered, not yet expanded) and a closed set
//     (expanded). Each step moves the open vertex with the lowest cost to
//     the closed set; ties are broken by vertex ID ascending.
//   - The default cost is the Manhattan distance to the goal. Any Heuristic
//     (Euclidean, Chebyshev, Table) or full CostFunc can be injected.
//   - A closed vertex is never reopened. An open vertex offered at a strictly
//     lower cost by a different parent is re-parented in place.
//   - The path is rebuilt from parent links once the goal is expanded.
//
// When to use:
//
//   - When any path is good enough and a good heuristic is available; GBFS
//     usually expands far fewer vertices than Dijkstra.
//   - Not when the shortest path is required (see package dijkstra).
//
// State machine:
//
//	Initialized → Running → {Succeeded, Exhausted, Aborted}
//
//	Succeeded – the goal was expanded; Result.Path is start … goal.
//	Exhausted – the open set emptied first; this is an outcome, not an error.
//	Aborted   – the context was done or WithMaxSteps was hit; Result.Reason says which.
//
// Step counting: every loop iteration counts, including the final one that
// finds the open set empty. A search with start == goal takes one step.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - ErrVertexNotFound:  start or goal absent (also matches core.ErrVertexNotFound).
//   - ErrOptionViolation: invalid option (negative MaxSteps, nil cost).
//   - ErrFinished:        Step called on a finished engine.
//   - ErrStepLimit:       Result.Reason of a search stopped by WithMaxSteps.
//
// API reference:
//
//	res, err := greedy.Search(g, "S", "T")            // one call
//
//	e, err := greedy.New(g, "S", "T", opts...)        // or step by step
//	for !e.Status().Terminal() {
//	    snap, err := e.Step()
//	    ...
//	}
//
// Options:
//
//	WithHeuristic(h)      order by h(v, goal)
//	WithCost(fn)          order by an arbitrary CostFunc (e.g. WeightedHeuristic)
//	WithMaxSteps(n)       abort after n steps
//	WithContext(ctx)      abort when ctx is done
//	WithLogger(l)         *slog.Logger for per-step debug and final info records
//	WithOnExpand / WithOnDiscover / WithOnReparent   observation hooks
//
// Thread safety:
//
//   - An Engine is single-goroutine. Engines never write to the Graph, so
//     several engines may search the same Graph concurrently.
//
// Complexity:
//
//   - Time:  O((V + E) log V); each vertex is pushed once and popped once,
//     each edge offers at most one push or heap.Fix.
//   - Space: O(V) for the side table and heap.
//   - Run and Search build no per-step views. Step additionally copies the
//     open and closed sets into its Snapshot, O(V log V) per call.
package greedy
