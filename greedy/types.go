// Package greedy defines options, outcomes and sentinel errors for greedy
// best-first search over a core.Graph.
package greedy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for search construction and execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("greedy: graph is nil")

	// ErrVertexNotFound is returned when the start or goal ID is absent.
	// It wraps core.ErrVertexNotFound, so either sentinel matches errors.Is.
	ErrVertexNotFound = errors.New("greedy: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("greedy: invalid option supplied")

	// ErrStepLimit is the Reason of a search aborted by WithMaxSteps.
	ErrStepLimit = errors.New("greedy: step limit reached")

	// ErrFinished is returned by Step once the engine reached a terminal state.
	ErrFinished = errors.New("greedy: search already finished")
)

// Status is the state of an Engine.
//
//	Initialized → Running → {Succeeded, Exhausted, Aborted}
type Status int

const (
	// StatusInitialized: open = {start}, no step taken yet.
	StatusInitialized Status = iota
	// StatusRunning: at least one step taken, no terminal outcome yet.
	StatusRunning
	// StatusSucceeded: the goal was expanded; Path is set.
	StatusSucceeded
	// StatusExhausted: the open set emptied before the goal was reached.
	StatusExhausted
	// StatusAborted: cancelled by context or step limit; Reason is set.
	StatusAborted
)

// Terminal reports whether no further steps are possible.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusExhausted || s == StatusAborted
}

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusInitialized:
		return "initialized"
	case StatusRunning:
		return "running"
	case StatusSucceeded:
		return "succeeded"
	case StatusExhausted:
		return "exhausted"
	case StatusAborted:
		return "aborted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Option configures search behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per step.
	Ctx context.Context

	// Cost assigns open-set priorities. Default: FromHeuristic(Manhattan).
	Cost CostFunc

	// MaxSteps, if > 0, aborts the search with ErrStepLimit once that many
	// steps were taken without a terminal outcome. 0 means no limit.
	MaxSteps int

	// Logger receives debug records per step and one info record at the end.
	Logger *slog.Logger

	// OnExpand is called when a vertex is moved from open to closed.
	OnExpand func(id string, step int)

	// OnDiscover is called when a vertex first enters the open set.
	OnDiscover func(id, parent string, h float64)

	// OnReparent is called when an open vertex gets a cheaper parent.
	OnReparent func(id, oldParent, newParent string, h float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Manhattan distance as the only cost
//   - no step limit
//   - a logger that discards everything
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Cost:       FromHeuristic(Manhattan),
		MaxSteps:   0,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:   func(string, int) {},
		OnDiscover: func(string, string, float64) {},
		OnReparent: func(string, string, string, float64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic orders the open set by h alone.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Cost = FromHeuristic(h)
	}
}

// WithCost installs an arbitrary CostFunc, e.g. WeightedHeuristic(Manhattan).
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil cost function", ErrOptionViolation)
			return
		}
		o.Cost = fn
	}
}

// WithMaxSteps bounds the number of steps.
//
//	n > 0: abort with ErrStepLimit after n steps
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger routes search logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(id string, step int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run when a vertex enters the open set.
func WithOnDiscover(fn func(id, parent string, h float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithOnReparent registers a callback run when an open vertex is re-parented.
func WithOnReparent(fn func(id, oldParent, newParent string, h float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReparent = fn
		}
	}
}

// Result is the outcome of a finished search.
//
//   - Path: start → goal vertex IDs when Status == StatusSucceeded, else nil.
//   - Steps: number of loop iterations, including the final empty check on exhaustion.
//   - Expanded: vertices in the order they were closed.
//   - Cost: sum of edge weights along Path.
//   - Reason: why the search was aborted (ctx.Err() or ErrStepLimit), else nil.
type Result struct {
	Status   Status
	Path     []string
	Steps    int
	Expanded []string
	Cost     int64
	Reason   error
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Status == StatusSucceeded }

// Length returns the number of edges on the path, or 0 when none was found.
func (r Result) Length() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}

// String renders the path joined by " -> ".
func (r Result) String() string { return strings.Join(r.Path, " -> ") }

// Snapshot exposes the engine state after one Step.
type Snapshot struct {
	Step    int
	Status  Status
	Current string   // vertex expanded in this step, "" if none
	Open    []string // open IDs in the order they would be expanded
	Closed  []string // closed IDs in expansion order
	Path    []string // set once Status == StatusSucceeded
}
