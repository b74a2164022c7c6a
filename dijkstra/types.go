// Options and sentinel errors for the exact baseline.
//
// The gbfs command and the greedy tests call Dijkstra with only Source (and
// WithReturnPath when they want the optimal route); the remaining options
// bound the work on large grids:
//
//	– MaxDistance:      stop once every remaining vertex is farther than this.
//	– InfEdgeThreshold: treat edges this heavy as walls.

package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrNoPath indicates that PathTo was asked for a vertex the run never reached,
	// e.g. a greedy goal on another island.
	ErrNoPath = errors.New("dijkstra: no path to vertex")
)

// Options configures one Dijkstra run. The zero MaxDistance and
// InfEdgeThreshold are not usable; start from DefaultOptions.
type Options struct {
	Source           string // start vertex, usually the greedy start
	ReturnPath       bool   // also return the predecessor map for PathTo
	MaxDistance      int64  // vertices farther than this stay at math.MaxInt64
	InfEdgeThreshold int64  // edges at least this heavy are skipped
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the start vertex. It is required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath keeps the predecessor map so the optimal route can be
// compared hop by hop with a greedy one.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Panics with ErrBadInfThreshold unless positive.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns options for a full, unbounded run from source
// without a predecessor map.
func DefaultOptions(source string) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
