package greedy

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/gbfs/core"
)

// node is the per-run scratch record of one discovered vertex. The Graph
// itself is never written to; all search state lives here.
type node struct {
	vertex core.Vertex
	h      float64 // priority assigned by the CostFunc
	parent string  // "" for the start vertex
	index  int     // position in openQueue, -1 once popped
}

// lessFunc is a strict total order over open nodes.
type lessFunc func(a, b *node) bool

// byPriority orders by h ascending, then by vertex ID ascending. It is the
// only tie-break rule and makes every run reproducible.
func byPriority(a, b *node) bool {
	switch {
	case costLess(a.h, b.h):
		return true
	case costLess(b.h, a.h):
		return false
	}

	return a.vertex.ID < b.vertex.ID
}

// costLess is a < b with NaN ordered after every number, +Inf included.
// Two NaNs compare equal.
func costLess(a, b float64) bool {
	if math.IsNaN(a) {
		return false
	}
	if math.IsNaN(b) {
		return true
	}

	return a < b
}

// openQueue is a min-heap of *node under an injected ordering. Entries track
// their own index so a re-parented node can be fixed in place.
type openQueue struct {
	items []*node
	less  lessFunc
}

func newOpenQueue(less lessFunc, capacity int) *openQueue {
	q := &openQueue{items: make([]*node, 0, capacity), less: less}
	heap.Init(q)

	return q
}

// Len returns the number of items in the heap.
func (q *openQueue) Len() int { return len(q.items) }

// Less delegates to the injected ordering.
func (q *openQueue) Less(i, j int) bool { return q.less(q.items[i], q.items[j]) }

// Swap swaps two elements and keeps their indices current.
func (q *openQueue) Swap(i, j int) {
	q.items[i], q.items[j] = q.items[j], q.items[i]
	q.items[i].index = i
	q.items[j].index = j
}

// Push adds x; called by heap.Push.
func (q *openQueue) Push(x interface{}) {
	n := x.(*node)
	n.index = len(q.items)
	q.items = append(q.items, n)
}

// Pop removes the last element; called by heap.Pop.
func (q *openQueue) Pop() interface{} {
	old := q.items
	last := len(old) - 1
	n := old[last]
	old[last] = nil
	n.index = -1
	q.items = old[:last]

	return n
}

// push inserts n keeping the heap invariant.
func (q *openQueue) push(n *node) { heap.Push(q, n) }

// pop removes and returns the minimum node.
func (q *openQueue) pop() *node { return heap.Pop(q).(*node) }

// fix restores the heap after n.h changed.
func (q *openQueue) fix(n *node) { heap.Fix(q, n.index) }

// ids returns the open vertex IDs in expansion order without disturbing the heap.
func (q *openQueue) ids() []string {
	sorted := make([]*node, len(q.items))
	copy(sorted, q.items)
	sort.Slice(sorted, func(i, j int) bool { return q.less(sorted[i], sorted[j]) })

	out := make([]string, len(sorted))
	for i, n := range sorted {
		out[i] = n.vertex.ID
	}

	return out
}
