// This file implements the worklist solvers for finite equation
// systems: the FIFO worklist and the ordering-driven priority worklist
// with its restart heuristic.
package solver

import (
	"container/heap"

	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/eqs"
	"github.com/jandom-devel/fixpoint/ordering"
)

// WorkList solves a finite system with a FIFO worklist seeded with all
// unknowns in their declared order. A change at u re-enqueues every
// unknown influenced by u; duplicates are suppressed while queued.
func WorkList[U comparable, V any](sys eqs.FiniteSystem[U, V], start assignment.Assignment[U, V], opts ...Option[U, V]) (assignment.MutableAssignment[U, V], error) {
	// 1. Validate inputs.
	if sys == nil {
		return nil, ErrNilSystem
	}
	if start == nil {
		return nil, ErrNilAssignment
	}

	// 2. Apply options.
	cfg := defaultOptions[U, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Build accumulator, body, and the seeded queue.
	current := sys.MutableAssignment(start)
	eq := sys.Dom().Eq
	body := sys.Body()(current)
	infl := sys.Infl()
	unknowns := sys.Unknowns()

	queue := make([]U, 0, len(unknowns))
	queued := make(map[U]bool, len(unknowns))
	enqueue := func(u U) {
		if !queued[u] {
			queued[u] = true
			queue = append(queue, u)
		}
	}
	for _, u := range unknowns {
		enqueue(u)
	}
	cfg.tracer.Initialized(current)

	// 4. Drain the queue; a change propagates along the influence
	//    relation.
	var u U
	var newval V
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		queued[u] = false
		newval = body(u)
		if !eq(newval, current.Value(u)) {
			current.Update(u, newval)
			for _, v := range infl(u) {
				enqueue(v)
			}
		}
		cfg.tracer.Evaluated(current, u, newval)
	}

	cfg.tracer.Completed(current)

	return current, nil
}

// PriorityWorkList solves a finite system with a worklist ordered by
// ord: the smallest queued unknown is evaluated first. With a restart
// predicate installed (WithRestart), an update at u where
// restart(newval, oldval) holds resets every unknown strictly after u
// in the ordering back to its start value — the usual remedy when a
// widening blows a value up and later unknowns were computed from the
// smaller one.
func PriorityWorkList[U comparable, V any](sys eqs.FiniteSystem[U, V], start assignment.Assignment[U, V], ord ordering.Ordering[U], opts ...Option[U, V]) (assignment.MutableAssignment[U, V], error) {
	// 1. Validate inputs.
	if sys == nil {
		return nil, ErrNilSystem
	}
	if start == nil {
		return nil, ErrNilAssignment
	}
	if ord == nil {
		return nil, ErrNilOrdering
	}

	// 2. Apply options.
	cfg := defaultOptions[U, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Build accumulator, body, and the seeded priority queue.
	current := sys.MutableAssignment(start)
	eq := sys.Dom().Eq
	body := sys.Body()(current)
	infl := sys.Infl()
	unknowns := sys.Unknowns()

	pq := newPriorityQueue(ord, len(unknowns))
	for _, u := range unknowns {
		pq.enqueue(u)
	}
	cfg.tracer.Initialized(current)

	// 4. Drain in priority order.
	var u U
	var newval, oldval V
	for pq.Len() > 0 {
		u = pq.dequeue()
		newval = body(u)
		oldval = current.Value(u)
		if !eq(newval, oldval) {
			current.Update(u, newval)
			if cfg.restart != nil && cfg.restart(newval, oldval) {
				// Blow-up at u: everything after u was computed from
				// the stale value, start it over and queue it again.
				for _, y := range unknowns {
					if ord.Compare(y, u) > 0 {
						current.Update(y, start.Value(y))
						pq.enqueue(y)
					}
				}
			}
			for _, v := range infl(u) {
				pq.enqueue(v)
			}
		}
		cfg.tracer.Evaluated(current, u, newval)
	}

	cfg.tracer.Completed(current)

	return current, nil
}

// priorityQueue is a min-heap of unknowns keyed by an Ordering, with
// membership-based duplicate suppression.
type priorityQueue[U comparable] struct {
	items  []U
	ord    ordering.Ordering[U]
	queued map[U]bool
}

// toucher is implemented by orderings assigning priorities on first
// sight (DynamicPriority); the queue touches unknowns at insert time so
// runs are reproducible.
type toucher[U comparable] interface {
	Touch(u U)
}

func newPriorityQueue[U comparable](ord ordering.Ordering[U], capacity int) *priorityQueue[U] {
	return &priorityQueue[U]{
		items:  make([]U, 0, capacity),
		ord:    ord,
		queued: make(map[U]bool, capacity),
	}
}

// enqueue inserts u unless it is already queued.
func (pq *priorityQueue[U]) enqueue(u U) {
	if pq.queued[u] {
		return
	}
	pq.queued[u] = true
	if t, ok := pq.ord.(toucher[U]); ok {
		t.Touch(u)
	}
	heap.Push(pq, u)
}

// dequeue removes and returns the smallest queued unknown.
func (pq *priorityQueue[U]) dequeue() U {
	u := heap.Pop(pq).(U)
	pq.queued[u] = false

	return u
}

// Len returns the number of queued unknowns.
func (pq *priorityQueue[U]) Len() int { return len(pq.items) }

// Less compares by the ordering: smaller compares first.
func (pq *priorityQueue[U]) Less(i, j int) bool {
	return pq.ord.Compare(pq.items[i], pq.items[j]) < 0
}

// Swap swaps two heap slots.
func (pq *priorityQueue[U]) Swap(i, j int) {
	pq.items[i], pq.items[j] = pq.items[j], pq.items[i]
}

// Push appends x; called by container/heap.
func (pq *priorityQueue[U]) Push(x interface{}) {
	pq.items = append(pq.items, x.(U))
}

// Pop removes and returns the last slot; called by container/heap.
func (pq *priorityQueue[U]) Pop() interface{} {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
