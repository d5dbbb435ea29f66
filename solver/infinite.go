// This file implements the local solvers for general (possibly
// infinite) equation systems: the subsystem reachable from a set of
// wanted unknowns is discovered lazily through the dependency-aware
// body.
package solver

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/eqs"
	"github.com/jandom-devel/fixpoint/ordering"
)

// WorkListInfinite locally solves a general system for the wanted
// unknowns with a FIFO worklist. Dependencies are discovered per
// evaluation: a dependency not yet defined in the accumulator is
// initialized from start and enqueued, and the dynamic influence map
// grows as evaluations report what they read.
//
// The wanted unknowns themselves are seeded into the accumulator before
// the first evaluation, so an unknown whose equation stabilizes
// immediately is still reported by Unknowns() in the result.
func WorkListInfinite[U comparable, V any](sys eqs.System[U, V], start assignment.Assignment[U, V], wanted []U, opts ...Option[U, V]) (assignment.MutableAssignment[U, V], error) {
	// 1. Validate inputs.
	if sys == nil {
		return nil, ErrNilSystem
	}
	if start == nil {
		return nil, ErrNilAssignment
	}
	if len(wanted) == 0 {
		return nil, ErrNoWanted
	}

	// 2. Apply options.
	cfg := defaultOptions[U, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Build the accumulator, the dependency-aware body, and the
	//    dynamic influence map; seed the queue with the wanted set.
	current := sys.MutableAssignment(start)
	eq := sys.Dom().Eq
	body := sys.BodyWithDeps()(current)
	infl := newDynamicInfl[U]()

	queue := make([]U, 0, len(wanted))
	queued := make(map[U]bool, len(wanted))
	enqueue := func(u U) {
		if !queued[u] {
			queued[u] = true
			queue = append(queue, u)
		}
	}
	for _, w := range wanted {
		if !current.IsDefinedAt(w) {
			current.Update(w, start.Value(w))
		}
		enqueue(w)
	}
	cfg.tracer.Initialized(current)

	// 4. Drain the queue.
	var u U
	var newval V
	var deps []U
	for len(queue) > 0 {
		u, queue = queue[0], queue[1:]
		queued[u] = false
		newval, deps = body(u)
		for _, y := range deps {
			if !current.IsDefinedAt(y) {
				// First sighting of y: give it its start value and
				// schedule its own evaluation.
				current.Update(y, start.Value(y))
				enqueue(y)
			}
			infl.add(y, u)
		}
		if !eq(newval, current.Value(u)) {
			current.Update(u, newval)
			for _, v := range infl.of(u) {
				enqueue(v)
			}
		}
		cfg.tracer.Evaluated(current, u, newval)
	}

	cfg.tracer.Completed(current)

	return current, nil
}

// PriorityWorkListInfinite locally solves a general system like
// WorkListInfinite, but pops the smallest queued unknown according to
// ord. A nil ord defaults to a fresh DynamicPriority, which hands newly
// discovered unknowns out first; the queue touches unknowns at insert
// time, so runs are reproducible.
func PriorityWorkListInfinite[U comparable, V any](sys eqs.System[U, V], start assignment.Assignment[U, V], wanted []U, ord ordering.Ordering[U], opts ...Option[U, V]) (assignment.MutableAssignment[U, V], error) {
	// 1. Validate inputs.
	if sys == nil {
		return nil, ErrNilSystem
	}
	if start == nil {
		return nil, ErrNilAssignment
	}
	if len(wanted) == 0 {
		return nil, ErrNoWanted
	}
	if ord == nil {
		ord = ordering.NewDynamicPriority[U]()
	}

	// 2. Apply options.
	cfg := defaultOptions[U, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Accumulator, body, influence map, seeded priority queue.
	current := sys.MutableAssignment(start)
	eq := sys.Dom().Eq
	body := sys.BodyWithDeps()(current)
	infl := newDynamicInfl[U]()

	pq := newPriorityQueue(ord, len(wanted))
	for _, w := range wanted {
		if !current.IsDefinedAt(w) {
			current.Update(w, start.Value(w))
		}
		pq.enqueue(w)
	}
	cfg.tracer.Initialized(current)

	// 4. Drain in priority order.
	var u U
	var newval V
	var deps []U
	for pq.Len() > 0 {
		u = pq.dequeue()
		newval, deps = body(u)
		for _, y := range deps {
			if !current.IsDefinedAt(y) {
				current.Update(y, start.Value(y))
				pq.enqueue(y)
			}
			infl.add(y, u)
		}
		if !eq(newval, current.Value(u)) {
			current.Update(u, newval)
			for _, v := range infl.of(u) {
				pq.enqueue(v)
			}
		}
		cfg.tracer.Evaluated(current, u, newval)
	}

	cfg.tracer.Completed(current)

	return current, nil
}

// dynamicInfl accumulates the influence relation discovered during a
// local solve, deduplicated and in first-seen order.
type dynamicInfl[U comparable] struct {
	images map[U][]U
	seen   map[U]map[U]bool
}

func newDynamicInfl[U comparable]() *dynamicInfl[U] {
	return &dynamicInfl[U]{
		images: make(map[U][]U),
		seen:   make(map[U]map[U]bool),
	}
}

// add records that a change of u may change the body at v.
func (d *dynamicInfl[U]) add(u, v U) {
	s := d.seen[u]
	if s == nil {
		s = make(map[U]bool)
		d.seen[u] = s
	}
	if !s[v] {
		s[v] = true
		d.images[u] = append(d.images[u], v)
	}
}

// of returns the recorded influence image of u.
func (d *dynamicInfl[U]) of(u U) []U { return d.images[u] }
