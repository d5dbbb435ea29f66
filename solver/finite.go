// This file implements the sweep-based solvers for finite equation
// systems: round-robin and Kleene.
package solver

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/eqs"
)

// RoundRobin solves a finite system by repeatedly sweeping all unknowns
// in their declared order until a full sweep changes nothing. Updates
// are visible immediately, within the same sweep.
//
// Complexity: O(S · N · B) where S is the number of sweeps, N the
// number of unknowns and B the cost of one body evaluation.
func RoundRobin[U comparable, V any](sys eqs.FiniteSystem[U, V], start assignment.Assignment[U, V], opts ...Option[U, V]) (assignment.MutableAssignment[U, V], error) {
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

	// 3. Build the solution accumulator and the composed body.
	current := sys.MutableAssignment(start)
	eq := sys.Dom().Eq
	body := sys.Body()(current)
	unknowns := sys.Unknowns()
	cfg.tracer.Initialized(current)

	// 4. Sweep until clean.
	var newval V
	for dirty := true; dirty; {
		dirty = false
		for _, u := range unknowns {
			newval = body(u)
			if !eq(newval, current.Value(u)) {
				current.Update(u, newval)
				dirty = true
			}
			cfg.tracer.Evaluated(current, u, newval)
		}
	}

	cfg.tracer.Completed(current)

	return current, nil
}

// Kleene solves a finite system with synchronous sweeps: every value of
// a sweep is computed from the previous sweep's assignment, so updates
// become visible only when the sweep completes and the two assignments
// swap. Iteration stops when a full sweep changes nothing.
func Kleene[U comparable, V any](sys eqs.FiniteSystem[U, V], start assignment.Assignment[U, V], opts ...Option[U, V]) (assignment.MutableAssignment[U, V], error) {
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

	// 3. Two accumulators, both over start; they ping-pong each sweep.
	current := sys.MutableAssignment(start)
	next := sys.MutableAssignment(start)
	eq := sys.Dom().Eq
	body := sys.Body()
	unknowns := sys.Unknowns()
	cfg.tracer.Initialized(current)

	// 4. Sweep from current into next, swap, repeat until clean.
	var newval V
	for dirty := true; dirty; {
		dirty = false
		b := body(current)
		for _, u := range unknowns {
			newval = b(u)
			if !eq(newval, current.Value(u)) {
				dirty = true
			}
			// Refresh next wherever it disagrees; skipping equal values
			// keeps Unknowns limited to keys that really moved.
			if !eq(newval, next.Value(u)) {
				next.Update(u, newval)
			}
			cfg.tracer.Evaluated(next, u, newval)
		}
		current, next = next, current
	}

	cfg.tracer.Completed(current)

	return current, nil
}
