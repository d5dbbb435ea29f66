// This file implements the three body transformations (base assignment,
// combos, tracer) and the default dependency instrumentation.
//
// The canonical composition order inside a system is base → combos →
// tracer: combos observe base-combined values and tracers observe the
// final value of each evaluation.
package eqs

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
)

// addBaseAssignment merges init into body with op at every unknown init
// defines; other unknowns fall through to the inner body.
func addBaseAssignment[U comparable, V any](body Body[U, V], init map[U]V, op func(a, b V) V) Body[U, V] {
	return func(rho assignment.Assignment[U, V]) func(u U) V {
		inner := body(rho)

		return func(u U) V {
			res := inner(u)
			if base, ok := init[u]; ok {
				return op(base, res)
			}

			return res
		}
	}
}

// addCombos layers a combo assignment on body: wherever combos defines
// a combo, the new value at u is combos(u)(rho(u), body(rho)(u)). The
// tracer, when non-nil, is notified of each combo application.
//
// The combo assignment is expected to be owned by the caller already
// (With* transformers clone on installation), so no cloning happens
// here.
func addCombos[U comparable, V any](body Body[U, V], combos combo.Assignment[U, V], t Tracer[U, V]) Body[U, V] {
	return func(rho assignment.Assignment[U, V]) func(u U) V {
		inner := body(rho)

		return func(u U) V {
			res := inner(u)
			if !combos.IsDefinedAt(u) {
				return res
			}
			comboed := combos.Get(u).Apply(rho.Value(u), res)
			if t != nil {
				t.ComboEvaluation(rho, u, res, comboed)
			}

			return comboed
		}
	}
}

// addTracer wraps each evaluation with before/after callbacks.
func addTracer[U comparable, V any](body Body[U, V], t Tracer[U, V]) Body[U, V] {
	return func(rho assignment.Assignment[U, V]) func(u U) V {
		inner := body(rho)

		return func(u U) V {
			t.BeforeEvaluation(rho, u)
			res := inner(u)
			t.AfterEvaluation(rho, u, res)

			return res
		}
	}
}

// depRecorder instruments an assignment to record queried keys in
// first-query order.
type depRecorder[U comparable, V any] struct {
	inner assignment.Assignment[U, V]
	seen  map[U]bool
	order []U
}

func (r *depRecorder[U, V]) Value(u U) V {
	if !r.seen[u] {
		r.seen[u] = true
		r.order = append(r.order, u)
	}

	return r.inner.Value(u)
}

// withDependencies is the default BodyWithDeps implementation: each
// evaluation runs the body against an instrumented rho and reports the
// keys the evaluation actually read.
func withDependencies[U comparable, V any](body Body[U, V]) BodyWithDeps[U, V] {
	return func(rho assignment.Assignment[U, V]) func(u U) (V, []U) {
		return func(u U) (V, []U) {
			rec := &depRecorder[U, V]{inner: rho, seen: make(map[U]bool)}
			res := body(rec)(u)

			return res, rec.order
		}
	}
}
