package solver

import (
	"fmt"
	"io"

	"github.com/jandom-devel/fixpoint/assignment"
)

// Tracer observes the lifecycle of one solver run. Implementations are
// passive: callbacks must never mutate rho or retain it past the call,
// and must be safe to re-enter (a body evaluation may fire nested
// equation-system tracer events).
type Tracer[U comparable, V any] interface {
	// Initialized fires once, after the solution accumulator is built.
	Initialized(rho assignment.Assignment[U, V])

	// Evaluated fires after each body evaluation, with the value the
	// unknown now has.
	Evaluated(rho assignment.Assignment[U, V], u U, newval V)

	// Completed fires once, when the solver is about to return rho.
	Completed(rho assignment.Assignment[U, V])

	// AscendingBegins fires when a two-phase driver starts the
	// ascending (widening) phase.
	AscendingBegins(rho assignment.Assignment[U, V])

	// DescendingBegins fires when a two-phase driver starts the
	// descending (narrowing) phase.
	DescendingBegins(rho assignment.Assignment[U, V])
}

// noopTracer ignores every event.
type noopTracer[U comparable, V any] struct{}

// NoopTracer returns the tracer that ignores every event.
func NoopTracer[U comparable, V any]() Tracer[U, V] { return noopTracer[U, V]{} }

func (noopTracer[U, V]) Initialized(assignment.Assignment[U, V])      {}
func (noopTracer[U, V]) Evaluated(assignment.Assignment[U, V], U, V)  {}
func (noopTracer[U, V]) Completed(assignment.Assignment[U, V])        {}
func (noopTracer[U, V]) AscendingBegins(assignment.Assignment[U, V])  {}
func (noopTracer[U, V]) DescendingBegins(assignment.Assignment[U, V]) {}

// debugTracer prints one line per event.
type debugTracer[U comparable, V any] struct {
	w io.Writer
}

// DebugTracer returns a tracer printing one line per event to w.
func DebugTracer[U comparable, V any](w io.Writer) Tracer[U, V] {
	return debugTracer[U, V]{w: w}
}

func (d debugTracer[U, V]) Initialized(assignment.Assignment[U, V]) {
	fmt.Fprintln(d.w, "initialized")
}

func (d debugTracer[U, V]) Evaluated(_ assignment.Assignment[U, V], u U, newval V) {
	fmt.Fprintf(d.w, "evaluated %v = %v\n", u, newval)
}

func (d debugTracer[U, V]) Completed(assignment.Assignment[U, V]) {
	fmt.Fprintln(d.w, "completed")
}

func (d debugTracer[U, V]) AscendingBegins(assignment.Assignment[U, V]) {
	fmt.Fprintln(d.w, "ascending phase begins")
}

func (d debugTracer[U, V]) DescendingBegins(assignment.Assignment[U, V]) {
	fmt.Fprintln(d.w, "descending phase begins")
}

// PerformanceTracer counts body evaluations, for observing the cost of
// a solve at runtime.
type PerformanceTracer[U comparable, V any] struct {
	evaluations int
}

// NewPerformanceTracer returns a tracer counting evaluations.
func NewPerformanceTracer[U comparable, V any]() *PerformanceTracer[U, V] {
	return &PerformanceTracer[U, V]{}
}

// Evaluations returns the number of body evaluations observed so far.
func (p *PerformanceTracer[U, V]) Evaluations() int { return p.evaluations }

func (p *PerformanceTracer[U, V]) Initialized(assignment.Assignment[U, V]) {}

func (p *PerformanceTracer[U, V]) Evaluated(assignment.Assignment[U, V], U, V) {
	p.evaluations++
}

func (p *PerformanceTracer[U, V]) Completed(assignment.Assignment[U, V])        {}
func (p *PerformanceTracer[U, V]) AscendingBegins(assignment.Assignment[U, V])  {}
func (p *PerformanceTracer[U, V]) DescendingBegins(assignment.Assignment[U, V]) {}
