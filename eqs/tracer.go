package eqs

import (
	"fmt"
	"io"

	"github.com/jandom-devel/fixpoint/assignment"
)

// Tracer observes body evaluations. Implementations are passive: a
// callback must never mutate rho or retain it past the call.
type Tracer[U comparable, V any] interface {
	// BeforeEvaluation fires before the body is evaluated at u.
	BeforeEvaluation(rho assignment.Assignment[U, V], u U)

	// AfterEvaluation fires after the body produced res at u.
	AfterEvaluation(rho assignment.Assignment[U, V], u U, res V)

	// ComboEvaluation fires when a combo turned res into comboed at u.
	ComboEvaluation(rho assignment.Assignment[U, V], u U, res, comboed V)
}

// noopTracer ignores every event.
type noopTracer[U comparable, V any] struct{}

// NoopTracer returns the tracer that ignores every event.
func NoopTracer[U comparable, V any]() Tracer[U, V] { return noopTracer[U, V]{} }

func (noopTracer[U, V]) BeforeEvaluation(assignment.Assignment[U, V], U)      {}
func (noopTracer[U, V]) AfterEvaluation(assignment.Assignment[U, V], U, V)    {}
func (noopTracer[U, V]) ComboEvaluation(assignment.Assignment[U, V], U, V, V) {}

// debugTracer prints one line per event.
type debugTracer[U comparable, V any] struct {
	w io.Writer
}

// DebugTracer returns a tracer printing one line per event to w.
func DebugTracer[U comparable, V any](w io.Writer) Tracer[U, V] {
	return debugTracer[U, V]{w: w}
}

func (d debugTracer[U, V]) BeforeEvaluation(_ assignment.Assignment[U, V], u U) {
	fmt.Fprintf(d.w, "eval %v\n", u)
}

func (d debugTracer[U, V]) AfterEvaluation(_ assignment.Assignment[U, V], u U, res V) {
	fmt.Fprintf(d.w, "eval %v = %v\n", u, res)
}

func (d debugTracer[U, V]) ComboEvaluation(_ assignment.Assignment[U, V], u U, res, comboed V) {
	fmt.Fprintf(d.w, "combo %v: %v -> %v\n", u, res, comboed)
}
