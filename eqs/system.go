package eqs

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/domain"
)

// Eqs is a general equation system: an initial body plus optional
// transformations (base assignment, combo assignment, tracer), resolved
// into a composed body on demand.
//
// Eqs values are functional: every With* transformer clones the system
// and mutates only the clone's optional fields, so the receiver stays
// usable and independent.
type Eqs[U comparable, V any] struct {
	dom     domain.Domain[V]
	initial Body[U, V]
	combos  combo.Assignment[U, V] // nil when no combos are installed
	base    map[U]V                // nil when no base assignment is installed
	baseOp  func(a, b V) V
	tracer  Tracer[U, V] // nil when no tracer is installed
}

// New returns the equation system with the given initial body over dom.
func New[U comparable, V any](dom domain.Domain[V], body Body[U, V]) *Eqs[U, V] {
	return &Eqs[U, V]{dom: dom, initial: body}
}

// Dom returns the abstract operations of the value domain.
func (e *Eqs[U, V]) Dom() domain.Domain[V] { return e.dom }

// Body resolves the optional transformations into a single composed
// body, in the canonical order base → combos → tracer.
func (e *Eqs[U, V]) Body() Body[U, V] {
	b := e.initial
	if e.base != nil {
		b = addBaseAssignment(b, e.base, e.baseOp)
	}
	if e.combos != nil {
		b = addCombos(b, e.combos, e.tracer)
	}
	if e.tracer != nil {
		b = addTracer(b, e.tracer)
	}

	return b
}

// BodyWithDeps instruments the composed body to report the unknowns
// each evaluation queried.
func (e *Eqs[U, V]) BodyWithDeps() BodyWithDeps[U, V] {
	return withDependencies(e.Body())
}

// MutableAssignment builds the solution accumulator for one solve,
// layered over rho.
func (e *Eqs[U, V]) MutableAssignment(rho assignment.Assignment[U, V]) assignment.MutableAssignment[U, V] {
	return assignment.NewMutable(rho)
}

// WithCombos returns a copy of the system with c installed. The combo
// assignment is cloned on installation so stateful per-key combos
// belong to the new system, not to the caller.
func (e *Eqs[U, V]) WithCombos(c combo.Assignment[U, V]) *Eqs[U, V] {
	clone := *e
	clone.combos = c.Clone()

	return &clone
}

// WithBaseAssignment returns a copy of the system merging init into the
// body with the domain's Combine operation.
func (e *Eqs[U, V]) WithBaseAssignment(init map[U]V) *Eqs[U, V] {
	return e.WithBaseAssignmentOp(init, e.dom.Combine)
}

// WithBaseAssignmentOp returns a copy of the system merging init into
// the body with op wherever init is defined.
func (e *Eqs[U, V]) WithBaseAssignmentOp(init map[U]V, op func(a, b V) V) *Eqs[U, V] {
	clone := *e
	clone.base = init
	clone.baseOp = op

	return &clone
}

// WithTracer returns a copy of the system with t installed.
func (e *Eqs[U, V]) WithTracer(t Tracer[U, V]) *Eqs[U, V] {
	clone := *e
	clone.tracer = t

	return &clone
}
