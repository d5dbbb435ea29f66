package eqs

import (
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/domain"
)

// Finite is an equation system over a known finite set of unknowns with
// an explicit influence relation. It satisfies FiniteSystem.
type Finite[U comparable, V any] struct {
	Eqs[U, V]
	unknowns []U
	inputs   []U
	infl     Relation[U]
}

// NewFinite returns the finite system with the given body, influence
// relation, unknown set and input unknowns over dom.
//
// The influence relation must honor the locality contract: whenever two
// assignments agree on every v with u ∈ infl(v), the body yields the
// same value at u.
func NewFinite[U comparable, V any](dom domain.Domain[V], body Body[U, V], infl Relation[U], unknowns, inputUnknowns []U) *Finite[U, V] {
	return &Finite[U, V]{
		Eqs:      Eqs[U, V]{dom: dom, initial: body},
		unknowns: unknowns,
		inputs:   inputUnknowns,
		infl:     infl,
	}
}

// Unknowns lists all unknowns of the system, in construction order.
func (f *Finite[U, V]) Unknowns() []U { return f.unknowns }

// InputUnknowns lists the unknowns the influence graph is rooted at.
func (f *Finite[U, V]) InputUnknowns() []U { return f.inputs }

// Infl is the effective influence relation, including the diagonal when
// a non-idempotent combo assignment is installed.
func (f *Finite[U, V]) Infl() Relation[U] { return f.infl }

// WithCombos returns a copy of the system with c installed. When c is
// not entirely idempotent, the influence relation gains the diagonal: a
// non-idempotent combo at u makes the body at u depend on rho(u).
func (f *Finite[U, V]) WithCombos(c combo.Assignment[U, V]) FiniteSystem[U, V] {
	clone := *f
	clone.combos = c.Clone()
	if !c.AreIdempotent() {
		clone.infl = f.infl.WithDiagonal()
	}

	return &clone
}

// WithBaseAssignment returns a copy of the system merging init into the
// body with the domain's Combine operation.
func (f *Finite[U, V]) WithBaseAssignment(init map[U]V) FiniteSystem[U, V] {
	return f.WithBaseAssignmentOp(init, f.dom.Combine)
}

// WithBaseAssignmentOp returns a copy of the system merging init into
// the body with op wherever init is defined.
func (f *Finite[U, V]) WithBaseAssignmentOp(init map[U]V, op func(a, b V) V) FiniteSystem[U, V] {
	clone := *f
	clone.base = init
	clone.baseOp = op

	return &clone
}

// WithTracer returns a copy of the system with t installed.
func (f *Finite[U, V]) WithTracer(t Tracer[U, V]) FiniteSystem[U, V] {
	clone := *f
	clone.tracer = t

	return &clone
}
