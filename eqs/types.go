// This file declares the Body and BodyWithDeps function types, the
// influence Relation, and the System interfaces.
package eqs

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/domain"
	"github.com/jandom-devel/fixpoint/ordering"
)

// Body is the right-hand side of an equation system: given the current
// assignment rho, it returns the function computing the new value of
// each unknown.
type Body[U comparable, V any] func(rho assignment.Assignment[U, V]) func(u U) V

// BodyWithDeps additionally reports which unknowns each evaluation
// queried, in first-query order. Local solvers use it to discover the
// reachable part of an infinite system.
type BodyWithDeps[U comparable, V any] func(rho assignment.Assignment[U, V]) func(u U) (V, []U)

// Relation is a multi-valued mapping from unknowns to unknowns, used as
// the influence relation: v ∈ r(u) means a change of u may change the
// body at v.
type Relation[U comparable] func(u U) []U

// RelationFromMap builds a Relation from an explicit image map; keys
// missing from m have an empty image.
func RelationFromMap[U comparable](m map[U][]U) Relation[U] {
	return func(u U) []U { return m[u] }
}

// WithDiagonal augments the image of each u with u itself.
func (r Relation[U]) WithDiagonal() Relation[U] {
	return func(u U) []U {
		img := r(u)
		for _, x := range img {
			if x == u {
				return img
			}
		}
		out := make([]U, 0, len(img)+1)
		out = append(out, img...)

		return append(out, u)
	}
}

// System is the view of an equation system the local (infinite) solvers
// need: a body, its dependency-aware variant, the domain operations,
// and a factory for solution assignments.
type System[U comparable, V any] interface {
	// Dom returns the abstract operations of the value domain.
	Dom() domain.Domain[V]

	// Body returns the composed body (base → combos → tracer).
	Body() Body[U, V]

	// BodyWithDeps returns the composed body instrumented to report the
	// unknowns queried by each evaluation.
	BodyWithDeps() BodyWithDeps[U, V]

	// MutableAssignment builds the solution accumulator for one solve,
	// layered over rho.
	MutableAssignment(rho assignment.Assignment[U, V]) assignment.MutableAssignment[U, V]
}

// FiniteSystem is the view the finite solvers need: a System plus the
// unknown set and the influence relation, with functional transformers
// preserving finiteness.
type FiniteSystem[U comparable, V any] interface {
	System[U, V]

	// Unknowns lists all unknowns of the system, in a fixed order.
	Unknowns() []U

	// InputUnknowns lists the unknowns the system is rooted at (the
	// entry points of the influence graph).
	InputUnknowns() []U

	// Infl is the influence relation. It is authoritative: worklist
	// solvers re-evaluate exactly Infl(u) after a change of u.
	Infl() Relation[U]

	// WithCombos layers a combo assignment on the system. When the
	// combos are not all idempotent the influence relation gains the
	// diagonal, since a non-idempotent combo at u makes u influence
	// itself.
	WithCombos(c combo.Assignment[U, V]) FiniteSystem[U, V]

	// WithBaseAssignment merges init into the body with the domain's
	// Combine operation wherever init is defined.
	WithBaseAssignment(init map[U]V) FiniteSystem[U, V]

	// WithBaseAssignmentOp merges init into the body with op wherever
	// init is defined.
	WithBaseAssignmentOp(init map[U]V, op func(a, b V) V) FiniteSystem[U, V]

	// WithTracer installs an equation-system tracer.
	WithTracer(t Tracer[U, V]) FiniteSystem[U, V]
}

// GraphSystem is a FiniteSystem whose body derives from an explicit
// graph, enabling the edge-level localizers.
type GraphSystem[U comparable, V any] interface {
	FiniteSystem[U, V]

	// WithLocalizedCombos applies combos inside the edge action, on
	// edges closing a loop according to the ordering.
	WithLocalizedCombos(c combo.Assignment[U, V], ord ordering.UnknownOrdering[U]) GraphSystem[U, V]

	// WithLocalizedWarrowing replaces the body with the warrowing
	// evaluation strategy driven by the ordering.
	WithLocalizedWarrowing(widenings, narrowings combo.Assignment[U, V], ord ordering.UnknownOrdering[U]) FiniteSystem[U, V]
}
