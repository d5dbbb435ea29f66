package eqs

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/domain"
	"github.com/jandom-devel/fixpoint/ordering"
)

// GraphShape describes an equation system as a hypergraph: each edge e
// contributes edge_action(rho)(e) to its target, and the body at an
// unknown is the upper bound of its ingoing contributions.
type GraphShape[U comparable, V any, E any] struct {
	// EdgeAction computes the contribution of an edge under rho.
	EdgeAction func(rho assignment.Assignment[U, V]) func(e E) V

	// Sources lists the unknowns an edge reads.
	Sources func(e E) []U

	// Target is the unknown an edge contributes to.
	Target func(e E) U

	// Outgoing lists the edges reading u.
	Outgoing func(u U) []E

	// Ingoing lists the edges contributing to u.
	Ingoing func(u U) []E
}

// Graph is a finite equation system whose body and influence relation
// derive from a GraphShape. It satisfies GraphSystem.
type Graph[U comparable, V any, E any] struct {
	Finite[U, V]
	shape GraphShape[U, V, E]
}

// NewGraph returns the graph-based system over dom: the body at u is
// rho(u) when u has no ingoing edges, and otherwise the dom.UpperBound
// reduction of the ingoing edge contributions; the influence of u is
// the set of targets of its outgoing edges.
func NewGraph[U comparable, V any, E any](dom domain.Domain[V], shape GraphShape[U, V, E], unknowns, inputUnknowns []U) *Graph[U, V, E] {
	return &Graph[U, V, E]{
		Finite: Finite[U, V]{
			Eqs:      Eqs[U, V]{dom: dom, initial: graphBody(dom, shape)},
			unknowns: unknowns,
			inputs:   inputUnknowns,
			infl:     graphInfl(shape),
		},
		shape: shape,
	}
}

// graphBody derives the default body from a shape.
func graphBody[U comparable, V any, E any](dom domain.Domain[V], shape GraphShape[U, V, E]) Body[U, V] {
	return func(rho assignment.Assignment[U, V]) func(u U) V {
		act := shape.EdgeAction(rho)

		return func(u U) V {
			in := shape.Ingoing(u)
			if len(in) == 0 {
				return rho.Value(u)
			}
			res := act(in[0])
			for _, e := range in[1:] {
				res = dom.UpperBound(res, act(e))
			}

			return res
		}
	}
}

// graphInfl derives the influence relation from a shape: the targets of
// the outgoing edges of u, deduplicated in first-seen order.
func graphInfl[U comparable, V any, E any](shape GraphShape[U, V, E]) Relation[U] {
	return func(u U) []U {
		out := shape.Outgoing(u)
		seen := make(map[U]bool, len(out))
		targets := make([]U, 0, len(out))
		for _, e := range out {
			t := shape.Target(e)
			if !seen[t] {
				seen[t] = true
				targets = append(targets, t)
			}
		}

		return targets
	}
}

// WithLocalizedCombos returns a copy of the system whose edge action
// applies combos(x) on every edge into x some of whose sources come at
// or after x in the ordering (the loop-closing edges). When the combos
// are not
// all idempotent, the sources of such edges gain x and the outgoing
// edges of x gain those ingoing edges, so the influence of the combo's
// self-dependency propagates correctly.
func (g *Graph[U, V, E]) WithLocalizedCombos(c combo.Assignment[U, V], ord ordering.UnknownOrdering[U]) GraphSystem[U, V] {
	combos := c.Clone()
	shape := g.shape

	// An edge is localized when its target carries a combo and at least
	// one source does not precede the target in the ordering: such an
	// edge comes from inside the target's component and closes a loop.
	localized := func(e E) bool {
		x := shape.Target(e)
		if !combos.IsDefinedAt(x) {
			return false
		}
		for _, s := range shape.Sources(e) {
			if ord.Compare(x, s) <= 0 {
				return true
			}
		}

		return false
	}

	newShape := shape
	newShape.EdgeAction = func(rho assignment.Assignment[U, V]) func(e E) V {
		act := shape.EdgeAction(rho)

		return func(e E) V {
			res := act(e)
			if !localized(e) {
				return res
			}
			x := shape.Target(e)

			return combos.Get(x).Apply(rho.Value(x), res)
		}
	}

	if !combos.AreIdempotent() {
		newShape.Sources = func(e E) []U {
			srcs := shape.Sources(e)
			if !localized(e) {
				return srcs
			}
			x := shape.Target(e)
			for _, s := range srcs {
				if s == x {
					return srcs
				}
			}
			out := make([]U, 0, len(srcs)+1)
			out = append(out, srcs...)

			return append(out, x)
		}
		newShape.Outgoing = func(u U) []E {
			out := shape.Outgoing(u)
			var extra []E
			for _, e := range shape.Ingoing(u) {
				if localized(e) {
					extra = append(extra, e)
				}
			}
			if len(extra) == 0 {
				return out
			}
			all := make([]E, 0, len(out)+len(extra))
			all = append(all, out...)

			return append(all, extra...)
		}
	}

	clone := *g
	clone.shape = newShape
	clone.Finite.Eqs.initial = graphBody(g.dom, newShape)
	clone.Finite.infl = graphInfl(newShape)

	return &clone
}

// WithLocalizedWarrowing returns a finite system whose body evaluates
// each unknown by tagging loop-closing edge contributions as wide,
// reducing contributions and wide flags with (UpperBound, ||), and then
// widening on a wide result, narrowing on a strictly shrinking result,
// and keeping the plain reduction otherwise.
//
// The resulting body always reads rho(u), so the influence relation
// gains the diagonal.
func (g *Graph[U, V, E]) WithLocalizedWarrowing(widenings, narrowings combo.Assignment[U, V], ord ordering.UnknownOrdering[U]) FiniteSystem[U, V] {
	w := widenings.Clone()
	n := narrowings.Clone()
	dom := g.dom
	shape := g.shape

	body := func(rho assignment.Assignment[U, V]) func(u U) V {
		act := shape.EdgeAction(rho)

		return func(u U) V {
			in := shape.Ingoing(u)
			if len(in) == 0 {
				return rho.Value(u)
			}
			current := rho.Value(u)
			var combined V
			wide := false
			for i, e := range in {
				contrib := act(e)
				if i == 0 {
					combined = contrib
				} else {
					combined = dom.UpperBound(combined, contrib)
				}
				if wide || dom.LtEq(contrib, current) {
					continue
				}
				for _, s := range shape.Sources(e) {
					if ord.Compare(u, s) <= 0 {
						wide = true

						break
					}
				}
			}
			if wide {
				return w.Get(u).Apply(current, combined)
			}
			if dom.Lt(combined, current) {
				return n.Get(u).Apply(current, combined)
			}

			return combined
		}
	}

	clone := g.Finite
	clone.Eqs.initial = body
	clone.infl = graphInfl(shape).WithDiagonal()

	return &clone
}
