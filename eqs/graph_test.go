package eqs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/domain"
	"github.com/jandom-devel/fixpoint/eqs"
	"github.com/jandom-devel/fixpoint/ordering"
)

// edge is a plain source→target edge for graph-system tests.
type edge struct {
	from, to int
}

// succShape builds a GraphShape over the given edges whose edge action
// is rho(source)+1.
func succShape(edges []edge) eqs.GraphShape[int, int, edge] {
	outgoing := make(map[int][]edge)
	ingoing := make(map[int][]edge)
	for _, e := range edges {
		outgoing[e.from] = append(outgoing[e.from], e)
		ingoing[e.to] = append(ingoing[e.to], e)
	}

	return eqs.GraphShape[int, int, edge]{
		EdgeAction: func(rho assignment.Assignment[int, int]) func(edge) int {
			return func(e edge) int { return rho.Value(e.from) + 1 }
		},
		Sources:  func(e edge) []int { return []int{e.from} },
		Target:   func(e edge) int { return e.to },
		Outgoing: func(u int) []edge { return outgoing[u] },
		Ingoing:  func(u int) []edge { return ingoing[u] },
	}
}

func TestGraph_BodyDerivation(t *testing.T) {
	sys := eqs.NewGraph(domain.Ordered[int](), succShape([]edge{{0, 1}, {0, 2}, {1, 2}}), []int{0, 1, 2}, []int{0})
	rho := assignment.FromMap(map[int]int{0: 10, 1: 20, 2: 30})

	body := sys.Body()(rho)
	assert.Equal(t, 10, body(0), "no ingoing edges: the body keeps rho(u)")
	assert.Equal(t, 11, body(1))
	assert.Equal(t, 21, body(2), "upper bound of the two contributions")
}

func TestGraph_InflDerivation(t *testing.T) {
	sys := eqs.NewGraph(domain.Ordered[int](), succShape([]edge{{0, 1}, {0, 2}, {0, 1}}), []int{0, 1, 2}, []int{0})

	assert.Equal(t, []int{1, 2}, sys.Infl()(0), "targets of outgoing edges, deduplicated")
	assert.Empty(t, sys.Infl()(1))
}

// loopOrdering builds the depth-first ordering of a graph system.
func loopOrdering(sys eqs.FiniteSystem[int, int]) *ordering.DFOrdering[int] {
	return ordering.NewDF(sys.Infl(), sys.Unknowns(), sys.InputUnknowns())
}

func TestGraph_WithLocalizedCombos_AppliesOnLoopClosingEdges(t *testing.T) {
	base := eqs.NewGraph(domain.Ordered[int](), succShape([]edge{{0, 1}, {1, 2}, {2, 1}}), []int{0, 1, 2}, []int{0})
	dfo := loopOrdering(base)
	assert.True(t, dfo.IsHead(1))

	combos := combo.Constant[int](combo.Left[int]()).Restrict(dfo.IsHead)
	sys := base.WithLocalizedCombos(combos, dfo)
	rho := assignment.FromMap(map[int]int{0: 0, 1: 5, 2: 3})

	// Edge 2→1 closes the loop, so its contribution is replaced by
	// left(rho(1), ·) = 5; the entry edge 0→1 is untouched.
	assert.Equal(t, 5, sys.Body()(rho)(1))
	assert.Equal(t, 4, base.Body()(rho)(1), "the original system is untouched")

	// Left is idempotent: no influence augmentation.
	assert.Equal(t, []int{2}, sys.Infl()(1))
}

func TestGraph_WithLocalizedCombos_NonIdempotentAugmentsInfluence(t *testing.T) {
	base := eqs.NewGraph(domain.Ordered[int](), succShape([]edge{{0, 1}, {1, 2}, {2, 1}}), []int{0, 1, 2}, []int{0})
	dfo := loopOrdering(base)

	combos := combo.Constant[int](combo.Magma(func(x, y int) int { return x + y })).Restrict(dfo.IsHead)
	sys := base.WithLocalizedCombos(combos, dfo)

	// The localized edge 2→1 now also reads rho(1), so 1 influences
	// itself through it.
	assert.Equal(t, []int{2, 1}, sys.Infl()(1))
	assert.Equal(t, []int{1}, sys.Infl()(2), "2 keeps its plain influence")
}

func TestGraph_WithLocalizedWarrowing_Narrows(t *testing.T) {
	base := eqs.NewGraph(domain.Ordered[int](), succShape([]edge{{0, 1}, {2, 1}}), []int{0, 1, 2}, []int{0})
	dfo := loopOrdering(base)

	w := combo.Constant[int](combo.FromFunc(func(x, y int) int { return 999 }, false))
	n := combo.Constant[int](combo.FromFunc(func(x, y int) int { return -999 }, false))
	sys := base.WithLocalizedWarrowing(w, n, dfo)

	// No loop-closing edge, combined value 1 below rho(1)=20: narrow.
	rho := assignment.FromMap(map[int]int{0: 0, 1: 20, 2: 0})
	assert.Equal(t, -999, sys.Body()(rho)(1))

	// Combined value above rho(1) on a plain edge: keep the reduction.
	rho = assignment.FromMap(map[int]int{0: 0, 1: 0, 2: 0})
	assert.Equal(t, 1, sys.Body()(rho)(1))

	// The body always reads rho(u): the influence gains the diagonal.
	assert.Equal(t, []int{1, 0}, sys.Infl()(0))
}

func TestGraph_WithLocalizedWarrowing_WidensOnLoop(t *testing.T) {
	base := eqs.NewGraph(domain.Ordered[int](), succShape([]edge{{0, 1}, {1, 1}}), []int{0, 1}, []int{0})
	dfo := loopOrdering(base)
	assert.True(t, dfo.IsHead(1))

	w := combo.Constant[int](combo.FromFunc(func(x, y int) int { return 999 }, false))
	n := combo.Constant[int](combo.FromFunc(func(x, y int) int { return -999 }, false))
	sys := base.WithLocalizedWarrowing(w, n, dfo)

	// The self-loop contribution 6 exceeds rho(1)=5 and its source does
	// not precede 1: the aggregated wide flag widens.
	rho := assignment.FromMap(map[int]int{0: 0, 1: 5})
	assert.Equal(t, 999, sys.Body()(rho)(1))
}
