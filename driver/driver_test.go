package driver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/domain"
	"github.com/jandom-devel/fixpoint/driver"
	"github.com/jandom-devel/fixpoint/eqs"
	"github.com/jandom-devel/fixpoint/ordering"
)

// loopEdge is an edge of the interval-analysis loop graph.
type loopEdge struct {
	from, to int
}

// loopGraph builds the 4-unknown loop 0→1→2→3→1 over extended
// integers: the entry edge passes rho(0) along, the edge into 2 counts
// up to 10 and then sticks there, the edge into 3 adds one, and the
// back edge feeds rho(3) into the head 1.
func loopGraph() *eqs.Graph[int, domain.ExtInt, loopEdge] {
	edges := []loopEdge{{0, 1}, {1, 2}, {2, 3}, {3, 1}}
	outgoing := make(map[int][]loopEdge)
	ingoing := make(map[int][]loopEdge)
	for _, e := range edges {
		outgoing[e.from] = append(outgoing[e.from], e)
		ingoing[e.to] = append(ingoing[e.to], e)
	}
	shape := eqs.GraphShape[int, domain.ExtInt, loopEdge]{
		EdgeAction: func(rho assignment.Assignment[int, domain.ExtInt]) func(loopEdge) domain.ExtInt {
			return func(e loopEdge) domain.ExtInt {
				v := rho.Value(e.from)
				switch e.from {
				case 1:
					if v >= 10 {
						return 10
					}

					return v.Plus(1)
				case 2:
					return v.Plus(1)
				default:
					return v
				}
			}
		},
		Sources:  func(e loopEdge) []int { return []int{e.from} },
		Target:   func(e loopEdge) int { return e.to },
		Outgoing: func(u int) []loopEdge { return outgoing[u] },
		Ingoing:  func(u int) []loopEdge { return ingoing[u] },
	}

	return eqs.NewGraph(domain.ExtInts(), shape, []int{0, 1, 2, 3}, []int{0})
}

// intervalWidening jumps to +∞ as soon as a value grows.
func intervalWidening() combo.Combo[domain.ExtInt] {
	return combo.FromFunc(func(x, y domain.ExtInt) domain.ExtInt {
		switch {
		case x == domain.MinusInf:
			return y
		case x >= y:
			return x
		default:
			return domain.PlusInf
		}
	}, true)
}

// intervalNarrowing refines +∞ back to the computed value.
func intervalNarrowing() combo.Combo[domain.ExtInt] {
	return combo.FromFunc(func(x, y domain.ExtInt) domain.ExtInt {
		if x == domain.PlusInf {
			return y
		}

		return x
	}, true)
}

// loopStart assigns 0 to the entry unknown and −∞ everywhere else.
func loopStart() assignment.Assignment[int, domain.ExtInt] {
	return assignment.FromMapWithDefault(map[int]domain.ExtInt{0: 0}, assignment.Constant[int](domain.MinusInf))
}

// loopParams is the common scenario configuration.
func loopParams() driver.Params[int, domain.ExtInt] {
	p := driver.DefaultParams(loopStart())
	p.Widenings = combo.Constant[int](intervalWidening())
	p.Narrowings = combo.Constant[int](intervalNarrowing())

	return p
}

// assertValues checks the four unknowns of the loop graph.
func assertValues(t *testing.T, rho assignment.MutableAssignment[int, domain.ExtInt], want [4]domain.ExtInt) {
	t.Helper()
	for u, expected := range want {
		assert.Equal(t, expected, rho.Value(u), "unknown %d", u)
	}
}

func TestSolve_TwoPhases(t *testing.T) {
	p := loopParams()
	rho, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
	require.NoError(t, err)

	assertValues(t, rho, [4]domain.ExtInt{0, 11, 10, 11})
}

func TestSolve_OnlyWidening(t *testing.T) {
	p := loopParams()
	p.Strategy = driver.StrategyOnlyWidening

	for name, kind := range map[string]driver.SolverKind{
		"worklist":     driver.SolverWorkList,
		"roundrobin":   driver.SolverRoundRobin,
		"kleene":       driver.SolverKleene,
		"priority":     driver.SolverPriorityWorkList,
		"hierarchical": driver.SolverHierarchical,
	} {
		t.Run(name, func(t *testing.T) {
			p.Solver = kind
			rho, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
			require.NoError(t, err)

			assertValues(t, rho, [4]domain.ExtInt{0, domain.PlusInf, 10, 11})
		})
	}
}

func TestSolve_TwoPhases_OtherSolvers(t *testing.T) {
	for name, kind := range map[string]driver.SolverKind{
		"priority":     driver.SolverPriorityWorkList,
		"hierarchical": driver.SolverHierarchical,
	} {
		t.Run(name, func(t *testing.T) {
			p := loopParams()
			p.Solver = kind
			rho, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
			require.NoError(t, err)

			assertValues(t, rho, [4]domain.ExtInt{0, 11, 10, 11})
		})
	}
}

func TestSolve_Warrowing_Standard(t *testing.T) {
	p := loopParams()
	p.Strategy = driver.StrategyWarrowing

	rho, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
	require.NoError(t, err)

	assertValues(t, rho, [4]domain.ExtInt{0, 11, 10, 11})
}

func TestSolve_Warrowing_Localized(t *testing.T) {
	p := loopParams()
	p.Strategy = driver.StrategyWarrowing
	p.Scope = driver.ScopeLocalized

	rho, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
	require.NoError(t, err)

	assertValues(t, rho, [4]domain.ExtInt{0, 11, 10, 11})
}

func TestSolve_LocationAll(t *testing.T) {
	// Widenings everywhere converge without loop-head detection.
	p := loopParams()
	p.Strategy = driver.StrategyOnlyWidening
	p.Location = driver.LocationAll

	rho, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
	require.NoError(t, err)

	assert.Equal(t, domain.ExtInt(0), rho.Value(0))
	assert.Equal(t, domain.PlusInf, rho.Value(1))
}

func TestSolve_PhaseNotifications(t *testing.T) {
	tr := &phaseTracer{}
	p := loopParams()
	p.Tracer = tr

	_, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
	require.NoError(t, err)

	assert.Equal(t, 1, tr.ascending)
	assert.Equal(t, 1, tr.descending)
}

// phaseTracer counts phase notifications.
type phaseTracer struct {
	ascending  int
	descending int
}

func (p *phaseTracer) Initialized(assignment.Assignment[int, domain.ExtInt])                   {}
func (p *phaseTracer) Evaluated(assignment.Assignment[int, domain.ExtInt], int, domain.ExtInt) {}
func (p *phaseTracer) Completed(assignment.Assignment[int, domain.ExtInt])                     {}

func (p *phaseTracer) AscendingBegins(assignment.Assignment[int, domain.ExtInt]) {
	p.ascending++
}

func (p *phaseTracer) DescendingBegins(assignment.Assignment[int, domain.ExtInt]) {
	p.descending++
}

func TestSolve_Errors(t *testing.T) {
	p := loopParams()

	_, err := driver.Solve[int, domain.ExtInt](nil, p)
	assert.ErrorIs(t, err, driver.ErrNilSystem)

	p.Start = nil
	_, err = driver.Solve[int, domain.ExtInt](loopGraph(), p)
	assert.ErrorIs(t, err, driver.ErrNilStart)
}

func TestSolve_LocalizedNeedsGraph(t *testing.T) {
	// A plain finite system cannot host localized combos.
	body := func(rho assignment.Assignment[int, domain.ExtInt]) func(int) domain.ExtInt {
		return func(u int) domain.ExtInt { return rho.Value(u) }
	}
	finite := eqs.NewFinite(domain.ExtInts(), body, eqs.RelationFromMap(map[int][]int{}), []int{0}, []int{0})

	p := loopParams()
	p.Scope = driver.ScopeLocalized
	_, err := driver.Solve[int, domain.ExtInt](finite, p)
	assert.ErrorIs(t, err, driver.ErrLocalizedNonGraph)
}

func TestSolve_HierarchicalNeedsHierarchicalOrdering(t *testing.T) {
	sys := loopGraph()
	dfo := ordering.NewDF(sys.Infl(), sys.Unknowns(), sys.InputUnknowns())

	p := loopParams()
	p.Solver = driver.SolverHierarchical
	p.Ordering = dfo
	_, err := driver.Solve[int, domain.ExtInt](sys, p)
	assert.ErrorIs(t, err, driver.ErrHierarchicalOrdering)

	// A hierarchical override is accepted.
	p.Ordering = ordering.FromOrdering[int](dfo)
	rho, err := driver.Solve[int, domain.ExtInt](sys, p)
	require.NoError(t, err)
	assertValues(t, rho, [4]domain.ExtInt{0, 11, 10, 11})
}

func TestSolve_RestartStrategy(t *testing.T) {
	p := loopParams()
	p.Solver = driver.SolverPriorityWorkList
	p.Restart = driver.Restart

	rho, err := driver.Solve[int, domain.ExtInt](loopGraph(), p)
	require.NoError(t, err)

	assertValues(t, rho, [4]domain.ExtInt{0, 11, 10, 11})
}
