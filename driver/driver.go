package driver

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/eqs"
	"github.com/jandom-devel/fixpoint/ordering"
	"github.com/jandom-devel/fixpoint/solver"
)

// Solve runs the driver on a finite equation system.
//
// The ordering the run needs is built on demand: a depth-first ordering
// of the influence graph when the solver is priority-driven, the scope
// is localized, or combos are restricted to loop heads; the
// hierarchical solver additionally refines it into a weak topological
// ordering. An explicit Params.Ordering overrides the depth-first one.
func Solve[U comparable, V any](sys eqs.FiniteSystem[U, V], p Params[U, V]) (assignment.MutableAssignment[U, V], error) {
	// 1. Validate inputs and fill in defaults.
	if sys == nil {
		return nil, ErrNilSystem
	}
	if p.Start == nil {
		return nil, ErrNilStart
	}
	if p.Widenings == nil {
		p.Widenings = combo.Empty[U, V]()
	}
	if p.Narrowings == nil {
		p.Narrowings = combo.Empty[U, V]()
	}
	if p.Tracer == nil {
		p.Tracer = solver.NoopTracer[U, V]()
	}

	// 2. Localized scope needs a graph system.
	graph, isGraph := sys.(eqs.GraphSystem[U, V])
	if p.Scope == ScopeLocalized && !isGraph {
		return nil, ErrLocalizedNonGraph
	}

	// 3. Resolve the orderings the configuration needs.
	needOrdering := p.Solver == SolverPriorityWorkList ||
		p.Solver == SolverHierarchical ||
		p.Scope == ScopeLocalized ||
		p.Location == LocationLoop
	var uord ordering.UnknownOrdering[U]
	if p.Ordering != nil {
		uord = p.Ordering
	} else if needOrdering {
		uord = ordering.NewDF(sys.Infl(), sys.Unknowns(), sys.InputUnknowns())
	}
	var ho *ordering.Hierarchical[U]
	if p.Solver == SolverHierarchical {
		var ok bool
		if ho, ok = uord.(*ordering.Hierarchical[U]); !ok {
			if p.Ordering != nil {
				return nil, ErrHierarchicalOrdering
			}
			ho = ordering.FromOrdering(uord)
			uord = ho
		}
	}

	// 4. Dispatch on the strategy.
	switch p.Strategy {
	case StrategyOnlyWidening:
		widened, err := applyCombos(sys, graph, comboFilter(p.Widenings, p.Location, uord), p.Scope, uord)
		if err != nil {
			return nil, err
		}

		return runSolver(widened, p, uord, ho)

	case StrategyWarrowing:
		if p.Scope == ScopeLocalized {
			warrowed := graph.WithLocalizedWarrowing(
				comboFilter(p.Widenings, p.Location, uord),
				comboFilter(p.Narrowings, p.Location, uord),
				uord,
			)

			return runSolver(warrowed, p, uord, ho)
		}
		fused := combo.WarrowingAssignment(p.Widenings, p.Narrowings, sys.Dom().LtEq)
		warrowed := sys.WithCombos(comboFilter(fused, p.Location, uord))

		return runSolver(warrowed, p, uord, ho)

	default: // StrategyTwoPhases
		widened, err := applyCombos(sys, graph, comboFilter(p.Widenings, p.Location, uord), p.Scope, uord)
		if err != nil {
			return nil, err
		}
		p.Tracer.AscendingBegins(p.Start)
		ascending, err := runSolver(widened, p, uord, ho)
		if err != nil {
			return nil, err
		}

		// Narrowings always apply with standard scope: localized
		// narrowing is disabled.
		narrowed := sys.WithCombos(comboFilter(p.Narrowings, p.Location, uord))
		p.Tracer.DescendingBegins(ascending)
		descending := p
		descending.Start = ascending

		return runSolver(narrowed, descending, uord, ho)
	}
}

// comboFilter narrows a combo assignment to the configured location.
func comboFilter[U comparable, V any](c combo.Assignment[U, V], loc ComboLocation, uord ordering.UnknownOrdering[U]) combo.Assignment[U, V] {
	switch loc {
	case LocationNone:
		return combo.Empty[U, V]()
	case LocationAll:
		return c
	default: // LocationLoop
		return c.Restrict(uord.IsHead)
	}
}

// applyCombos installs a combo assignment with the configured scope.
func applyCombos[U comparable, V any](sys eqs.FiniteSystem[U, V], graph eqs.GraphSystem[U, V], c combo.Assignment[U, V], scope ComboScope, uord ordering.UnknownOrdering[U]) (eqs.FiniteSystem[U, V], error) {
	if scope == ScopeLocalized {
		return graph.WithLocalizedCombos(c, uord), nil
	}

	return sys.WithCombos(c), nil
}

// runSolver dispatches one solve to the configured engine.
func runSolver[U comparable, V any](sys eqs.FiniteSystem[U, V], p Params[U, V], uord ordering.UnknownOrdering[U], ho *ordering.Hierarchical[U]) (assignment.MutableAssignment[U, V], error) {
	opts := []solver.Option[U, V]{solver.WithTracer(p.Tracer)}
	if p.Restart == Restart {
		lt := sys.Dom().Lt
		opts = append(opts, solver.WithRestart[U, V](func(newval, oldval V) bool {
			return lt(oldval, newval)
		}))
	}

	switch p.Solver {
	case SolverRoundRobin:
		return solver.RoundRobin(sys, p.Start, opts...)
	case SolverKleene:
		return solver.Kleene(sys, p.Start, opts...)
	case SolverPriorityWorkList:
		return solver.PriorityWorkList(sys, p.Start, uord, opts...)
	case SolverHierarchical:
		return solver.HierarchicalOrderingSolve(sys, p.Start, ho, opts...)
	default: // SolverWorkList
		return solver.WorkList(sys, p.Start, opts...)
	}
}
