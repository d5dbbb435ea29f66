// This file declares the driver parameter enums, the Params struct, and
// sentinel errors.
//
// Errors:
//
//	ErrNilSystem            - the equation system is nil.
//	ErrNilStart             - the start assignment is nil.
//	ErrLocalizedNonGraph    - Localized scope on a non-graph system.
//	ErrHierarchicalOrdering - hierarchical solver with a non-hierarchical
//	                          ordering override.
package driver

import (
	"errors"

	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/ordering"
	"github.com/jandom-devel/fixpoint/solver"
)

var (
	// ErrNilSystem indicates a nil equation system.
	ErrNilSystem = errors.New("driver: equation system is nil")

	// ErrNilStart indicates a nil start assignment.
	ErrNilStart = errors.New("driver: start assignment is nil")

	// ErrLocalizedNonGraph indicates Localized scope was requested on a
	// system that is not graph-based.
	ErrLocalizedNonGraph = errors.New("driver: localized scope requires a graph equation system")

	// ErrHierarchicalOrdering indicates the hierarchical solver was
	// paired with an ordering override that is not hierarchical.
	ErrHierarchicalOrdering = errors.New("driver: hierarchical solver requires a hierarchical ordering")
)

// SolverKind selects the solving engine.
type SolverKind uint8

const (
	// SolverWorkList is the FIFO worklist solver (the default).
	SolverWorkList SolverKind = iota

	// SolverRoundRobin sweeps all unknowns until stable.
	SolverRoundRobin

	// SolverKleene sweeps with updates visible only at the next sweep.
	SolverKleene

	// SolverPriorityWorkList pops unknowns in depth-first order.
	SolverPriorityWorkList

	// SolverHierarchical walks a weak topological ordering.
	SolverHierarchical
)

// ComboLocation selects which unknowns receive combos.
type ComboLocation uint8

const (
	// LocationLoop restricts combos to loop heads (the default).
	LocationLoop ComboLocation = iota

	// LocationNone installs no combos at all.
	LocationNone

	// LocationAll installs combos at every unknown.
	LocationAll
)

// ComboScope selects how combos are applied.
type ComboScope uint8

const (
	// ScopeStandard layers combos on the body (the default).
	ScopeStandard ComboScope = iota

	// ScopeLocalized pushes combos inside the edge action of a graph
	// system, on loop-closing edges only.
	ScopeLocalized
)

// ComboStrategy selects the overall iteration strategy.
type ComboStrategy uint8

const (
	// StrategyTwoPhases runs an ascending phase with widenings and a
	// descending phase with narrowings (the default).
	StrategyTwoPhases ComboStrategy = iota

	// StrategyOnlyWidening runs a single ascending phase.
	StrategyOnlyWidening

	// StrategyWarrowing runs a single phase with fused
	// widening/narrowing combos.
	StrategyWarrowing
)

// RestartStrategy arms the restart heuristic of the priority solver.
type RestartStrategy uint8

const (
	// RestartNone disables restarting (the default).
	RestartNone RestartStrategy = iota

	// Restart resets the unknowns after u whenever an update strictly
	// increased the value at u.
	Restart
)

// Params configures one driver run.
type Params[U comparable, V any] struct {
	// Solver selects the engine. Default: SolverWorkList.
	Solver SolverKind

	// Start is the initial assignment. Required.
	Start assignment.Assignment[U, V]

	// Location selects where combos go. Default: LocationLoop.
	Location ComboLocation

	// Scope selects standard or edge-localized application. Default:
	// ScopeStandard.
	Scope ComboScope

	// Strategy selects the iteration strategy. Default:
	// StrategyTwoPhases.
	Strategy ComboStrategy

	// Restart arms the priority solver's restart heuristic. Default:
	// RestartNone.
	Restart RestartStrategy

	// Widenings are the widening combos, before location filtering.
	Widenings combo.Assignment[U, V]

	// Narrowings are the narrowing combos, before location filtering.
	Narrowings combo.Assignment[U, V]

	// Ordering overrides the internally built depth-first ordering.
	// The hierarchical solver requires a *ordering.Hierarchical here.
	Ordering ordering.UnknownOrdering[U]

	// Tracer observes the solver lifecycle.
	Tracer solver.Tracer[U, V]
}

// DefaultParams returns the classic two-phase configuration: worklist
// solver, combos at loop heads, standard scope, no restart, and no
// combos installed yet.
func DefaultParams[U comparable, V any](start assignment.Assignment[U, V]) Params[U, V] {
	return Params[U, V]{
		Solver:     SolverWorkList,
		Start:      start,
		Location:   LocationLoop,
		Scope:      ScopeStandard,
		Strategy:   StrategyTwoPhases,
		Restart:    RestartNone,
		Widenings:  combo.Empty[U, V](),
		Narrowings: combo.Empty[U, V](),
		Tracer:     solver.NoopTracer[U, V](),
	}
}
