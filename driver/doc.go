// Package driver implements the classic two-phase fixpoint driver: it
// places widening and narrowing combos on a finite equation system
// according to a location/scope/strategy policy, picks the orderings
// the chosen solver needs, and runs the solve(s).
//
// The strategies:
//
//   - OnlyWidening — install the widenings and solve once; sound but
//     coarse.
//   - TwoPhases    — the CC77 recipe: an ascending phase with
//     widenings, then a descending phase with narrowings started from
//     the ascending result.
//   - Warrowing    — a single phase with the fused widening/narrowing
//     combo, or, on graph systems with Localized scope, the
//     edge-localized warrowing body.
//
// Locations select where combos go (nowhere, everywhere, or exactly at
// the loop heads of a depth-first ordering); the Localized scope pushes
// them inside the edge action of graph systems, on loop-closing edges
// only. The Restart strategy arms the priority worklist solver's
// restart heuristic with the domain's strict order.
package driver
