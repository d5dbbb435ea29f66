// Package solver implements the fixpoint solvers: engines that iterate
// the body of an equation system until every equation holds.
//
// Finite solvers take a FiniteSystem and visit its unknowns:
//
//   - RoundRobin                — sweep all unknowns until a full sweep
//     changes nothing; updates are visible within the sweep.
//   - Kleene                    — sweep with two assignments so updates
//     become visible only at the next sweep.
//   - WorkList                  — FIFO queue; a change re-enqueues the
//     influenced unknowns.
//   - PriorityWorkList          — priority queue driven by an ordering,
//     with an optional restart heuristic that resets all later unknowns
//     after a blow-up.
//   - HierarchicalOrderingSolve — walks a weak topological ordering,
//     re-iterating each component until it stabilizes before moving on.
//
// Local solvers take a general (possibly infinite) System and a
// non-empty set of wanted unknowns, discovering the reachable subsystem
// lazily through BodyWithDeps: WorkListInfinite and
// PriorityWorkListInfinite (the latter defaulting to the newest-first
// DynamicPriority).
//
// Every solver returns a mutable assignment layered over the start
// assignment; its Unknowns() reports exactly the unknowns the solver
// wrote, in first-write order. On termination the result is a fixpoint:
// result(u) equals body(result)(u) for every visited unknown.
// Termination itself is the caller's responsibility — the domain must
// satisfy the ascending chain condition or widenings must be installed
// at every loop head.
package solver
