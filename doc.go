// Package fixpoint solves systems of fixpoint equations x = F(x), where x
// assigns values from an abstract domain to a set of unknowns and F is
// built out of per-unknown right-hand sides.
//
// 🔁 What is fixpoint?
//
//	A small, composable library for the iteration engines behind static
//	analyzers (abstract interpretation, dataflow analysis):
//
//	  • Equation systems: bodies, dependency extraction, combos (widening,
//	    narrowing, warrowing), base assignments, tracers
//	  • Solvers: round-robin, Kleene, worklist, priority worklist,
//	    hierarchical-ordering, plus local solvers for infinite systems
//	  • Orderings: depth-first numbering with loop-head detection and
//	    weak-topological (hierarchical) orderings
//
// Everything is organized under per-concern subpackages:
//
//	domain/     — abstract value operations (equality, ordering, upper bound)
//	assignment/ — total maps from unknowns to values, mutable variants
//	combo/      — binary value combinators and per-unknown combo assignments
//	eqs/        — equation systems: general, finite, and graph-based
//	ordering/   — depth-first and hierarchical orderings of unknowns
//	solver/     — fixpoint solvers for finite and infinite systems
//	driver/     — the two-phase/warrowing convenience driver
//
// Termination is the caller's bargain: either the domain satisfies the
// ascending chain condition, or a widening is installed at every loop
// head. The driver package automates the usual placements.
//
//	go get github.com/jandom-devel/fixpoint
package fixpoint
