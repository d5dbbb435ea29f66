// Package eqs implements equation systems: collections of fixpoint
// equations presented as a body, the per-unknown right-hand side
// transformer solvers iterate on.
//
// Three flavors, from least to most structured:
//
//   - Eqs    — a general (possibly infinite) system: just a body. Solved
//     locally by the infinite solvers in package solver, which discover
//     dependencies lazily through BodyWithDeps.
//   - Finite — adds the unknown set, the input unknowns, and the
//     influence relation. Solved by the round-robin, Kleene, worklist,
//     priority and hierarchical solvers.
//   - Graph  — derives its body from an explicit hypergraph of edges,
//     which additionally enables localized combos and localized
//     warrowing on loop-closing edges.
//
// Systems are value-like: every With* transformer returns an independent
// system and leaves the receiver usable. Internally a system is a record
// of optional transformations (base assignment, combo assignment,
// tracer) resolved into a single composed body on demand, in the
// canonical order base → combos → tracer: combos observe base-combined
// values, tracers observe final values.
//
// The locality contract every Finite system must honor: whenever two
// assignments agree on the inverse influences of u, the body yields the
// same value at u. Worklist solvers rely on Infl being authoritative.
package eqs
