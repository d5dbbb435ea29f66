// Package combo implements binary value combinators (widenings,
// narrowings, warrowings, cascades) and partial per-unknown assignments
// of them.
//
// A Combo combines the current value of an unknown with the freshly
// evaluated right-hand side. Three flags describe it:
//
//   - idempotent — re-applying with the same second argument changes
//     nothing; non-idempotent combos make an unknown influence itself.
//   - right      — the combo always returns its second argument.
//   - immutable  — the combo carries no internal state.
//
// Combos may carry state (Cascade counts its applications), so a combo
// is also a blueprint: Clone yields a behaviorally equivalent fresh
// copy. Immutable combos return themselves; mutable ones allocate fresh
// state. Equation systems and templated assignments clone aggressively
// so a counter never leaks across unknowns or across systems.
//
// An Assignment is a partial map from unknowns to combos with aggregate
// flags, used to install widenings or narrowings at selected unknowns
// (typically loop heads).
package combo
