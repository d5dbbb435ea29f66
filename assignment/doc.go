// Package assignment defines total functions from unknowns to values and
// their mutable variants, the currency every fixpoint solver trades in.
//
// An Assignment is pure: two reads of the same key return equal values.
// Standard flavors:
//
//   - Constant(v)                 — every key maps to v.
//   - FromMap(m)                  — finite map; reading a missing key
//     panics with a value wrapping ErrUndefined.
//   - FromMapWithDefault(m, d)    — finite map falling back to d.
//   - FromFunc(f, label)          — arbitrary function, labeled for
//     diagnostics.
//   - Updated(base, u, v)         — base with a single key overridden.
//
// A MutableAssignment extends an Assignment with in-place updates and an
// Unknowns list reporting exactly the keys explicitly updated, in
// first-update order — keys served from the initial assignment are never
// reported, while a key written back to its initial value still is.
// Solvers return their solutions as mutable assignments so callers can
// tell which unknowns moved.
package assignment
