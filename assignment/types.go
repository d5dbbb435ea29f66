// This file declares the Assignment and MutableAssignment interfaces,
// the mutable-assignment factory type, and sentinel errors.
//
// Errors:
//
//	ErrUndefined - a map-backed assignment with no fallback was read at a
//	               missing key (surfaced via panic, see FromMap).
package assignment

import "errors"

// ErrUndefined indicates a read of an unknown that no map-backed
// assignment defines and no fallback covers. It is delivered by panic,
// since Value cannot return an error without poisoning every body
// evaluation; use errors.Is against the recovered value.
var ErrUndefined = errors.New("assignment: unknown is undefined")

// Assignment is a total function from unknowns U to values V.
//
// Implementations must be pure: Value(u) called twice returns equal
// values, and Value must not mutate the assignment.
type Assignment[U comparable, V any] interface {
	// Value returns the value of the unknown u.
	Value(u U) V
}

// MutableAssignment is an Assignment supporting in-place updates.
//
// A mutable assignment is local to one solver run: the solver owns it
// exclusively for the duration of the solve and returns it as the
// solution.
type MutableAssignment[U comparable, V any] interface {
	Assignment[U, V]

	// Update sets the value of u, marking it as explicitly defined.
	Update(u U, v V)

	// IsDefinedAt reports whether u was explicitly updated.
	IsDefinedAt(u U) bool

	// Unknowns lists the explicitly updated unknowns in first-update
	// order. Keys only ever served from the initial assignment are not
	// included.
	Unknowns() []U
}

// Factory builds a fresh MutableAssignment starting from an initial
// assignment. The default factory is NewMutable.
type Factory[U comparable, V any] func(initial Assignment[U, V]) MutableAssignment[U, V]
