// This file declares the Combo interface, the partial combo Assignment
// interface, and sentinel errors.
//
// Errors:
//
//	ErrNegativeDelay - Cascade called with delay < 0.
package combo

import "errors"

// ErrNegativeDelay indicates a Cascade with a negative delay.
var ErrNegativeDelay = errors.New("combo: cascade delay is negative")

// Combo is a binary combinator on V. Apply may mutate internal state
// (only Cascade does among the built-ins), hence Clone.
type Combo[V any] interface {
	// Apply combines the current value x with the new contribution y.
	Apply(x, y V) V

	// IsIdempotent reports that Apply(Apply(x,y), y) == Apply(x,y).
	IsIdempotent() bool

	// IsRight reports that Apply always returns its second argument.
	IsRight() bool

	// IsImmutable reports that Apply never mutates internal state.
	IsImmutable() bool

	// Clone returns a behaviorally equivalent combo with fresh state.
	// An immutable combo may return itself.
	Clone() Combo[V]
}

// Assignment is a partial function from unknowns to combos, plus
// aggregate flags over its whole image.
type Assignment[U comparable, V any] interface {
	// Get returns the combo installed at u, or Right when undefined.
	Get(u U) Combo[V]

	// IsDefinedAt reports whether a combo is installed at u.
	IsDefinedAt(u U) bool

	// IsEmpty reports that no unknown has a combo installed.
	IsEmpty() bool

	// AreIdempotent reports that every installed combo is idempotent.
	AreIdempotent() bool

	// AreRight reports that every installed combo is a right combo.
	AreRight() bool

	// AreImmutable reports that every installed combo is immutable.
	AreImmutable() bool

	// Clone returns an independent copy; installed mutable combos are
	// cloned so their state is not shared.
	Clone() Assignment[U, V]

	// Restrict filters the domain with pred; unknowns failing pred
	// become undefined (Get returns Right).
	Restrict(pred func(U) bool) Assignment[U, V]
}
