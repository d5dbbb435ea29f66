package domain

import "golang.org/x/exp/constraints"

// Domain bundles the abstract operations on a value type V.
//
// Eq is required by every solver; the remaining fields are needed only
// by specific components:
//
//   - LtEq       — warrowing combos, localized warrowing, restart-on-lt.
//   - UpperBound — graph-based systems and the upper-bound combo.
//   - Combine    — optional magma; default merge op for base assignments.
type Domain[V any] struct {
	// Eq reports whether two values are equal.
	Eq func(a, b V) bool

	// LtEq reports whether a is less than or equal to b in the partial
	// order. Nil when no component needs the order.
	LtEq func(a, b V) bool

	// UpperBound returns an upper bound of a and b.
	UpperBound func(a, b V) V

	// Combine is an arbitrary magma operation on V.
	Combine func(a, b V) V
}

// Lt reports whether a is strictly below b. Requires LtEq and Eq.
func (d Domain[V]) Lt(a, b V) bool {
	return d.LtEq(a, b) && !d.Eq(a, b)
}

// Ordered returns the Domain of any totally ordered scalar type:
// equality is ==, the order is <=, the upper bound is max, and Combine
// is max as well.
func Ordered[V constraints.Ordered]() Domain[V] {
	maxOf := func(a, b V) V {
		if a < b {
			return b
		}

		return a
	}

	return Domain[V]{
		Eq:         func(a, b V) bool { return a == b },
		LtEq:       func(a, b V) bool { return a <= b },
		UpperBound: maxOf,
		Combine:    maxOf,
	}
}
