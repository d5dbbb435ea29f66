package assignment

import "fmt"

// constant maps every unknown to the same value.
type constant[U comparable, V any] struct {
	v V
}

// Constant returns the assignment mapping every unknown to v.
func Constant[U comparable, V any](v V) Assignment[U, V] {
	return constant[U, V]{v: v}
}

// Value returns the fixed value, regardless of u.
func (c constant[U, V]) Value(U) V { return c.v }

// String renders the constant assignment for diagnostics.
func (c constant[U, V]) String() string { return fmt.Sprintf("const(%v)", c.v) }

// funcBacked wraps an arbitrary function with a diagnostic label.
type funcBacked[U comparable, V any] struct {
	f     func(U) V
	label string
}

// FromFunc returns the assignment computing each value with f. The label
// is only used by String; pass "" for an anonymous assignment.
func FromFunc[U comparable, V any](f func(U) V, label string) Assignment[U, V] {
	return funcBacked[U, V]{f: f, label: label}
}

// Value applies the wrapped function.
func (fb funcBacked[U, V]) Value(u U) V { return fb.f(u) }

// String returns the label given at construction.
func (fb funcBacked[U, V]) String() string {
	if fb.label == "" {
		return "func"
	}

	return fb.label
}

// mapBacked reads from a finite map, falling back to fallback when the
// key is missing. A nil fallback makes missing keys a hard failure.
type mapBacked[U comparable, V any] struct {
	m        map[U]V
	fallback Assignment[U, V]
}

// FromMap returns the assignment defined exactly on the keys of m.
// Reading any other key panics with a value wrapping ErrUndefined.
func FromMap[U comparable, V any](m map[U]V) Assignment[U, V] {
	return mapBacked[U, V]{m: m}
}

// FromMapWithDefault returns the assignment reading from m first and
// from fallback for every key m does not define.
func FromMapWithDefault[U comparable, V any](m map[U]V, fallback Assignment[U, V]) Assignment[U, V] {
	return mapBacked[U, V]{m: m, fallback: fallback}
}

// Value reads map-then-fallback.
func (mb mapBacked[U, V]) Value(u U) V {
	if v, ok := mb.m[u]; ok {
		return v
	}
	if mb.fallback == nil {
		panic(fmt.Errorf("%w: %v", ErrUndefined, u))
	}

	return mb.fallback.Value(u)
}

// String summarizes the map size and fallback presence.
func (mb mapBacked[U, V]) String() string {
	if mb.fallback == nil {
		return fmt.Sprintf("map(%d keys)", len(mb.m))
	}

	return fmt.Sprintf("map(%d keys) over %v", len(mb.m), mb.fallback)
}

// conditional overrides a single key of an underlying assignment.
type conditional[U comparable, V any] struct {
	base Assignment[U, V]
	u    U
	v    V
}

// Updated returns [u ↦ v] over base: the assignment equal to base
// everywhere except at u, where it returns v.
func Updated[U comparable, V any](base Assignment[U, V], u U, v V) Assignment[U, V] {
	return conditional[U, V]{base: base, u: u, v: v}
}

// Value serves the override at the distinguished key, base elsewhere.
func (c conditional[U, V]) Value(u U) V {
	if u == c.u {
		return c.v
	}

	return c.base.Value(u)
}

// String renders the override in [u ↦ v] notation.
func (c conditional[U, V]) String() string {
	return fmt.Sprintf("[%v -> %v] over %v", c.u, c.v, c.base)
}
