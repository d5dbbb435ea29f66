package combo

import "fmt"

// left always keeps the current value.
type left[V any] struct{}

// Left returns the combo that always returns its first argument.
func Left[V any]() Combo[V] { return left[V]{} }

func (left[V]) Apply(x, _ V) V     { return x }
func (left[V]) IsIdempotent() bool { return true }
func (left[V]) IsRight() bool      { return false }
func (left[V]) IsImmutable() bool  { return true }
func (l left[V]) Clone() Combo[V]  { return l }
func (left[V]) String() string     { return "left" }

// right always takes the new contribution; it is the neutral combo.
type right[V any] struct{}

// Right returns the combo that always returns its second argument.
func Right[V any]() Combo[V] { return right[V]{} }

func (right[V]) Apply(_, y V) V     { return y }
func (right[V]) IsIdempotent() bool { return true }
func (right[V]) IsRight() bool      { return true }
func (right[V]) IsImmutable() bool  { return true }
func (r right[V]) Clone() Combo[V]  { return r }
func (right[V]) String() string     { return "right" }

// fromFunc lifts a plain function into an immutable combo.
type fromFunc[V any] struct {
	f          func(x, y V) V
	idempotent bool
}

// FromFunc returns the combo applying f. The caller declares whether f
// is idempotent; the flag decides diagonal augmentation of influence
// relations, so err on the side of false.
func FromFunc[V any](f func(x, y V) V, idempotent bool) Combo[V] {
	return fromFunc[V]{f: f, idempotent: idempotent}
}

// UpperBound returns the idempotent combo applying ub.
func UpperBound[V any](ub func(x, y V) V) Combo[V] {
	return fromFunc[V]{f: ub, idempotent: true}
}

// Magma returns the combo applying an arbitrary magma operation op,
// assumed non-idempotent.
func Magma[V any](op func(x, y V) V) Combo[V] {
	return fromFunc[V]{f: op, idempotent: false}
}

func (ff fromFunc[V]) Apply(x, y V) V     { return ff.f(x, y) }
func (ff fromFunc[V]) IsIdempotent() bool { return ff.idempotent }
func (fromFunc[V]) IsRight() bool         { return false }
func (fromFunc[V]) IsImmutable() bool     { return true }
func (ff fromFunc[V]) Clone() Combo[V]    { return ff }
func (ff fromFunc[V]) String() string     { return "fn" }

// cascade applies first for the initial delay calls, then second.
// The step counter is the only mutable state among the built-ins.
type cascade[V any] struct {
	first  Combo[V]
	second Combo[V]
	delay  int
	step   int
}

// Cascade returns a combo using first for the first delay applications
// and second afterwards. A negative delay is ErrNegativeDelay; a zero
// delay returns second directly; two right combos collapse to Right.
func Cascade[V any](first Combo[V], delay int, second Combo[V]) (Combo[V], error) {
	if delay < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDelay, delay)
	}
	if first.IsRight() && second.IsRight() {
		return Right[V](), nil
	}
	if delay == 0 {
		return second, nil
	}

	return &cascade[V]{first: first, second: second, delay: delay}, nil
}

// Delayed returns a copy of c that behaves like Right for the first k
// applications and like c afterwards.
func Delayed[V any](c Combo[V], k int) (Combo[V], error) {
	return Cascade(Right[V](), k, c)
}

// Apply advances the step counter and dispatches to first or second.
func (c *cascade[V]) Apply(x, y V) V {
	if c.step < c.delay {
		c.step++

		return c.first.Apply(x, y)
	}

	return c.second.Apply(x, y)
}

// IsIdempotent is false: the switch from first to second breaks it.
func (*cascade[V]) IsIdempotent() bool { return false }

func (c *cascade[V]) IsRight() bool {
	return c.first.IsRight() && c.second.IsRight()
}

func (*cascade[V]) IsImmutable() bool { return false }

// Clone returns a cascade with the step counter reset and both halves
// cloned, so a template can be installed at many unknowns.
func (c *cascade[V]) Clone() Combo[V] {
	return &cascade[V]{first: c.first.Clone(), second: c.second.Clone(), delay: c.delay}
}

func (c *cascade[V]) String() string {
	return fmt.Sprintf("cascade(%v, %d, %v)", c.first, c.delay, c.second)
}

// warrowing fuses a widening and a narrowing, selected by y ≤ x.
type warrowing[V any] struct {
	widening  Combo[V]
	narrowing Combo[V]
	lteq      func(a, b V) bool
}

// Warrowing returns the combo applying n(x,y) when lteq(y,x) and w(x,y)
// otherwise. Two right combos collapse to Right. A warrowing is never
// idempotent; it is immutable iff both halves are.
func Warrowing[V any](w, n Combo[V], lteq func(a, b V) bool) Combo[V] {
	if w.IsRight() && n.IsRight() {
		return Right[V]()
	}

	return &warrowing[V]{widening: w, narrowing: n, lteq: lteq}
}

func (wn *warrowing[V]) Apply(x, y V) V {
	if wn.lteq(y, x) {
		return wn.narrowing.Apply(x, y)
	}

	return wn.widening.Apply(x, y)
}

func (*warrowing[V]) IsIdempotent() bool { return false }
func (*warrowing[V]) IsRight() bool      { return false }

func (wn *warrowing[V]) IsImmutable() bool {
	return wn.widening.IsImmutable() && wn.narrowing.IsImmutable()
}

func (wn *warrowing[V]) Clone() Combo[V] {
	if wn.IsImmutable() {
		return wn
	}

	return &warrowing[V]{widening: wn.widening.Clone(), narrowing: wn.narrowing.Clone(), lteq: wn.lteq}
}

func (wn *warrowing[V]) String() string {
	return fmt.Sprintf("warrowing(%v, %v)", wn.widening, wn.narrowing)
}
