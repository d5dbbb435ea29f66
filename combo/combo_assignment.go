package combo

// emptyAssignment is undefined everywhere.
type emptyAssignment[U comparable, V any] struct{}

// Empty returns the combo assignment that installs nothing anywhere.
func Empty[U comparable, V any]() Assignment[U, V] { return emptyAssignment[U, V]{} }

func (emptyAssignment[U, V]) Get(U) Combo[V]            { return Right[V]() }
func (emptyAssignment[U, V]) IsDefinedAt(U) bool        { return false }
func (emptyAssignment[U, V]) IsEmpty() bool             { return true }
func (emptyAssignment[U, V]) AreIdempotent() bool       { return true }
func (emptyAssignment[U, V]) AreRight() bool            { return true }
func (emptyAssignment[U, V]) AreImmutable() bool        { return true }
func (e emptyAssignment[U, V]) Clone() Assignment[U, V] { return e }

// Restrict on the empty assignment is the empty assignment.
func (e emptyAssignment[U, V]) Restrict(func(U) bool) Assignment[U, V] { return e }

// constantAssignment installs the same combo at every unknown. The
// combo instance is shared across keys; use Templated when the combo
// carries state that must stay per-key.
type constantAssignment[U comparable, V any] struct {
	c Combo[V]
}

// Constant returns the combo assignment installing c at every unknown.
func Constant[U comparable, V any](c Combo[V]) Assignment[U, V] {
	return constantAssignment[U, V]{c: c}
}

func (ca constantAssignment[U, V]) Get(U) Combo[V]      { return ca.c }
func (constantAssignment[U, V]) IsDefinedAt(U) bool     { return true }
func (constantAssignment[U, V]) IsEmpty() bool          { return false }
func (ca constantAssignment[U, V]) AreIdempotent() bool { return ca.c.IsIdempotent() }
func (ca constantAssignment[U, V]) AreRight() bool      { return ca.c.IsRight() }
func (ca constantAssignment[U, V]) AreImmutable() bool  { return ca.c.IsImmutable() }

func (ca constantAssignment[U, V]) Clone() Assignment[U, V] {
	return constantAssignment[U, V]{c: ca.c.Clone()}
}

func (ca constantAssignment[U, V]) Restrict(pred func(U) bool) Assignment[U, V] {
	return restrictedAssignment[U, V]{inner: ca, pred: pred}
}

// templatedAssignment hands out a fresh clone of a template combo per
// key, memoized on first access, so per-key state never mixes.
type templatedAssignment[U comparable, V any] struct {
	template Combo[V]
	memo     map[U]Combo[V]
}

// Templated returns the combo assignment installing a fresh clone of
// template at every unknown, allocated lazily on first access.
func Templated[U comparable, V any](template Combo[V]) Assignment[U, V] {
	return &templatedAssignment[U, V]{template: template, memo: make(map[U]Combo[V])}
}

func (ta *templatedAssignment[U, V]) Get(u U) Combo[V] {
	c, ok := ta.memo[u]
	if !ok {
		c = ta.template.Clone()
		ta.memo[u] = c
	}

	return c
}

func (*templatedAssignment[U, V]) IsDefinedAt(U) bool     { return true }
func (*templatedAssignment[U, V]) IsEmpty() bool          { return false }
func (ta *templatedAssignment[U, V]) AreIdempotent() bool { return ta.template.IsIdempotent() }
func (ta *templatedAssignment[U, V]) AreRight() bool      { return ta.template.IsRight() }
func (ta *templatedAssignment[U, V]) AreImmutable() bool  { return ta.template.IsImmutable() }

// Clone starts over with an empty memo: Combo.Clone resets internal
// state, so re-cloning each memoized entry would be equivalent.
func (ta *templatedAssignment[U, V]) Clone() Assignment[U, V] {
	return Templated[U, V](ta.template)
}

func (ta *templatedAssignment[U, V]) Restrict(pred func(U) bool) Assignment[U, V] {
	return restrictedAssignment[U, V]{inner: ta, pred: pred}
}

// funcAssignment defines combos through a partial function.
type funcAssignment[U comparable, V any] struct {
	f func(u U) (Combo[V], bool)
}

// FromPartialFunc returns the combo assignment defined wherever f
// returns ok=true. Aggregate flags are conservative (the image cannot
// be enumerated), so influence diagonals are always augmented.
func FromPartialFunc[U comparable, V any](f func(u U) (Combo[V], bool)) Assignment[U, V] {
	return funcAssignment[U, V]{f: f}
}

func (fa funcAssignment[U, V]) Get(u U) Combo[V] {
	if c, ok := fa.f(u); ok {
		return c
	}

	return Right[V]()
}

func (fa funcAssignment[U, V]) IsDefinedAt(u U) bool {
	_, ok := fa.f(u)

	return ok
}

func (funcAssignment[U, V]) IsEmpty() bool              { return false }
func (funcAssignment[U, V]) AreIdempotent() bool        { return false }
func (funcAssignment[U, V]) AreRight() bool             { return false }
func (funcAssignment[U, V]) AreImmutable() bool         { return false }
func (fa funcAssignment[U, V]) Clone() Assignment[U, V] { return fa }

func (fa funcAssignment[U, V]) Restrict(pred func(U) bool) Assignment[U, V] {
	return restrictedAssignment[U, V]{inner: fa, pred: pred}
}

// restrictedAssignment filters the domain of an inner assignment.
type restrictedAssignment[U comparable, V any] struct {
	inner Assignment[U, V]
	pred  func(U) bool
}

func (ra restrictedAssignment[U, V]) Get(u U) Combo[V] {
	if ra.pred(u) {
		return ra.inner.Get(u)
	}

	return Right[V]()
}

func (ra restrictedAssignment[U, V]) IsDefinedAt(u U) bool {
	return ra.pred(u) && ra.inner.IsDefinedAt(u)
}

// IsEmpty is conservative: the predicate may reject every unknown, but
// without enumerating the domain only the inner emptiness is known.
func (ra restrictedAssignment[U, V]) IsEmpty() bool       { return ra.inner.IsEmpty() }
func (ra restrictedAssignment[U, V]) AreIdempotent() bool { return ra.inner.AreIdempotent() }
func (ra restrictedAssignment[U, V]) AreRight() bool      { return ra.inner.AreRight() }
func (ra restrictedAssignment[U, V]) AreImmutable() bool  { return ra.inner.AreImmutable() }

func (ra restrictedAssignment[U, V]) Clone() Assignment[U, V] {
	return restrictedAssignment[U, V]{inner: ra.inner.Clone(), pred: ra.pred}
}

func (ra restrictedAssignment[U, V]) Restrict(pred func(U) bool) Assignment[U, V] {
	inner, outer := ra.pred, pred

	return restrictedAssignment[U, V]{inner: ra.inner, pred: func(u U) bool { return inner(u) && outer(u) }}
}

// warrowingAssignment pairs a widening and a narrowing assignment
// elementwise.
type warrowingAssignment[U comparable, V any] struct {
	widenings  Assignment[U, V]
	narrowings Assignment[U, V]
	lteq       func(a, b V) bool
}

// WarrowingAssignment returns the elementwise warrowing of two combo
// assignments: at each unknown where either side is defined, the combo
// is Warrowing(widenings.Get(u), narrowings.Get(u), lteq). Two
// right-everywhere inputs collapse to Constant(Right).
func WarrowingAssignment[U comparable, V any](widenings, narrowings Assignment[U, V], lteq func(a, b V) bool) Assignment[U, V] {
	if widenings.AreRight() && narrowings.AreRight() {
		return Constant[U, V](Right[V]())
	}

	return warrowingAssignment[U, V]{widenings: widenings, narrowings: narrowings, lteq: lteq}
}

func (wa warrowingAssignment[U, V]) Get(u U) Combo[V] {
	if !wa.IsDefinedAt(u) {
		return Right[V]()
	}

	return Warrowing(wa.widenings.Get(u), wa.narrowings.Get(u), wa.lteq)
}

func (wa warrowingAssignment[U, V]) IsDefinedAt(u U) bool {
	return wa.widenings.IsDefinedAt(u) || wa.narrowings.IsDefinedAt(u)
}

func (wa warrowingAssignment[U, V]) IsEmpty() bool {
	return wa.widenings.IsEmpty() && wa.narrowings.IsEmpty()
}

// AreIdempotent is false: a warrowing switches between its halves
// depending on the comparison, which defeats idempotence in general.
func (warrowingAssignment[U, V]) AreIdempotent() bool { return false }
func (warrowingAssignment[U, V]) AreRight() bool      { return false }

func (wa warrowingAssignment[U, V]) AreImmutable() bool {
	return wa.widenings.AreImmutable() && wa.narrowings.AreImmutable()
}

func (wa warrowingAssignment[U, V]) Clone() Assignment[U, V] {
	return warrowingAssignment[U, V]{
		widenings:  wa.widenings.Clone(),
		narrowings: wa.narrowings.Clone(),
		lteq:       wa.lteq,
	}
}

func (wa warrowingAssignment[U, V]) Restrict(pred func(U) bool) Assignment[U, V] {
	return restrictedAssignment[U, V]{inner: wa, pred: pred}
}
