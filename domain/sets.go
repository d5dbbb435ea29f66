package domain

import "github.com/bits-and-blooms/bitset"

// Sets returns the powerset Domain over *bitset.BitSet: equality is
// set equality, the order is inclusion, and both the upper bound and
// the magma combine are set union.
//
// BitSet values are treated as immutable by the returned operations:
// Union allocates a fresh set, so assignments never alias each other's
// storage. Callers building bodies over this domain should follow the
// same discipline (use Union/Difference, not in-place mutation).
func Sets() Domain[*bitset.BitSet] {
	return Domain[*bitset.BitSet]{
		Eq:         func(a, b *bitset.BitSet) bool { return a.Equal(b) },
		LtEq:       func(a, b *bitset.BitSet) bool { return b.IsSuperSet(a) },
		UpperBound: func(a, b *bitset.BitSet) *bitset.BitSet { return a.Union(b) },
		Combine:    func(a, b *bitset.BitSet) *bitset.BitSet { return a.Union(b) },
	}
}

// SetOf builds a BitSet holding exactly the given elements.
func SetOf(elems ...uint) *bitset.BitSet {
	s := bitset.New(8)
	for _, e := range elems {
		s.Set(e)
	}

	return s
}
