// Package domain declares the abstract value operations the fixpoint
// engines rely on, bundled as a Domain[V] record of function fields.
//
// A solver never inspects values directly: equality drives convergence
// detection, the partial order drives warrowings and restart heuristics,
// and the upper bound combines edge contributions in graph-based
// equation systems. Only Eq is universally required; the other fields
// may be left nil when no component needs them.
//
// Ready-made instances:
//
//   - Ordered[V]()  — any ordered scalar (ints, floats, strings), with
//     max as the upper bound.
//   - ExtInts()     — int64 extended with −∞/+∞ and saturating addition,
//     the usual playground for widening examples.
//   - Sets()        — finite sets of small naturals backed by
//     bitset.BitSet, the usual dataflow domain (gen/kill analyses).
package domain
