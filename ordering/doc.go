// Package ordering implements orderings of the unknowns of an equation
// system: the depth-first numbering that identifies loop heads, the
// hierarchical (weak topological) refinement driving the hierarchical
// solver, and the dynamic priority used by local solvers on infinite
// systems.
//
// The depth-first ordering (DFOrdering) numbers the influence graph by
// a DFS started from the input unknowns and continued from any unknowns
// still unvisited. A loop head is the target of a retreating edge: a
// successor that is already visited but not yet post-numbered. Widening
// placement strategies install combos exactly at heads.
//
// The DFS is iterative (an explicit Enter/Exit marker stack), so chains
// as long as the unknown set itself cannot overflow the goroutine
// stack. Successors are pushed in reverse, which makes the observable
// visit order identical to the recursive formulation.
//
// A Hierarchical ordering is a parenthesized sequence over
// {Left, Right, Val(u)}: every loop head opens a parenthesis and
// IsHead(u) holds exactly when Val(u) directly follows a Left. Applied
// to a DFOrdering it is a valid weak topological ordering: every back
// edge targets an opened head.
package ordering
