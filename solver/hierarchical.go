// This file implements the hierarchical-ordering solver, which iterates
// the components of a weak topological ordering until each stabilizes.
package solver

import (
	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/eqs"
	"github.com/jandom-devel/fixpoint/ordering"
)

// hoFrame is one open parenthesis during the walk: where to jump back
// to when the component is still dirty, and the dirty flag of the
// enclosing component.
type hoFrame struct {
	returnIndex int
	savedDirty  bool
}

// HierarchicalOrderingSolve solves a finite system by walking the
// parenthesized sequence of a hierarchical ordering left to right. An
// opening parenthesis starts a component with a clean dirty flag; a
// closing parenthesis jumps back to the component head while the
// component is dirty, and otherwise restores the dirty flag the
// enclosing component had when this one opened, and moves on. The walk
// ends past the last element, at which point every component has
// stabilized.
func HierarchicalOrderingSolve[U comparable, V any](sys eqs.FiniteSystem[U, V], start assignment.Assignment[U, V], ho *ordering.Hierarchical[U], opts ...Option[U, V]) (assignment.MutableAssignment[U, V], error) {
	// 1. Validate inputs.
	if sys == nil {
		return nil, ErrNilSystem
	}
	if start == nil {
		return nil, ErrNilAssignment
	}
	if ho == nil {
		return nil, ErrNilOrdering
	}

	// 2. Apply options.
	cfg := defaultOptions[U, V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3. Build accumulator and body.
	current := sys.MutableAssignment(start)
	eq := sys.Dom().Eq
	body := sys.Body()(current)
	seq := ho.Sequence()
	cfg.tracer.Initialized(current)

	// 4. Walk the sequence.
	var stack []hoFrame
	var newval V
	dirty := false
	for i := 0; i < len(seq); {
		e := seq[i]
		switch {
		case e.IsLeft():
			stack = append(stack, hoFrame{returnIndex: i + 1, savedDirty: dirty})
			dirty = false
			i++
		case e.IsRight():
			if dirty {
				// Component changed this pass: iterate it again.
				i = stack[len(stack)-1].returnIndex
				dirty = false
			} else {
				frame := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				dirty = frame.savedDirty || dirty
				i++
			}
		default:
			u, _ := e.Unknown()
			newval = body(u)
			if !eq(newval, current.Value(u)) {
				current.Update(u, newval)
				dirty = true
			}
			cfg.tracer.Evaluated(current, u, newval)
			i++
		}
	}

	cfg.tracer.Completed(current)

	return current, nil
}
