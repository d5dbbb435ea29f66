package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jandom-devel/fixpoint/assignment"
	"github.com/jandom-devel/fixpoint/combo"
	"github.com/jandom-devel/fixpoint/domain"
	"github.com/jandom-devel/fixpoint/eqs"
	"github.com/jandom-devel/fixpoint/solver"
)

// collatzLikeSystem builds the infinite system
//
//	body(rho)(x) = max(rho(rho(x)), x/2)          when x is even
//	body(rho)(x) = rho(6*((x-1)/2) + 4)           when x is odd
//
// with the max combo installed everywhere; only the part reachable from
// the wanted unknowns is ever touched.
func collatzLikeSystem() eqs.System[int, int] {
	maxOf := domain.Ordered[int]().UpperBound
	body := func(rho assignment.Assignment[int, int]) func(int) int {
		return func(x int) int {
			if x%2 == 0 {
				return maxOf(rho.Value(rho.Value(x)), x/2)
			}

			return rho.Value(6*((x-1)/2) + 4)
		}
	}

	return eqs.New(domain.Ordered[int](), body).
		WithCombos(combo.Constant[int](combo.UpperBound(maxOf)))
}

func TestWorkListInfinite_LocalSolve(t *testing.T) {
	sys := collatzLikeSystem()
	rho, err := solver.WorkListInfinite(sys, assignment.Constant[int](0), []int{4})
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1, 2, 4}, rho.Unknowns())
	assert.Equal(t, 0, rho.Value(0))
	assert.Equal(t, 2, rho.Value(1))
	assert.Equal(t, 2, rho.Value(2))
	assert.Equal(t, 2, rho.Value(4))
}

func TestPriorityWorkListInfinite_LocalSolve(t *testing.T) {
	sys := collatzLikeSystem()
	// A nil ordering defaults to the newest-first dynamic priority.
	rho, err := solver.PriorityWorkListInfinite(sys, assignment.Constant[int](0), []int{4}, nil)
	require.NoError(t, err)

	assert.ElementsMatch(t, []int{0, 1, 2, 4}, rho.Unknowns())
	assert.Equal(t, 0, rho.Value(0))
	assert.Equal(t, 2, rho.Value(1))
	assert.Equal(t, 2, rho.Value(2))
	assert.Equal(t, 2, rho.Value(4))
}

func TestInfinite_ImmediateStabilization(t *testing.T) {
	// body(rho)(x) = 1 stabilizes on the first evaluation; the wanted
	// unknown must still be reported as solved.
	body := func(assignment.Assignment[int, int]) func(int) int {
		return func(int) int { return 1 }
	}
	sys := eqs.New(domain.Ordered[int](), body)
	start := assignment.Constant[int](0)

	rho, err := solver.WorkListInfinite[int, int](sys, start, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, rho.Unknowns())
	assert.Equal(t, 1, rho.Value(0))

	rho, err = solver.PriorityWorkListInfinite[int, int](sys, start, []int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, rho.Unknowns())
	assert.Equal(t, 1, rho.Value(0))
}

func TestInfinite_SolutionIsLocalFixpoint(t *testing.T) {
	sys := collatzLikeSystem()
	rho, err := solver.WorkListInfinite(sys, assignment.Constant[int](0), []int{4})
	require.NoError(t, err)

	body := sys.Body()(rho)
	for _, u := range rho.Unknowns() {
		assert.Equal(t, rho.Value(u), body(u), "not a fixpoint at %d", u)
	}
}

func TestInfinite_Validation(t *testing.T) {
	sys := collatzLikeSystem()
	start := assignment.Constant[int](0)

	_, err := solver.WorkListInfinite[int, int](nil, start, []int{0})
	assert.ErrorIs(t, err, solver.ErrNilSystem)
	_, err = solver.WorkListInfinite(sys, nil, []int{0})
	assert.ErrorIs(t, err, solver.ErrNilAssignment)
	_, err = solver.WorkListInfinite(sys, start, nil)
	assert.ErrorIs(t, err, solver.ErrNoWanted)
	_, err = solver.PriorityWorkListInfinite(sys, start, []int{}, nil)
	assert.ErrorIs(t, err, solver.ErrNoWanted)
}
