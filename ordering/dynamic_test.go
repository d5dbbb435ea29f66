package ordering_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jandom-devel/fixpoint/ordering"
)

func TestDynamicPriority_NewestFirst(t *testing.T) {
	d := ordering.NewDynamicPriority[string]()
	d.Touch("a")
	d.Touch("b")
	d.Touch("c")

	assert.Positive(t, d.Compare("a", "b"), "older unknowns compare greater")
	assert.Positive(t, d.Compare("b", "c"))
	assert.Negative(t, d.Compare("c", "a"))
	assert.Zero(t, d.Compare("b", "b"))
}

func TestDynamicPriority_TouchIsIdempotent(t *testing.T) {
	d := ordering.NewDynamicPriority[int]()
	d.Touch(1)
	d.Touch(1)
	d.Touch(2)

	assert.Positive(t, d.Compare(1, 2), "re-touching must not reassign the priority")
}

func TestDynamicPriority_CompareTouches(t *testing.T) {
	d := ordering.NewDynamicPriority[int]()

	// The first comparison assigns both priorities, first argument first.
	assert.Positive(t, d.Compare(10, 20))
	// Later sightings stay consistent with that assignment.
	assert.Negative(t, d.Compare(20, 10))
	assert.Negative(t, d.Compare(30, 10))
}
