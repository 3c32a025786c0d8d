package tour_test

import (
	"testing"

	"github.com/ShuhuaGao/two-level-tree/tour"
	"github.com/stretchr/testify/require"
)

func TestIsBetween_Preconditions(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})

	require.Panics(t, func() { tr.IsBetween(3, 3, 8) })
	require.Panics(t, func() { tr.IsBetween(3, 8, 3) })
}

// TestIsBetween_TwoShareParent exercises the "exactly two of a,b,c share a
// segment" dispatch branch, in its pa == pb and pb == pc sub-cases.
func TestIsBetween_TwoShareParent(t *testing.T) {
	tr := tour.New(23, 1)
	order := []int{11, 13, 6, 8, 4, 1, 2, 5, 9, 10, 7, 12, 14, 3, 15, 16, 17, 18, 20, 19, 23, 22, 21}
	tr.SetRawTour(order)

	// 11 and 13 share the first segment; 15 is the far point, in a
	// different segment.
	require.Equal(t, tr.ParentOfCity(11), tr.ParentOfCity(13))
	require.NotEqual(t, tr.ParentOfCity(11), tr.ParentOfCity(15))

	// pa == pb case: is_between(11, 13, 15) should equal
	// can_reach_in_current_segment(11, 13) since 11 forward-precedes 13.
	require.True(t, tr.IsBetween(11, 13, 15))

	// pb == pc case, using two cities from the last (7-city) segment: 19
	// forward-precedes 23 within that segment.
	require.True(t, tr.ParentOfCity(19) == tr.ParentOfCity(23))
	require.True(t, tr.IsBetween(11, 19, 23))
	require.False(t, tr.IsBetween(11, 23, 19))
}
