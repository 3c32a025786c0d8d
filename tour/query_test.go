package tour_test

import (
	"testing"

	"github.com/ShuhuaGao/two-level-tree/tour"
	"github.com/stretchr/testify/require"
)

func TestForwardBackwardBeginEnd_Unreversed(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})

	p := tr.ParentOfCity(3)
	require.False(t, tr.Reversed(p))
	require.Equal(t, tr.ForwardBegin(p), tr.BackwardEnd(p))
	require.Equal(t, tr.ForwardEnd(p), tr.BackwardBegin(p))
}

func TestParentRingWraps(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})

	head := tr.HeadParent()
	tail := tr.TailParent()
	require.Equal(t, head, tr.NextParent(tail))
	require.Equal(t, tail, tr.PrevParent(head))
}

func TestNodeOfAndCity_RoundTrip(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})

	for city := 1; city <= 10; city++ {
		require.Equal(t, city, tr.City(tr.NodeOf(city)))
	}
	require.Panics(t, func() { tr.NodeOf(0) })
	require.Panics(t, func() { tr.NodeOf(11) })
}

func TestTurnForward(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})

	first, second := tr.TurnForward(3, 7)
	require.Equal(t, 7, first)
	require.Equal(t, 3, second)

	require.Panics(t, func() { tr.TurnForward(3, 5) })
}
