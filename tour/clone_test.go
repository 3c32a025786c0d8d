package tour_test

import (
	"testing"

	"github.com/ShuhuaGao/two-level-tree/tour"
	"github.com/stretchr/testify/require"
)

func TestClone_DeepCopy(t *testing.T) {
	tr := tour.New(10, 1)
	order := []int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7}
	tr.SetRawTour(order)

	clone := tr.Clone()
	require.Equal(t, tr.GetRawTour(3, tour.Forward), clone.GetRawTour(3, tour.Forward))

	clone.Flip(3, 6, 10, 7)
	require.NotEqual(t, tr.GetRawTour(3, tour.Forward), clone.GetRawTour(3, tour.Forward))
	require.Equal(t, order, tr.GetRawTour(3, tour.Forward))
}

func TestReset_LoadsFreshTourAndClearsFlags(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})
	tr.Reverse(8, 1)

	tr.Reset([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, tr.GetRawTour(1, tour.Forward))
	head := tr.HeadParent()
	p := head
	for {
		require.False(t, tr.Reversed(p), "Reset must clear reverse flags")
		p = tr.NextParent(p)
		if p == head {
			break
		}
	}
}
