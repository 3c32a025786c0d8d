package tour_test

import (
	"testing"

	"github.com/ShuhuaGao/two-level-tree/tour"
	"github.com/stretchr/testify/require"
)

func TestWriteRawTour_ReusesCapacity(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})

	dst := make([]int, 0, 64)
	dst = tr.WriteRawTour(dst, 3, tour.Forward)
	require.Equal(t, []int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7}, dst)

	backward := tr.WriteRawTour(nil, 3, tour.Backward)
	require.Equal(t, []int{3, 7, 10, 9, 5, 2, 1, 4, 8, 6}, backward)
}

func TestGetRawTour_DefaultsToOrigin(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})
	require.Equal(t, tr.GetRawTour(1, tour.Forward), tr.GetRawTour(-1, tour.Forward))
}

func TestHasEdge(t *testing.T) {
	tr := tour.New(10, 1)
	tr.SetRawTour([]int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7})

	require.True(t, tr.HasEdge(3, 6))
	require.True(t, tr.HasEdge(6, 3))
	require.False(t, tr.HasEdge(3, 8))
}
