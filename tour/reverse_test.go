package tour_test

import (
	"testing"

	"github.com/ShuhuaGao/two-level-tree/tour"
	"github.com/stretchr/testify/require"
)

func TestReverse_NoOpSameCity(t *testing.T) {
	tr := tour.New(10, 1)
	order := []int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7}
	tr.SetRawTour(order)
	tr.Reverse(5, 5)
	require.Equal(t, order, tr.GetRawTour(order[0], tour.Forward))
}

func TestReverse_NoOpWholeCycleLessOneArc(t *testing.T) {
	tr := tour.New(10, 1)
	order := []int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7}
	tr.SetRawTour(order)
	// GetNext(b) == a: reversing [a..b] would be the entire cycle.
	a := order[0]
	b := order[len(order)-1]
	tr.Reverse(a, b)
	require.Equal(t, order, tr.GetRawTour(order[0], tour.Forward))
}

func TestReverse_CompleteSegment(t *testing.T) {
	tr := tour.New(10, 1)
	order := []int{3, 6, 8, 4, 1, 2, 5, 9, 10, 7}
	tr.SetRawTour(order)

	// seg0 is [3,6]; reversing its two endpoints flips the whole segment
	// without relabeling any seq number.
	p := tr.ParentOfCity(3)
	tr.Reverse(3, 6)
	require.True(t, tr.Reversed(p))
	require.Equal(t, []int{6, 3, 8, 4, 1, 2, 5, 9, 10, 7}, tr.GetRawTour(6, tour.Forward))
}

func TestReverse_Idempotent(t *testing.T) {
	tr := tour.New(23, 1)
	order := []int{11, 13, 6, 8, 4, 1, 2, 5, 9, 10, 7, 12, 14, 3, 15, 16, 17, 18, 20, 19, 23, 22, 21}
	tr.SetRawTour(order)

	tr.Reverse(18, 23)
	tr.Reverse(23, 18)
	require.Equal(t, order, tr.GetRawTour(order[0], tour.Forward))
}
