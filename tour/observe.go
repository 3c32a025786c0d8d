package tour

// WriteRawTour writes the length-N forward (or backward) tour starting at
// startCity into dst, growing or reslicing it as needed, and returns the
// resulting slice. It follows GetNext (dir==Forward) or GetPrev
// (dir==Backward) N times.
//
// This single sink-based primitive replaces what the source implementation
// split into two near-duplicate routines (one that allocates and returns,
// one that fills a caller-provided vector); GetRawTour below is a thin
// convenience wrapper over it.
//
// Complexity: O(N).
func (t *Tree) WriteRawTour(dst []int, startCity int, dir Direction) []int {
	t.checkCity(startCity)
	if cap(dst) < t.nCities {
		dst = make([]int, t.nCities)
	} else {
		dst = dst[:t.nCities]
	}
	n := t.NodeOf(startCity)
	for i := 0; i < t.nCities; i++ {
		dst[i] = t.City(n)
		if dir == Forward {
			n = t.GetNext(n)
		} else {
			n = t.GetPrev(n)
		}
	}
	return dst
}

// GetRawTour returns a freshly allocated length-N tour starting at
// startCity. If startCity < 0, the tour starts at the origin city.
//
// Complexity: O(N).
func (t *Tree) GetRawTour(startCity int, dir Direction) []int {
	if startCity < 0 {
		startCity = t.origin
	}
	return t.WriteRawTour(nil, startCity, dir)
}

// ActualSegmentSizes returns the size of each segment in parent-ring order.
// If startCity is a valid city, the ring is walked starting from that
// city's segment; otherwise it starts from the head parent.
//
// Complexity: O(P).
func (t *Tree) ActualSegmentSizes(startCity int) []int {
	start := t.HeadParent()
	if t.isCityValid(startCity) {
		start = t.ParentOfCity(startCity)
	}
	out := make([]int, 0, t.NSegments())
	p := start
	for {
		out = append(out, t.Size(p))
		p = t.NextParent(p)
		if p == start {
			break
		}
	}
	return out
}

// HasEdge reports whether cities x and y are tour-adjacent, in either
// direction.
func (t *Tree) HasEdge(x, y int) bool {
	a := t.NodeOf(x)
	if t.City(t.GetNext(a)) == y {
		return true
	}
	return t.City(t.GetPrev(a)) == y
}

// TurnForward reports whether the node-level edge {a,b} is adjacent, and
// returns the pair ordered so that GetNext(first) == second. Panics if
// {a,b} is not a current tour edge.
func (t *Tree) TurnForward(city1, city2 int) (int, int) {
	assertf(t.GetNextCity(city1) == city2 || t.GetPrevCity(city1) == city2,
		"TurnForward requires an existing tour edge between %d and %d", city1, city2)
	if t.GetNextCity(city1) == city2 {
		return city1, city2
	}
	return city2, city1
}
