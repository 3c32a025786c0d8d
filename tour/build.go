package tour

// New allocates a two-level tree for nCities cities labeled
// origin, origin+1, ..., origin+nCities-1. The tour order itself is not
// yet defined; call SetRawTour before using any query or mutation.
//
// Node and parent pools are allocated once here and never resized: the
// node pool has nCities+origin slots (slots [0,origin) are unused padding
// so that city labels index directly into it), and the parent pool has
// floor(sqrt(nCities))+1 slots. Mutations only rewire links and toggle
// flags; they never allocate node or parent objects.
//
// Panics if nCities <= 0, origin < 0, or the resulting segment count is
// less than 2 (this structure requires at least two segments; see
// Non-goals).
//
// Complexity: O(nCities).
func New(nCities, origin int) *Tree {
	assertf(nCities > 0, "nCities must be positive, got %d", nCities)
	assertf(origin >= 0, "origin must be non-negative, got %d", origin)

	p := isqrt(nCities) + 1
	assertf(p > 1, "nCities=%d yields only %d segment(s); at least 2 are required", nCities, p)

	t := &Tree{
		nCities: nCities,
		origin:  origin,
		segLen:  nCities / p,
		nodes:   make([]node, nCities+origin),
		parents: make([]parentNode, p),
	}
	return t
}

// isqrt returns floor(sqrt(n)) for n > 0 using integer-only arithmetic so
// results are exactly reproducible across platforms (no float rounding
// surprises near perfect squares).
func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	x := n
	y := (x + 1) / 2
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// SetRawTour (re)initializes the tree to represent order as the forward
// tour. order must be a permutation of [origin, origin+nCities). It
// partitions order into NSegments() contiguous runs of length
// floor(nCities/P) (the last segment absorbs the remainder), clears every
// reverse flag, and rebuilds both rings from scratch.
//
// This is the only operation that may be called on a Tree whose rings are
// not yet initialized (i.e., right after New), and it may also be called
// again later to reset an already-mutated tree to a fresh layout.
//
// Complexity: O(nCities).
func (t *Tree) SetRawTour(order []int) {
	assertf(len(order) == t.nCities, "order has length %d, want %d", len(order), t.nCities)

	n := t.NSegments()
	segLen := t.nCities / n
	firstCity := order[0]
	lastCity := order[len(order)-1]

	for seg := 0; seg < n; seg++ {
		par := ParentRef(seg)
		p := &t.parents[par]
		p.id = int32(seg)
		if seg > 0 {
			p.prev = ParentRef(seg - 1)
		} else {
			p.prev = t.TailParent()
		}
		if seg+1 < n {
			p.next = ParentRef(seg + 1)
		} else {
			p.next = t.HeadParent()
		}
		p.reverse = false

		iBegin := seg * segLen
		iEnd := iBegin + segLen
		if seg == n-1 {
			iEnd = t.nCities
		}
		p.segBegin = t.nodeOfCity(order[iBegin])
		p.segEnd = t.nodeOfCity(order[iEnd-1])
		p.size = int32(iEnd - iBegin)

		for i := iBegin; i < iEnd; i++ {
			city := order[i]
			t.checkCity(city)
			nd := &t.nodes[t.nodeOfCity(city)]
			nd.city = city
			nd.parent = par
			nd.seq = int32(i - iBegin)
			if i == 0 {
				nd.prev = t.nodeOfCity(lastCity)
			} else {
				nd.prev = t.nodeOfCity(order[i-1])
			}
			if i+1 == t.nCities {
				nd.next = t.nodeOfCity(firstCity)
			} else {
				nd.next = t.nodeOfCity(order[i+1])
			}
		}
	}
}

func (t *Tree) nodeOfCity(city int) NodeRef {
	return NodeRef(city)
}
