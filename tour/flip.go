package tour

// Flip removes tour edges (a,b) and (c,d) and inserts (a,c) and (b,d). It
// requires that (a,b) and (c,d) are both currently forward arcs of the
// tour, or both backward arcs (panics if their directions disagree or if
// a==c and b==d). A no-op if b==c or d==a (the flip would not change the
// tour).
//
// Realized by reversing exactly one of the two sub-paths (b..c) or (d..a),
// whichever is approximately shorter per countNSegments (fewer segments
// wins; ties broken by the combined "excluded" length within the two
// boundary segments). The direction of the internal Reverse call matches
// the input arcs' direction.
//
// Complexity: O(√N) amortized.
func (t *Tree) Flip(a, b, c, d int) {
	t.flipNodes(t.NodeOf(a), t.NodeOf(b), t.NodeOf(c), t.NodeOf(d))
}

func (t *Tree) flipNodes(a, b, c, d NodeRef) {
	isForward := t.GetNext(a) == b
	assertf((t.GetNext(c) == d) == isForward, "Flip requires (a,b) and (c,d) to share arc direction")
	assertf(!(a == c && b == d), "Flip requires (a,b) != (c,d)")

	if b == c || d == a {
		return
	}

	if isForward {
		if t.isApproximatelyShorter(b, c, d, a) {
			t.reverseNodes(b, c)
		} else {
			t.reverseNodes(d, a)
		}
		return
	}
	// Backward arcs: the two sub-paths run forward as c..b and a..d.
	if t.isApproximatelyShorter(c, b, a, d) {
		t.reverseNodes(c, b)
	} else {
		t.reverseNodes(a, d)
	}
}

// countNSegments counts how many segments are touched by the forward path
// a --> b (incomplete boundary segments count too).
func (t *Tree) countNSegments(a, b NodeRef) int {
	n := t.NSegments()
	pa, pb := t.ParentOf(a), t.ParentOf(b)
	apID, bpID := t.ParentID(pa), t.ParentID(pb)
	if apID == bpID {
		if (!t.Reversed(pa) && t.nodes[a].seq < t.nodes[b].seq) ||
			(t.Reversed(pa) && t.nodes[a].seq > t.nodes[b].seq) {
			return 1
		}
		return n
	}
	if bpID > apID {
		return bpID - apID + 1
	}
	return bpID + n - apID + 1
}

// isApproximatelyShorter reports whether the forward path a-->b is
// approximately shorter than c-->d: fewer segments wins outright; ties go to
// the path that excludes more of its two boundary segments.
func (t *Tree) isApproximatelyShorter(a, b, c, d NodeRef) bool {
	nAB := t.countNSegments(a, b)
	nCD := t.countNSegments(c, d)
	if nAB != nCD {
		return nAB < nCD
	}
	exclA := absSeq(t.nodes[a].seq, t.nodes[t.ForwardBegin(t.ParentOf(a))].seq)
	exclB := absSeq(t.nodes[b].seq, t.nodes[t.ForwardEnd(t.ParentOf(b))].seq)
	exclC := absSeq(t.nodes[c].seq, t.nodes[t.ForwardBegin(t.ParentOf(c))].seq)
	exclD := absSeq(t.nodes[d].seq, t.nodes[t.ForwardEnd(t.ParentOf(d))].seq)
	return exclA+exclB > exclC+exclD
}
