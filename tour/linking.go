package tour

// connectArcForward establishes a forward-tour arc p -> q: it writes
// exactly one raw link out of p and exactly one raw link into q, choosing
// .next vs .prev on each side according to the owning parent's reverse
// flag. SplitAndMerge, reversePartialSegment, Reverse and DoubleBridgeMove
// wire nodes into forward-adjacency through here. reverseCompleteSegment
// does not: it writes its four boundary links directly, applying the same
// "forward next writes .next unless the owning parent is reversed" rule
// inline, and SetRawTour writes the initial links directly.
//
// Complexity: O(1).
func (t *Tree) connectArcForward(p, q NodeRef) {
	pn := &t.nodes[p]
	qn := &t.nodes[q]
	if t.parents[pn.parent].reverse {
		pn.prev = q
	} else {
		pn.next = q
	}
	if t.parents[qn.parent].reverse {
		qn.next = p
	} else {
		qn.prev = p
	}
}
