package tour

// Reverse reverses the forward path from a to b inclusive (a and b are
// cities). A no-op if a == b or if GetNext(b) == a (the path is already
// the whole tour save one arc, reversing it is a no-op on the cycle).
//
// Dispatch:
//   - if a and b lie in one segment with a forward-preceding b, delegates
//     to reverseSegment.
//   - otherwise performs up to two preparatory SplitAndMerge calls to align
//     a and b to segment boundaries (merging whichever half is smaller, by
//     the heuristic below), then — once the range spans whole segments —
//     toggles every involved parent's reverse bit and reverses their order
//     on the parent ring.
//
// Alignment heuristic for a: if a is already forward_begin of its segment,
// do nothing. Otherwise compare the forward half [a..forward_end] against
// the backward half; merge whichever is smaller into the corresponding
// neighbor (including a in the forward case, excluding a — so a becomes the
// new forward_begin — in the backward case). Symmetric for b toward
// forward_end of its segment, with one special case: if b's segment's next
// is a's segment (the reversal wraps almost the entire tour), the whole
// forward half of b is merged backward unconditionally.
//
// Complexity: O(√N) amortized.
func (t *Tree) Reverse(a, b int) {
	t.reverseNodes(t.NodeOf(a), t.NodeOf(b))
}

func (t *Tree) reverseNodes(a, b NodeRef) {
	if a == b || t.GetNext(b) == a {
		return
	}

	if t.isPathInSingleSegment(a, b) {
		t.reverseSegment(a, b)
		return
	}

	t.alignA(a)
	if t.isPathInSingleSegment(a, b) {
		t.reverseSegment(a, b)
		return
	}

	t.alignB(a, b)
	if t.isPathInSingleSegment(a, b) {
		t.reverseSegment(a, b)
		return
	}

	// Multi-segment reversal: a is forward_begin of its parent, b is
	// forward_end of its parent.
	pa, pb := t.ParentOf(a), t.ParentOf(b)
	assertf(t.ForwardBegin(pa) == a, "alignA postcondition violated")
	assertf(t.ForwardEnd(pb) == b, "alignB postcondition violated")

	s1 := t.PrevParent(pa)
	s2 := t.NextParent(pb)

	buf := t.scratchParents[:0]
	buf = append(buf, s2)
	p := pa
	for p != s2 {
		t.parents[p].reverse = !t.parents[p].reverse
		buf = append(buf, p)
		p = t.NextParent(p)
	}
	t.scratchParents = buf

	nParents := int32(t.NSegments())
	p = s1
	for len(buf) > 0 {
		q := buf[len(buf)-1]
		buf = buf[:len(buf)-1]
		t.parents[p].next = q
		t.parents[q].prev = p
		t.parents[q].id = (t.parents[p].id + 1) % nParents
		pLast := t.ForwardEnd(p)
		qFirst := t.ForwardBegin(q)
		t.connectArcForward(pLast, qFirst)
		p = q
	}
	t.scratchParents = buf
	assertf((t.parents[p].id+1)%nParents == t.parents[t.NextParent(p)].id, "parent ring id contiguity violated")
}

// alignA merges nodes into/out of a's segment, if needed, so that a becomes
// the forward_begin node of its (possibly new) segment.
func (t *Tree) alignA(a NodeRef) {
	pa := t.ParentOf(a)
	if a == t.ForwardBegin(pa) {
		return
	}
	aForwardEnd := t.ForwardEnd(pa)
	aForwardHalfLen := absSeq(t.nodes[aForwardEnd].seq, t.nodes[a].seq) + 1
	if int(aForwardHalfLen) <= t.Size(pa)/2 {
		t.splitAndMerge(a, true, Forward)
	} else {
		t.splitAndMerge(a, false, Backward)
	}
}

// alignB merges nodes into/out of b's segment, if needed, so that b becomes
// the forward_end node of its (possibly new) segment.
func (t *Tree) alignB(a, b NodeRef) {
	pb := t.ParentOf(b)
	if b == t.BackwardBegin(pb) {
		return
	}
	// Special case: the reversal wraps almost the entire tour.
	if t.NextParent(pb) == t.ParentOf(a) {
		t.splitAndMerge(b, true, Backward)
		return
	}
	bBackwardEnd := t.BackwardEnd(pb)
	bBackwardHalfLen := absSeq(t.nodes[bBackwardEnd].seq, t.nodes[b].seq) + 1
	if int(bBackwardHalfLen) <= t.Size(pb)/2 {
		t.splitAndMerge(b, true, Backward)
	} else {
		t.splitAndMerge(b, false, Forward)
	}
}

func absSeq(x, y int32) int32 {
	d := x - y
	if d < 0 {
		return -d
	}
	return d
}

// isPathInSingleSegment reports whether a and b share a parent and a
// forward-precedes b within it.
func (t *Tree) isPathInSingleSegment(a, b NodeRef) bool {
	pa := t.ParentOf(a)
	if pa != t.ParentOf(b) {
		return false
	}
	if t.Reversed(pa) {
		return t.nodes[a].seq > t.nodes[b].seq
	}
	return t.nodes[a].seq < t.nodes[b].seq
}

// reverseSegment reverses the forward path a..b known to lie in one segment.
func (t *Tree) reverseSegment(a, b NodeRef) {
	parent := t.ParentOf(a)
	assertf(parent == t.ParentOf(b), "reverseSegment requires a shared parent")
	pp := &t.parents[parent]

	if (a == pp.segBegin && b == pp.segEnd) || (b == pp.segBegin && a == pp.segEnd) {
		t.reverseCompleteSegment(a, b)
		return
	}

	pathLen := absSeq(t.nodes[a].seq, t.nodes[b].seq) + 1
	if int(pathLen) <= t.segLen*3/4 {
		t.reversePartialSegment(a, b)
		return
	}

	// Split at a and b outward (excluding both) so the remaining segment
	// is exactly [a..b], then reverse it whole.
	t.splitAndMerge(a, false, Backward)
	t.splitAndMerge(b, false, Forward)
	t.reverseCompleteSegment(a, b)
}

// reverseCompleteSegment flips parent.reverse and patches exactly the four
// boundary links connecting the segment to its ring neighbors. No seq
// numbers change.
func (t *Tree) reverseCompleteSegment(a, b NodeRef) {
	parent := t.ParentOf(a)
	assertf(parent == t.ParentOf(b), "reverseCompleteSegment requires a shared parent")
	pp := &t.parents[parent]
	if pp.reverse {
		assertf(a == pp.segEnd && b == pp.segBegin, "reverseCompleteSegment: a,b must be the segment's endpoints")
	} else {
		assertf(a == pp.segBegin && b == pp.segEnd, "reverseCompleteSegment: a,b must be the segment's endpoints")
	}

	prevA := t.ForwardEnd(t.PrevParent(parent))
	nextB := t.ForwardBegin(t.NextParent(parent))

	pp.reverse = !pp.reverse

	if t.Reversed(t.ParentOf(prevA)) {
		t.nodes[prevA].prev = b
	} else {
		t.nodes[prevA].next = b
	}
	if pp.reverse {
		t.nodes[a].prev = nextB
	} else {
		t.nodes[a].next = nextB
	}
	if t.Reversed(t.ParentOf(nextB)) {
		t.nodes[nextB].next = a
	} else {
		t.nodes[nextB].prev = a
	}
	if pp.reverse {
		t.nodes[b].next = prevA
	} else {
		t.nodes[b].prev = prevA
	}
}

// reversePartialSegment physically reorders the short run a..b within one
// segment and relabels seq numbers so the raw-next chain stays contiguous.
func (t *Tree) reversePartialSegment(a, b NodeRef) {
	parent := t.ParentOf(a)
	assertf(parent == t.ParentOf(b), "reversePartialSegment requires a shared parent")
	pp := &t.parents[parent]

	prevA := t.GetPrev(a)
	nextB := t.GetNext(b)
	partialLen := absSeq(t.nodes[a].seq, t.nodes[b].seq) + 1

	buf := t.scratchNodes[:0]
	buf = append(buf, nextB, a)
	p := t.GetNext(a)
	for p != b {
		buf = append(buf, p)
		p = t.GetNext(p)
	}
	buf = append(buf, b)
	t.scratchNodes = buf

	p = prevA
	for len(buf) > 0 {
		q := buf[len(buf)-1]
		buf = buf[:len(buf)-1]
		t.connectArcForward(p, q)
		p = q
	}
	t.scratchNodes = buf

	if a == pp.segBegin {
		pp.segBegin = b
	} else if a == pp.segEnd {
		pp.segEnd = b
	} else if b == pp.segBegin {
		pp.segBegin = a
	} else if b == pp.segEnd {
		pp.segEnd = a
	}

	if pp.reverse {
		var aID int32
		if a == pp.segBegin {
			aID = t.nodes[t.nodes[b].next].seq - partialLen
		} else {
			aID = t.nodes[t.nodes[a].prev].seq + 1
		}
		t.relabelID(a, b, aID)
	} else {
		var bID int32
		if b == pp.segBegin {
			bID = t.nodes[t.nodes[a].next].seq - partialLen
		} else {
			bID = t.nodes[t.nodes[b].prev].seq + 1
		}
		t.relabelID(b, a, bID)
	}
}

// relabelID walks the raw-next chain from a to b (inclusive), assigning a's
// seq to aID and each subsequent node's seq to its predecessor's + 1.
func (t *Tree) relabelID(a, b NodeRef, aID int32) {
	assertf(t.ParentOf(a) == t.ParentOf(b), "relabelID requires a shared parent")
	t.nodes[a].seq = aID
	for a != b {
		next := t.nodes[a].next
		t.nodes[next].seq = t.nodes[a].seq + 1
		a = next
	}
}
