package tour

// DoubleBridgeMove performs the non-sequential 4-opt double-bridge kick.
// a, b, c, d must appear in this order on the forward tour (each pair
// separated by at least one other city), and no two of them may share a
// segment (panics otherwise). Letting an, bn, cn, dn be GetNext(a),
// GetNext(b), GetNext(c), GetNext(d): removes arcs (a,an), (b,bn), (c,cn),
// (d,dn) and inserts (a,cn), (d,bn), (c,an), (b,dn).
//
// Algorithm: for each of a, b, c, d, if it currently shares a segment with
// its successor, SplitAndMerge(p, false, Forward) so p becomes a segment's
// forward-end and its successor becomes the next segment's forward-begin.
// Reconnect the four boundary arcs and splice the parent ring to match,
// then walk the ring from the head and reissue parent ids 0..P-1.
// Individual segments are otherwise untouched, so no node seq needs
// relabeling.
//
// Complexity: O(√N) amortized.
func (t *Tree) DoubleBridgeMove(a, b, c, d int) {
	t.doubleBridgeMoveNodes(t.NodeOf(a), t.NodeOf(b), t.NodeOf(c), t.NodeOf(d))
}

func (t *Tree) doubleBridgeMoveNodes(a, b, c, d NodeRef) {
	assertf(t.isBetweenNodes(a, b, c), "DoubleBridgeMove requires a,b,c,d in forward tour order")
	assertf(t.isBetweenNodes(b, c, d), "DoubleBridgeMove requires a,b,c,d in forward tour order")
	assertf(t.isBetweenNodes(c, d, a), "DoubleBridgeMove requires a,b,c,d in forward tour order")
	assertf(t.isBetweenNodes(d, a, b), "DoubleBridgeMove requires a,b,c,d in forward tour order")
	pa, pb, pc, pd := t.ParentOf(a), t.ParentOf(b), t.ParentOf(c), t.ParentOf(d)
	assertf(pa != pb && pa != pc && pa != pd && pb != pc && pb != pd && pc != pd,
		"DoubleBridgeMove requires a,b,c,d in four distinct segments")

	an, bn, cn, dn := t.GetNext(a), t.GetNext(b), t.GetNext(c), t.GetNext(d)

	for _, p := range [4]NodeRef{a, b, c, d} {
		if t.ParentOf(p) == t.ParentOf(t.GetNext(p)) {
			t.splitAndMerge(p, false, Forward)
		}
	}

	connectForward := func(p, q NodeRef) {
		t.connectArcForward(p, q)
		pp, qp := t.ParentOf(p), t.ParentOf(q)
		t.parents[pp].next = qp
		t.parents[qp].prev = pp
	}
	connectForward(a, cn)
	connectForward(d, bn)
	connectForward(c, an)
	connectForward(b, dn)

	head := t.HeadParent()
	p := head
	var id int32
	for {
		t.parents[p].id = id
		id++
		p = t.NextParent(p)
		if p == head {
			break
		}
	}
}
