package tour

// SplitAndMerge moves a contiguous run of nodes from s's segment into the
// adjacent segment in direction dir: if direction is Forward, it gathers s
// (when includeSelf) followed by GetNext(s), GetNext(GetNext(s)), ... for as
// long as those nodes remain in s's segment, and merges that run into
// parent.next, preserving forward-tour order. Backward is symmetric toward
// parent.prev.
//
// The donor segment's new boundary node is reconnected to the moved run via
// connectArcForward; the moved nodes' seq numbers are reissued contiguously
// relative to the receiving neighbor's existing endpoint. Neither parent may
// be left empty; the call is a no-op if no node would move (e.g. s is
// already on the segment boundary in the given direction). The parent ring
// itself is never modified — segment count is fixed for the Tree's lifetime.
//
// Complexity: O(k) where k is the number of nodes moved (amortized O(√N)
// across a sequence of calls driven by Reverse/Flip/DoubleBridgeMove).
func (t *Tree) SplitAndMerge(s int, includeSelf bool, dir Direction) {
	t.splitAndMerge(t.NodeOf(s), includeSelf, dir)
}

func (t *Tree) splitAndMerge(s NodeRef, includeSelf bool, dir Direction) {
	parent := t.ParentOf(s)
	var neighbor ParentRef
	if dir == Forward {
		neighbor = t.NextParent(parent)
	} else {
		neighbor = t.PrevParent(parent)
	}

	buf := t.scratchNodes[:0]
	if includeSelf {
		buf = append(buf, s)
	}

	var boundary NodeRef
	if dir == Forward {
		p := t.GetNext(s)
		for t.ParentOf(p) == parent {
			buf = append(buf, p)
			p = t.GetNext(p)
		}
		if includeSelf {
			boundary = t.GetPrev(s)
		} else {
			boundary = s
		}
	} else {
		p := t.GetPrev(s)
		for t.ParentOf(p) == parent {
			buf = append(buf, p)
			p = t.GetPrev(p)
		}
		if includeSelf {
			boundary = t.GetNext(s)
		} else {
			boundary = s
		}
	}
	t.scratchNodes = buf

	if len(buf) == 0 {
		return
	}

	pp := &t.parents[parent]
	np := &t.parents[neighbor]
	np.size += int32(len(buf))
	pp.size -= int32(len(buf))
	assertf(pp.size > 0, "SplitAndMerge would empty segment %d", parent)

	if dir == Forward {
		var q NodeRef
		var deltaID int32
		if np.reverse {
			q = np.segEnd
			deltaID = 1
		} else {
			q = np.segBegin
			deltaID = -1
		}
		for i := len(buf) - 1; i >= 0; i-- {
			p := buf[i]
			t.nodes[p].parent = neighbor
			t.connectArcForward(p, q)
			t.nodes[p].seq = t.nodes[q].seq + deltaID
			q = p
		}
		if np.reverse {
			np.segEnd = q
		} else {
			np.segBegin = q
		}

		t.connectArcForward(boundary, q)
		if pp.reverse {
			pp.segBegin = boundary
		} else {
			pp.segEnd = boundary
		}
	} else {
		var q NodeRef
		var deltaID int32
		if np.reverse {
			q = np.segBegin
			deltaID = -1
		} else {
			q = np.segEnd
			deltaID = 1
		}
		for i := len(buf) - 1; i >= 0; i-- {
			p := buf[i]
			t.nodes[p].parent = neighbor
			t.connectArcForward(q, p)
			t.nodes[p].seq = t.nodes[q].seq + deltaID
			q = p
		}
		if np.reverse {
			np.segBegin = q
		} else {
			np.segEnd = q
		}

		t.connectArcForward(q, boundary)
		if pp.reverse {
			pp.segEnd = boundary
		} else {
			pp.segBegin = boundary
		}
	}
}
