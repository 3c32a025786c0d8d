package tour

// HeadParent returns a parent that can be used to start a ring traversal.
// Its prev is TailParent.
func (t *Tree) HeadParent() ParentRef { return 0 }

// TailParent returns the parent whose next is HeadParent.
func (t *Tree) TailParent() ParentRef { return ParentRef(len(t.parents) - 1) }

// NodeOf returns the NodeRef bound to city. Panics if city is out of range.
//
// Complexity: O(1).
func (t *Tree) NodeOf(city int) NodeRef {
	t.checkCity(city)
	return t.nodeOfCity(city)
}

// City returns the city label bound to n.
func (t *Tree) City(n NodeRef) int { return t.nodes[n].city }

// ParentOf returns the parent (segment) owning n.
func (t *Tree) ParentOf(n NodeRef) ParentRef { return t.nodes[n].parent }

// ParentOfCity is a convenience combining NodeOf and ParentOf.
func (t *Tree) ParentOfCity(city int) ParentRef { return t.ParentOf(t.NodeOf(city)) }

// Size returns the number of segment nodes owned by p.
func (t *Tree) Size(p ParentRef) int { return int(t.parents[p].size) }

// Reversed reports whether p's lazy reverse flag is set.
func (t *Tree) Reversed(p ParentRef) bool { return t.parents[p].reverse }

// ParentID returns p's sequence number among parents (0..NSegments()-1 in
// ring order).
func (t *Tree) ParentID(p ParentRef) int { return int(t.parents[p].id) }

// NextParent and PrevParent walk the parent ring (always in ring order,
// independent of any segment's reverse flag -- the parent ring itself has
// no "direction" flag, only the forward tour direction within a segment
// does).
func (t *Tree) NextParent(p ParentRef) ParentRef { return t.parents[p].next }
func (t *Tree) PrevParent(p ParentRef) ParentRef { return t.parents[p].prev }

// ForwardBegin returns the first node of p in forward-tour order.
func (t *Tree) ForwardBegin(p ParentRef) NodeRef {
	pp := &t.parents[p]
	if pp.reverse {
		return pp.segEnd
	}
	return pp.segBegin
}

// ForwardEnd returns the last node of p in forward-tour order.
func (t *Tree) ForwardEnd(p ParentRef) NodeRef {
	pp := &t.parents[p]
	if pp.reverse {
		return pp.segBegin
	}
	return pp.segEnd
}

// BackwardBegin returns the first node of p in backward-tour order
// (i.e., ForwardEnd).
func (t *Tree) BackwardBegin(p ParentRef) NodeRef {
	pp := &t.parents[p]
	if pp.reverse {
		return pp.segBegin
	}
	return pp.segEnd
}

// BackwardEnd returns the last node of p in backward-tour order
// (i.e., ForwardBegin).
func (t *Tree) BackwardEnd(p ParentRef) NodeRef {
	pp := &t.parents[p]
	if pp.reverse {
		return pp.segEnd
	}
	return pp.segBegin
}

// GetNext returns the successor of n in the forward tour. O(1).
func (t *Tree) GetNext(n NodeRef) NodeRef {
	nd := &t.nodes[n]
	if t.parents[nd.parent].reverse {
		return nd.prev
	}
	return nd.next
}

// GetPrev returns the predecessor of n in the forward tour. O(1).
func (t *Tree) GetPrev(n NodeRef) NodeRef {
	nd := &t.nodes[n]
	if t.parents[nd.parent].reverse {
		return nd.next
	}
	return nd.prev
}

// GetNextCity returns the city following city in the forward tour.
func (t *Tree) GetNextCity(city int) int { return t.City(t.GetNext(t.NodeOf(city))) }

// GetPrevCity returns the city preceding city in the forward tour.
func (t *Tree) GetPrevCity(city int) int { return t.City(t.GetPrev(t.NodeOf(city))) }
