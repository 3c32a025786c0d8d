// Package tour implements the two-level tree tour representation used by
// Lin–Kernighan-style TSP solvers: a Hamiltonian cycle over N labeled
// cities partitioned into roughly √N ordered segments, each carrying a
// lazy reverse flag, giving O(√N) amortized cost for Next, Prev, Between,
// and Flip.
//
// Design:
//   - Arena + index encoding. Nodes and parents live in flat slices
//     ([]node, []parentNode) inside Tree, addressed by NodeRef/ParentRef
//     (plain int32 indices) rather than pointers. City-to-node mapping is
//     direct array indexing (city, since the node pool is sized
//     nCities+origin with slots [0,origin) unused padding). This avoids
//     the aliasing hazards a raw intrusive pointer graph of individually
//     heap-allocated nodes would carry, and makes Clone a flat slice copy.
//   - Raw link writes made by the mutations funnel through
//     connectArcForward (linking.go), with two exceptions: SetRawTour
//     writes the initial links directly, and reverseCompleteSegment writes
//     its four boundary links directly, choosing .prev/.next by the same
//     reverse-flag rule.
//   - Reverse and SplitAndMerge reuse two scratch slices on Tree itself
//     (scratchNodes, scratchParents), truncated — never freed — at each
//     call. They are not re-entrant: this package is single-threaded and
//     non-suspending by design (no operation may run concurrently with
//     another on the same Tree).
//
// Complexity: construction O(N); SetRawTour O(N); Next/Prev/Between/HasEdge
// O(1); Reverse/Flip/SplitAndMerge/DoubleBridgeMove O(√N) amortized;
// GetRawTour/ActualSegmentSizes O(N)/O(√N).
package tour

// Direction distinguishes the two traversal/merge orientations used by
// SplitAndMerge and the raw-tour sinks.
type Direction int

const (
	// Forward follows GetNext.
	Forward Direction = iota
	// Backward follows GetPrev.
	Backward
)

// String renders the direction for diagnostics.
func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// NodeRef is a stable reference to a segment node (one per city), valid for
// the lifetime of the Tree that produced it. Its value equals the city
// label, so the zero value refers to a real node only when the origin is 0.
type NodeRef int32

// ParentRef is a stable reference to a parent node (one per segment).
type ParentRef int32

// node is one arena slot per city. It is never exposed by value; callers
// only ever hold a NodeRef and query it through Tree's accessor methods.
type node struct {
	city   int       // the city label bound to this node
	seq    int32     // sequence number within the segment, reissued when nodes move or are reordered
	prev   NodeRef   // raw predecessor link
	next   NodeRef   // raw successor link
	parent ParentRef // owning segment
}

// parentNode is one arena slot per segment.
type parentNode struct {
	id       int32   // sequence number among parents, 0..P-1 in ring order
	reverse  bool    // lazy flag: segment's logical order mirrors its raw links
	size     int32   // number of segment nodes owned by this parent
	prev     ParentRef
	next     ParentRef
	segBegin NodeRef // node with the minimum seq in this segment
	segEnd   NodeRef // node with the maximum seq in this segment
}

// Tree is the two-level tree tour representation. The zero value is not
// usable; construct one with New.
type Tree struct {
	nCities int
	origin  int
	segLen  int // nominal segment length L = floor(nCities/P), fixed at construction

	nodes   []node
	parents []parentNode

	// scratch buffers reused by Reverse and SplitAndMerge. Not re-entrant.
	scratchNodes   []NodeRef
	scratchParents []ParentRef
}

// NCities returns N, the number of cities in the tour.
func (t *Tree) NCities() int { return t.nCities }

// OriginCity returns the origin city label.
func (t *Tree) OriginCity() int { return t.origin }

// NSegments returns P, the current number of segments (fixed after
// construction; mutations never allocate or free parents).
func (t *Tree) NSegments() int { return len(t.parents) }

func (t *Tree) isCityValid(city int) bool {
	return city >= t.origin && city < t.origin+t.nCities
}

func (t *Tree) checkCity(city int) {
	assertf(t.isCityValid(city), "invalid city %d (want [%d,%d))", city, t.origin, t.origin+t.nCities)
}
