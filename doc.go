// Package twolevel is the umbrella doc for a two-level tree tour
// representation for the symmetric Traveling Salesman Problem.
//
// 🚀 What is two-level-tree?
//
//	A focused, zero-dependency-at-runtime library implementing the
//	Fredman–Johnson–McGeoch–Ostheimer two-level list: a Hamiltonian
//	cycle over N cities split into ⌊√N⌋+1 ordered segments, each
//	carrying a lazy reverse bit, giving O(√N) amortized cost for:
//		• Next / Prev      — successor/predecessor on the tour
//		• Between          — forward-order queries among three cities
//		• Reverse          — reverse an arbitrary sub-path
//		• Flip             — swap two tour edges (2-opt primitive)
//		• DoubleBridgeMove — the non-sequential 4-opt kick
//
// ✨ Why this shape?
//
//   - Arena + index encoding — nodes and parents live in flat slices,
//     addressed by int32 indices instead of pointers, so a Clone is a
//     plain slice copy and there is nothing to relink.
//   - Single-threaded, non-suspending — no locks, no channels, no I/O.
//   - Fail-fast on programmer error — violated preconditions panic
//     rather than returning a value-based error, since every input to
//     this package is either valid or a bug (see tour/errors.go).
//
// Everything lives under one subpackage:
//
//	tour/ — Tree, NodeRef, ParentRef and every query/mutation primitive
//
// This package intentionally has no TSP solver, no distance matrix, no
// tour-construction heuristic, and no persistence: it is the pure
// in-memory tour representation that a Lin–Kernighan-style solver
// would sit on top of.
//
//	go get github.com/ShuhuaGao/two-level-tree/tour
package twolevel
