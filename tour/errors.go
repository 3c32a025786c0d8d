// Package tour — precondition/assertion policy.
//
// Every error condition documented on the exported API is a programming
// error: an invalid city label, an empty tour, fewer than two segments at
// construction, DoubleBridgeMove arguments out of forward order or sharing
// a segment, Flip arguments whose arc directions disagree, IsBetween with
// duplicated arguments. None of these are recoverable at the call site in
// any meaningful sense, so the package surfaces them as fail-fast panics
// instead of a value-based error channel.
package tour

import "fmt"

// assertf panics with a formatted message if cond is false. It is the single
// entry point for precondition checks in this package; callers should never
// call panic directly so that assertion messages stay consistently prefixed.
func assertf(cond bool, format string, args ...interface{}) {
	if !cond {
		panic("tour: " + fmt.Sprintf(format, args...))
	}
}
