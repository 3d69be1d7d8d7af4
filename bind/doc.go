// Package bind implements the variable-binding hook of spec.md §4.6: what
// happens when the host unifies an interval variable with a number or with
// another interval variable.
//
// There is no union-find or host-variable layer in this module (spec.md §1
// places the logic-programming substrate itself out of scope), so Bind
// works directly on *ivl.Interval values and returns the surviving
// Interval a caller should use in place of the ones it merged, the same
// way katalvlaran-lvlath's core.Graph clone/merge methods return a new
// authoritative value rather than mutating in place across two receivers.
package bind
