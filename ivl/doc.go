// Package ivl implements the interval value and interval store: the
// mutable, backtrackable record described in spec.md §3 "Interval", and
// the store operations of spec.md §4.2.
//
// An Interval pairs a type tag (Real or Integer; Boolean is represented as
// Integer with bounds intersected to [0,1]) with a (Lo, Hi) pair of
// numeric.Extended bounds and a lazily-growing watcher list. All mutation
// goes through IntersectSet, which trails its writes onto a *trail.Trail so
// that a failed choice point restores prior bounds, per spec.md §9
// "Backtrackable state".
package ivl
