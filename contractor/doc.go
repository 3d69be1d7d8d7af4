// Package contractor implements the primitive relation library of
// spec.md §4.3: one contractor per operator, each taking the current
// bounds of its operands and returning a tightened enclosure for every
// operand plus a flag reporting whether the contractor can ever narrow
// further.
//
// A Contractor never mutates its caller's state. It is a pure function of
// the operand Bounds it is given; the caller (package propagate) is
// responsible for intersecting the returned candidate bounds into the
// live ivl.Interval via IntersectSet, which is where backtrackable
// mutation, integer re-rounding, point collapse, and watcher
// notification happen. This mirrors the teacher's matrix/ops package,
// where each file is a self-contained numeric routine over plain
// matrix.Matrix values rather than over the graph's own mutable state.
package contractor
