// Package search implements spec.md §4.7's search layer: the operators
// that drive choice-point exploration on top of a propagate.Scheduler,
// plus the pure interval functions (midpoint, median, delta) and symbolic
// differentiation the rest of the layer is built from.
//
// Every exploratory branch opens a trail.Mark before narrowing an
// Interval and either commits (keeps the narrowing, recurses or reports a
// solution) or calls trail.Undo to restore prior state before trying the
// next branch, the same choice-point discipline katalvlaran-lvlath's
// tsp.bbEngine branch-and-bound search applies to its path/visited
// arrays (restore on backtrack, keep the incumbent on success). The one
// exception is the branch-and-bound incumbent bound itself, which lives
// in an nb.Cell and is deliberately never trailed.
package search
