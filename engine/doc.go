// Package engine is the façade of spec.md §6 "External Interfaces": a Go
// API standing in for the host logic substrate's `X :: Dom`, `{...}`,
// introspection, search, and tracing operators, since that substrate
// (unification, backtracking, attributed variables, surface syntax) is
// explicitly out of scope (spec.md §1).
//
// An Engine owns one ivl.Store, one propagate.Scheduler, one
// compile.Compiler, one trail.Trail, and one telemetry.Counters/Tracer
// pair, wiring them together the way a host CLP(BNR) runtime wires its
// global propagation state. Callers declare interval variables with
// Declare, post constraints with Post/Assert, read enclosures back with
// Domain/LowerBound/UpperBound/Delta/Midpoint/Median, and drive search
// with the Solve/SplitSolve/Absolve/Enumerate/GlobalMinimum/GlobalMaximum
// methods, which thread the Engine's own Trail and Scheduler through to
// package search so a caller never has to wire those by hand.
package engine
