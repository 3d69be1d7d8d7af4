// Package trail provides the backtrackable-write primitive the rest of the
// engine is built on.
//
// The host logic-programming substrate the engine normally runs under
// (spec.md §1 "Out of scope") supplies a trail of its own: every
// destructive write made during a choice point is undone automatically
// when that choice point fails. This module is the Go-native equivalent
// spec.md §9 "Attributed variables pattern" calls for when no such host is
// available: an explicit Trail that every mutating operation in ivl,
// propagate, bind, and telemetry pushes an inverse onto before mutating
// state, and that search opens a Mark on before each split/branch and
// Undoes on backtrack.
package trail
