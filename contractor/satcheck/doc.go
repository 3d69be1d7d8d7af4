// Package satcheck provides a SAT-backed consistency check for the
// boolean sub-network of a constraint store, grounded on
// github.com/go-air/gini the same way the teacher pack's
// operator-framework-operator-lifecycle-manager dependency resolver uses
// it: a litMapping from problem variables to gini literals, clauses added
// for each constraint, and a single Solve call.
//
// The interval contractors in package contractor (And, Or, Xor, Nand,
// Nor, Imb, Not) already perform local, incremental truth-table
// narrowing during propagation. ConsistentBoolean is a heavier, global
// check: given the accumulated boolean clauses implied by a constraint
// network, it answers whether *some* total assignment exists at all,
// catching inconsistencies (e.g. an unsatisfiable cycle of implications)
// that purely local arc-consistency can miss until the bitter end of a
// search. Package search uses the gate-level variant, ConsistentCircuit,
// once before Enumerate starts branching.
package satcheck
