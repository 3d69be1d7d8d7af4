// Package compile implements the constraint compiler of spec.md §4.4: it
// recursively rewrites an Expr tree into a DAG of propagate.Node values
// sharing ivl.Interval operands, pre-evaluating ground subexpressions
// with outward rounding and running an optional chain of algebraic
// simplifications first.
//
// The compiler itself follows builder's shape: a small Config struct plus
// a constructor, composing independently toggleable rewrite
// passes the way builder.Option composes graph construction steps.
package compile
