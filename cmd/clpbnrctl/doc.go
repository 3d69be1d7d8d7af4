// Command clpbnrctl is a thin demonstration shell over package engine,
// per spec.md §6's external interface. It reads a constraint script (a
// sequence of "declare" and "post" lines, see script.go) from a file or
// stdin, drives one engine.Engine against it, and reports the result of
// whichever of declare/post/solve/stats the caller asked for.
//
// It is not a new surface: the expressions inside a script line use the
// exact operator vocabulary spec.md §4.3/§6 define, read by a small
// recursive-descent parser (exprparse.go) rather than a generated one.
package main
