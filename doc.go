// Package clpbnr implements a constraint logic programming engine over
// Boolean, Integer, and Real intervals: a sound, fixed-point interval
// propagation core plus split-and-search operators layered on top.
//
// The engine narrows each declared interval variable's enclosure by
// running primitive relations (add, mul, pow, trig, comparisons, boolean
// connectives, ...) to a fixed point under an AC-3-style agenda, then
// optionally drives that enclosure toward a point solution via bisection,
// enumeration, or branch-and-bound. Every narrowing is sound: the engine
// never discards a value consistent with the posted constraints.
//
// Packages, leaves first:
//
//	numeric    — directed-rounding arithmetic kernel and extended values
//	ivl        — the Interval type and backtrackable Store
//	contractor — one primitive relation per operator
//	compile    — expression simplification/decomposition into a node DAG
//	propagate  — the fixed-point scheduler (agenda, throttle, persistence)
//	bind       — the variable-unification hook
//	nb         — non-backtrackable cells for branch-and-bound incumbents
//	search     — solve/splitsolve/absolve/enumerate/global optimization
//	telemetry  — counters and per-interval trace hooks
//	trail      — the backtrackable undo log every mutation runs through
//	engine     — the façade tying the above into a single API
//
// cmd/clpbnrctl is a thin demonstration CLI over package engine.
package clpbnr
