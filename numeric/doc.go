// Package numeric is the rounded numeric kernel underlying the interval
// constraint engine.
//
// It wraps IEEE-754 double-precision arithmetic with directed (outward)
// rounding, falls back to exact rational arithmetic (math/big.Rat) whenever
// both operands are exactly representable and the result's denominator
// stays under Config.MaxRationalDenominator, and represents the extended
// values {-Inf, +Inf, NaN} explicitly so that interval contractors can tell
// "unbounded in this direction" apart from "arithmetic error".
//
// Every exported Lo/Hi pair (AddLo/AddHi, MulLo/MulHi, ...) satisfies:
// for all representable a, b, the true mathematical result of a OP b lies
// in [OPLo(a,b), OPHi(a,b)]. Go has no portable way to select an FPU
// rounding mode, so the float64 path computes the round-to-nearest result
// and nudges it one ULP outward with math.Nextafter, per the widen-with-
// nexttoward strategy described for platforms without rounding-mode
// control.
package numeric
