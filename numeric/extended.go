package numeric

import (
	"fmt"
	"math"
	"math/big"
)

// Extended is an extended real: an exact rational, an inexact float64, or
// one of {-Inf, +Inf, NaN}. It is the value type carried by interval
// bounds (ivl.Bounds.Lo / .Hi).
//
// Exactly one representation is active at a time:
//   - rat != nil: the value is the exact rational *rat.
//   - rat == nil: the value is f, which may be a finite float64,
//     math.Inf(-1), math.Inf(1), or math.NaN().
//
// The zero value is the exact rational 0.
type Extended struct {
	rat *big.Rat
	f   float64
}

// NegInf is the extended value -∞.
var NegInf = Extended{f: math.Inf(-1)}

// PosInf is the extended value +∞.
var PosInf = Extended{f: math.Inf(1)}

// NaNValue is the extended not-a-number value. Interval contractors treat
// it as "unbounded in this direction" and re-clamp against the operand's
// prior bounds, per spec.
var NaNValue = Extended{f: math.NaN()}

// Zero is the exact rational 0.
var Zero = Extended{rat: new(big.Rat)}

// FromInt64 returns the exact rational n.
func FromInt64(n int64) Extended {
	return Extended{rat: new(big.Rat).SetInt64(n)}
}

// FromRat returns the exact rational r. r is not retained; callers may
// mutate it afterward.
func FromRat(r *big.Rat) Extended {
	return Extended{rat: new(big.Rat).Set(r)}
}

// FromFloat64 wraps an inexact float64 measurement. Use FromInt64/FromRat
// instead when the value is exactly known, so that downstream arithmetic
// can stay exact and later collapse a narrowed interval to a point.
func FromFloat64(f float64) Extended {
	return Extended{f: f}
}

// IsExact reports whether e is an exact rational.
func (e Extended) IsExact() bool { return e.rat != nil }

// IsInf reports whether e is +Inf or -Inf.
func (e Extended) IsInf() bool {
	return e.rat == nil && math.IsInf(e.f, 0)
}

// IsPosInf reports whether e is +Inf.
func (e Extended) IsPosInf() bool { return e.rat == nil && math.IsInf(e.f, 1) }

// IsNegInf reports whether e is -Inf.
func (e Extended) IsNegInf() bool { return e.rat == nil && math.IsInf(e.f, -1) }

// IsNaN reports whether e is NaN.
func (e Extended) IsNaN() bool { return e.rat == nil && math.IsNaN(e.f) }

// IsFinite reports whether e is neither infinite nor NaN.
func (e Extended) IsFinite() bool { return e.rat != nil || !math.IsInf(e.f, 0) && !math.IsNaN(e.f) }

// Rat returns the underlying rational and true if e is exact. The returned
// *big.Rat is a fresh copy; callers may mutate it freely.
func (e Extended) Rat() (*big.Rat, bool) {
	if e.rat == nil {
		return nil, false
	}
	return new(big.Rat).Set(e.rat), true
}

// Float64 returns the best float64 approximation of e: the exact value
// rounded to nearest for a rational, or the stored float/inf/nan.
func (e Extended) Float64() float64 {
	if e.rat != nil {
		f, _ := e.rat.Float64()
		return f
	}
	return e.f
}

// Sign returns -1, 0, or 1.
func (e Extended) Sign() int {
	if e.rat != nil {
		return e.rat.Sign()
	}
	switch {
	case math.IsNaN(e.f):
		return 0
	case e.f > 0:
		return 1
	case e.f < 0:
		return -1
	default:
		return 0
	}
}

// Min returns whichever of a, b compares smaller.
func Min(a, b Extended) Extended {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns whichever of a, b compares larger.
func Max(a, b Extended) Extended {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// Neg returns -e. Negation of an exact rational is exact.
func (e Extended) Neg() Extended {
	if e.rat != nil {
		return Extended{rat: new(big.Rat).Neg(e.rat)}
	}
	return Extended{f: -e.f}
}

// Cmp compares e and o, returning -1, 0, or +1. NaN compares as
// incomparable and Cmp returns 0 as a conservative, documented fallback;
// callers that care must check IsNaN first.
func (e Extended) Cmp(o Extended) int {
	if e.rat != nil && o.rat != nil {
		return e.rat.Cmp(o.rat)
	}
	ef, of := e.Float64(), o.Float64()
	switch {
	case math.IsNaN(ef) || math.IsNaN(of):
		return 0
	case ef < of:
		return -1
	case ef > of:
		return 1
	default:
		return 0
	}
}

// Equal reports whether e and o denote the same value.
func (e Extended) Equal(o Extended) bool {
	if e.IsNaN() || o.IsNaN() {
		return false
	}
	return e.Cmp(o) == 0
}

// String implements fmt.Stringer for diagnostics and tracing.
func (e Extended) String() string {
	switch {
	case e.IsNaN():
		return "NaN"
	case e.IsPosInf():
		return "+Inf"
	case e.IsNegInf():
		return "-Inf"
	case e.rat != nil:
		if e.rat.IsInt() {
			return e.rat.Num().String()
		}
		return e.rat.RatString()
	default:
		return fmt.Sprintf("%g", e.f)
	}
}

// IsInteger reports whether e denotes an integer value (exact integral
// rational, or a finite float with no fractional part).
func (e Extended) IsInteger() bool {
	if e.rat != nil {
		return e.rat.IsInt()
	}
	if !e.IsFinite() {
		return false
	}
	return e.f == math.Trunc(e.f)
}

// CeilInt rounds e upward (toward +Inf) to the nearest integer Extended.
// Infinities and exact integers pass through unchanged.
func (e Extended) CeilInt() Extended {
	if e.IsInf() || e.IsNaN() {
		return e
	}
	if e.rat != nil {
		if e.rat.IsInt() {
			return e
		}
		q := new(big.Int)
		q.Quo(e.rat.Num(), e.rat.Denom()) // truncates toward zero
		if e.rat.Sign() > 0 {
			q.Add(q, big.NewInt(1))
		}
		return Extended{rat: new(big.Rat).SetInt(q)}
	}
	return Extended{f: math.Ceil(e.f)}
}

// FloorInt rounds e downward (toward -Inf) to the nearest integer Extended.
func (e Extended) FloorInt() Extended {
	if e.IsInf() || e.IsNaN() {
		return e
	}
	if e.rat != nil {
		if e.rat.IsInt() {
			return e
		}
		q := new(big.Int)
		q.Quo(e.rat.Num(), e.rat.Denom())
		if e.rat.Sign() < 0 {
			// big.Int.Quo truncates toward zero; nudge down for negatives.
			q.Sub(q, big.NewInt(1))
		}
		return Extended{rat: new(big.Rat).SetInt(q)}
	}
	return Extended{f: math.Floor(e.f)}
}

// denomWithinBudget reports whether r's denominator is small enough to stay
// exact under the active Config, per spec's "configurable max size before
// automatic conversion to float".
func denomWithinBudget(r *big.Rat) bool {
	max := CurrentConfig().MaxRationalDenominator
	if max <= 0 {
		return true
	}
	return r.Denom().IsInt64() && r.Denom().Int64() <= max
}
