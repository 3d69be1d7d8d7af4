package numeric

import (
	"math"
	"math/big"
)

// PowLo returns the greatest representable value <= base^exp.
func PowLo(base, exp Extended) Extended { return powDirected(base, exp, -1) }

// PowHi returns the least representable value >= base^exp.
func PowHi(base, exp Extended) Extended { return powDirected(base, exp, 1) }

func powDirected(base, exp Extended, dir int) Extended {
	if base.IsNaN() || exp.IsNaN() {
		return NaNValue
	}
	if exp.IsExact() && exp.IsInteger() {
		if n, ok := smallInt(exp); ok {
			return powIntDirected(base, n, dir)
		}
	}
	// General real exponent: base^exp = exp(exp * ln(base)), per spec
	// "general real exponents via exp/log". Only sound for base > 0;
	// callers (contractor/power.go) are responsible for the sign-based
	// case split spec.md §4.3 requires before reaching here.
	bf, ef := base.Float64(), exp.Float64()
	if bf < 0 {
		return NaNValue
	}
	r := math.Pow(bf, ef)
	return Extended{f: nextOutward(r, dir)}
}

// smallInt returns the int64 value of an exact integral Extended, if it
// fits.
func smallInt(e Extended) (int64, bool) {
	r, ok := e.Rat()
	if !ok || !r.IsInt() {
		return 0, false
	}
	if !r.Num().IsInt64() {
		return 0, false
	}
	return r.Num().Int64(), true
}

func powIntDirected(base Extended, n int64, dir int) Extended {
	if n == 0 {
		return FromInt64(1)
	}
	if base.IsInf() {
		return powInfInt(base, n)
	}
	if base.rat != nil {
		neg := n < 0
		un := n
		if neg {
			un = -n
		}
		num := new(big.Int).Exp(base.rat.Num(), big.NewInt(un), nil)
		den := new(big.Int).Exp(base.rat.Denom(), big.NewInt(un), nil)
		var z *big.Rat
		if neg {
			z = new(big.Rat).SetFrac(den, num)
		} else {
			z = new(big.Rat).SetFrac(num, den)
		}
		if denomWithinBudget(z) {
			return Extended{rat: z}
		}
		return Extended{f: ratToFloatDirected(z, dir)}
	}
	return Extended{f: nextOutward(math.Pow(base.Float64(), float64(n)), dir)}
}

func powInfInt(base Extended, n int64) Extended {
	if n == 0 {
		return FromInt64(1)
	}
	if n < 0 {
		return Zero
	}
	if n%2 == 0 || base.IsPosInf() {
		return PosInf
	}
	return NegInf
}

// SqrtLo returns the greatest representable value <= sqrt(x), for x >= 0.
func SqrtLo(x Extended) Extended { return sqrtDirected(x, -1) }

// SqrtHi returns the least representable value >= sqrt(x), for x >= 0.
func SqrtHi(x Extended) Extended { return sqrtDirected(x, 1) }

func sqrtDirected(x Extended, dir int) Extended {
	if x.IsNaN() || x.Sign() < 0 {
		return NaNValue
	}
	if x.IsPosInf() {
		return PosInf
	}
	if x.Sign() == 0 {
		return Zero
	}
	f := math.Sqrt(x.Float64())
	if rx, ok := x.Rat(); ok {
		// An exact rational whose square root is exactly representable
		// stays exact.
		if rf := new(big.Rat).SetFloat64(f); rf != nil && new(big.Rat).Mul(rf, rf).Cmp(rx) == 0 {
			return Extended{rat: rf}
		}
	}
	return Extended{f: nextOutward(f, dir)}
}
