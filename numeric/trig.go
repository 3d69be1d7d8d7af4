package numeric

import "math"

// ExpLo returns the greatest representable value <= e^x.
func ExpLo(x Extended) Extended { return expDirected(x, -1) }

// ExpHi returns the least representable value >= e^x.
func ExpHi(x Extended) Extended { return expDirected(x, 1) }

func expDirected(x Extended, dir int) Extended {
	if x.IsNaN() {
		return NaNValue
	}
	if x.IsNegInf() {
		return Zero
	}
	if x.IsPosInf() {
		return PosInf
	}
	return Extended{f: nextOutward(math.Exp(x.Float64()), dir)}
}

// LogLo returns the greatest representable value <= ln(x), for x > 0.
func LogLo(x Extended) Extended { return logDirected(x, -1) }

// LogHi returns the least representable value >= ln(x), for x > 0.
func LogHi(x Extended) Extended { return logDirected(x, 1) }

func logDirected(x Extended, dir int) Extended {
	if x.IsNaN() || x.Sign() < 0 {
		return NaNValue
	}
	if x.Sign() == 0 {
		return NegInf
	}
	if x.IsPosInf() {
		return PosInf
	}
	return Extended{f: nextOutward(math.Log(x.Float64()), dir)}
}

// reduceMod2Pi reduces x modulo 2*pi into [0, 2*pi). Exact reduction of an
// inexact float is itself inexact; reduceMod2Pi returns a plain float64
// approximation. SinHull / CosHull / TanHull below do not call it: they
// locate critical points and poles directly from the unreduced endpoints.
func reduceMod2Pi(x float64) float64 {
	const twoPi = 2 * math.Pi
	r := math.Mod(x, twoPi)
	if r < 0 {
		r += twoPi
	}
	return r
}

// SinHull returns a sound enclosure [lo, hi] of sin over the closed
// interval [lo, hi] of real inputs. When the interval spans more than
// 2*pi, or straddles a maximum/minimum of sin, the hull is the full
// [-1, 1] range; otherwise lo/hi are the rounded-outward endpoint values.
func SinHull(lo, hi Extended) (Extended, Extended) {
	return trigHull(lo, hi, math.Sin, math.Pi/2, 3*math.Pi/2)
}

// CosHull returns a sound enclosure of cos over [lo, hi], by the same
// quadrant-aware reasoning as SinHull (cos peaks at 0 and troughs at pi).
func CosHull(lo, hi Extended) (Extended, Extended) {
	return trigHull(lo, hi, math.Cos, 0, math.Pi)
}

// trigHull implements the shared worst-case-bounds logic for Sin/Cos: if
// the input span is wide enough, or contains a critical point of fn (an
// extremum at maxAt mod 2*pi or minAt mod 2*pi), the result saturates to
// the function's global range [-1, 1]; otherwise the two endpoint values,
// directed-rounded outward, bound the monotonic arc between them.
func trigHull(lo, hi Extended, fn func(float64) float64, maxAt, minAt float64) (Extended, Extended) {
	if lo.IsNaN() || hi.IsNaN() {
		return NaNValue, NaNValue
	}
	lf, hf := lo.Float64(), hi.Float64()
	if math.IsInf(lf, 0) || math.IsInf(hf, 0) || hf-lf >= 2*math.Pi {
		return FromInt64(-1), FromInt64(1)
	}
	containsCritical := func(at float64) bool {
		const twoPi = 2 * math.Pi
		k := math.Floor((lf - at) / twoPi)
		for x := at + k*twoPi; x <= hf+1e-12; x += twoPi {
			if x >= lf-1e-12 {
				return true
			}
		}
		return false
	}
	a, b := fn(lf), fn(hf)
	loVal, hiVal := math.Min(a, b), math.Max(a, b)
	if containsCritical(maxAt) {
		hiVal = 1
	}
	if containsCritical(minAt) {
		loVal = -1
	}
	return Extended{f: nextOutward(loVal, -1)}, Extended{f: nextOutward(hiVal, 1)}
}

// TanHull returns a sound enclosure of tan over [lo, hi]. tan has a pole at
// pi/2 + k*pi; if [lo, hi] spans one, tan is unbounded in that span and the
// hull is (-Inf, +Inf).
func TanHull(lo, hi Extended) (Extended, Extended) {
	if lo.IsNaN() || hi.IsNaN() {
		return NaNValue, NaNValue
	}
	lf, hf := lo.Float64(), hi.Float64()
	if math.IsInf(lf, 0) || math.IsInf(hf, 0) {
		return NegInf, PosInf
	}
	const period = math.Pi
	k := math.Floor((lf - math.Pi/2) / period)
	for pole := math.Pi/2 + k*period; pole <= hf+1e-12; pole += period {
		if pole >= lf-1e-12 && pole <= hf+1e-12 {
			return NegInf, PosInf
		}
	}
	a, b := math.Tan(lf), math.Tan(hf)
	lo2, hi2 := math.Min(a, b), math.Max(a, b)
	return Extended{f: nextOutward(lo2, -1)}, Extended{f: nextOutward(hi2, 1)}
}
