package numeric

// Config tunes the rounded numeric kernel. The zero value is not ready to
// use; call DefaultConfig to obtain sane defaults.
type Config struct {
	// MaxRationalDenominator bounds the denominator of an exact big.Rat
	// result before the kernel gives up on exactness and widens to a
	// float64 enclosure. Without a bound, repeated exact arithmetic (e.g.
	// summing many thirds) can grow denominators without limit.
	MaxRationalDenominator int64
}

// DefaultConfig returns the kernel configuration the engine uses unless the
// caller overrides it: rationals are kept exact up to a 2^53 denominator,
// matching float64's mantissa width, after which they widen to float64.
func DefaultConfig() Config {
	return Config{MaxRationalDenominator: 1 << 53}
}

var active = DefaultConfig()

// SetConfig installs the process-wide kernel configuration. It is not
// goroutine-safe against concurrent arithmetic and is intended to be called
// once during process setup, mirroring the engine's other process-wide
// tunables (iteration limit, throttle threshold).
func SetConfig(c Config) { active = c }

// CurrentConfig returns the active kernel configuration.
func CurrentConfig() Config { return active }
