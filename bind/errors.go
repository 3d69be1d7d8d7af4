package bind

import "errors"

// Sentinel errors for Bind, following the teacher's builder/errors.go
// sentinel-plus-%w-wrapping convention.
var (
	// ErrOutOfBounds indicates a numeric term fell outside the target
	// interval's current bounds.
	ErrOutOfBounds = errors.New("bind: numeric term out of bounds")

	// ErrNotInteger indicates a numeric term bound to an Integer-typed
	// interval was not itself a representable integer.
	ErrNotInteger = errors.New("bind: numeric term is not an integer")

	// ErrInconsistent indicates merging two intervals (or narrowing to a
	// numeric point) produced an empty result; the caller must treat this
	// as a host backtracking trigger per spec.md §4.6 "On any
	// inconsistency, fail (backtrack)".
	ErrInconsistent = errors.New("bind: unification is inconsistent")
)
