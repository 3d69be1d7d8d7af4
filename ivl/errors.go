package ivl

import "errors"

// Sentinel errors for interval construction and narrowing, wrapped with
// context via %w at call sites per the teacher's sentinel-plus-wrapping
// convention (builder/errors.go).
var (
	// ErrInvalidBounds indicates a declaration or narrowing candidate with
	// Lo > Hi, or a NaN bound.
	ErrInvalidBounds = errors.New("ivl: invalid bounds (Lo > Hi or NaN)")

	// ErrEmptyIntegerDomain indicates an integer-typed interval whose
	// inward rounding (ceil Lo, floor Hi) left no representable integer.
	ErrEmptyIntegerDomain = errors.New("ivl: no representable integer in bounds")

	// ErrFailed indicates IntersectSet produced Lo > Hi: a consistency
	// failure per spec.md §7, meant to be propagated as host backtracking.
	ErrFailed = errors.New("ivl: narrowing failed (empty interval)")
)
