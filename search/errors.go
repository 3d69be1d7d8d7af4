package search

import "errors"

// Sentinel errors for the search package.
var (
	// ErrNoVariables indicates an operator was called with an empty
	// variable set.
	ErrNoVariables = errors.New("search: no variables given")

	// ErrNotInteger indicates Enumerate was called on a non-Integer
	// interval, which has no finite domain to enumerate.
	ErrNotInteger = errors.New("search: enumerate requires an integer-typed interval")

	// ErrDomainTooLarge indicates an integer interval's domain exceeds the
	// practical enumeration cap, guarding against silently iterating
	// billions of values when a declaration was left at its default
	// ±10^16 bound.
	ErrDomainTooLarge = errors.New("search: integer domain too large to enumerate")
)
