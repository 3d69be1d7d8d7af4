package engine

import (
	"github.com/boundedlogic/clpbnr/compile"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/search"
)

// Config bundles the tunables of every layer an Engine wires together,
// per spec.md §6 "Tunable parameters (process-wide, persist across
// queries)".
type Config struct {
	// Propagate configures the fixed-point scheduler: iteration limit
	// (default 3000) and throttle threshold (default 0.10).
	Propagate []propagate.Option
	// Compile configures the constraint compiler's optional rewrite
	// passes (default: compile.DefaultRewrites()).
	Compile compile.Config
	// Search configures precision (default 6 significant digits) and
	// split heuristic (default WidestFirst) for the bisecting operators.
	Search search.Config
}

// DefaultConfig returns the documented defaults for every layer.
func DefaultConfig() Config {
	return Config{
		Search: search.DefaultConfig(),
	}
}
