package propagate

import "github.com/boundedlogic/clpbnr/ivl"

// Option configures a Scheduler via functional arguments, matching the
// teacher's bfs.Option/BFSOptions shape.
type Option func(*Options)

// Options holds a Scheduler's tunables and hooks.
type Options struct {
	// IterationLimit is the soft per-round work budget (spec.md §4.5
	// "Throttle"): once this many Nodes have fired, the round ends as
	// soon as a narrowing fails the "significant" test, rather than
	// immediately. Zero disables the limit (run to a true fixed point).
	IterationLimit int

	// ThrottleThreshold is the minimum relative width shrinkage (0,1]
	// that counts as "significant narrowing" once IterationLimit has
	// been reached. spec.md's Open Question fixes this at 0.10 for
	// reproducibility while leaving it tunable; see DESIGN.md.
	ThrottleThreshold float64

	// OnNodeFired is called immediately before a Node's contractor runs.
	OnNodeFired func(n *Node)

	// OnIntervalNarrowed is called after an operand Interval narrows
	// (Updated or Collapsed outcome), with its bounds before and after.
	OnIntervalNarrowed func(iv *ivl.Interval, before, after ivl.Bounds)
}

// DefaultOptions returns the documented defaults: an iteration limit of
// 3000, a throttle threshold of 10%, and no-op hooks.
func DefaultOptions() Options {
	return Options{
		IterationLimit:     3000,
		ThrottleThreshold:  0.10,
		OnNodeFired:        func(*Node) {},
		OnIntervalNarrowed: func(*ivl.Interval, ivl.Bounds, ivl.Bounds) {},
	}
}

// WithIterationLimit overrides the default iteration budget. A limit <= 0
// means "no limit": propagate to a true fixed point regardless of cost.
func WithIterationLimit(n int) Option {
	return func(o *Options) { o.IterationLimit = n }
}

// WithThrottleThreshold overrides the default significant-narrowing
// threshold.
func WithThrottleThreshold(t float64) Option {
	return func(o *Options) {
		if t > 0 {
			o.ThrottleThreshold = t
		}
	}
}

// WithOnNodeFired registers a callback invoked once per fired Node.
func WithOnNodeFired(fn func(n *Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnNodeFired = fn
		}
	}
}

// WithOnIntervalNarrowed registers a callback invoked once per successful
// narrowing.
func WithOnIntervalNarrowed(fn func(iv *ivl.Interval, before, after ivl.Bounds)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIntervalNarrowed = fn
		}
	}
}
