package search

import (
	"context"
	"errors"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

// runToFixpoint drains sched's agenda, translating a consistency failure
// (ivl.ErrFailed) into (false, nil) rather than an error: per spec.md §7
// "Propagation policy: inside propagation, every error is a consistency
// failure", a search operator's job is to backtrack on this, not to
// surface it to its own caller.
func runToFixpoint(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail) (bool, error) {
	if _, err := sched.Run(ctx, tr, nil); err != nil {
		if errors.Is(err, ivl.ErrFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// settled reports whether v needs no further bisection: it is already a
// point, or (for a Real-typed variable) its width has fallen below cfg's
// small threshold. A non-point Integer variable is never settled by width
// alone -- bisection always converges it to a point since IntersectSet
// re-rounds Integer bounds inward on every narrowing.
func settled(v *ivl.Interval, cfg Config) bool {
	b := v.Bounds()
	if b.IsPoint() {
		return true
	}
	if v.Kind() == ivl.Integer {
		return false
	}
	return small(b, cfg.precisionOrDefault())
}

// pickSplitVar returns the index into vs of the next variable to bisect
// per cfg.SplitHeuristic, and false if every variable is already settled.
func pickSplitVar(vs []*ivl.Interval, cfg Config, depth int) (int, bool) {
	var unsettled []int
	for i, v := range vs {
		if !settled(v, cfg) {
			unsettled = append(unsettled, i)
		}
	}
	if len(unsettled) == 0 {
		return 0, false
	}

	switch cfg.SplitHeuristic {
	case RoundRobin:
		return unsettled[depth%len(unsettled)], true
	case LargestFractionFirst:
		best := unsettled[0]
		bestFrac := fraction(vs[best])
		for _, i := range unsettled[1:] {
			if f := fraction(vs[i]); f > bestFrac {
				best, bestFrac = i, f
			}
		}
		return best, true
	default: // WidestFirst
		best := unsettled[0]
		bestWidth := vs[best].Bounds().Width().Float64()
		for _, i := range unsettled[1:] {
			if w := vs[i].Bounds().Width().Float64(); w > bestWidth {
				best, bestWidth = i, w
			}
		}
		return best, true
	}
}

func fraction(v *ivl.Interval) float64 {
	b := v.Bounds()
	w := b.Width().Float64()
	mid := Midpoint(b).Float64()
	scale := mid
	if scale < 0 {
		scale = -scale
	}
	if scale < 1 {
		scale = 1
	}
	return w / scale
}
