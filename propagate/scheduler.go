package propagate

import (
	"context"
	"math"

	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/trail"
)

// Scheduler runs the fixed-point propagation loop of spec.md §4.5 over
// Nodes it has constructed via NewNode.
type Scheduler struct {
	opts   Options
	agenda []*Node
}

// NewScheduler returns a Scheduler configured by opts, defaulting to
// DefaultOptions.
func NewScheduler(opts ...Option) *Scheduler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Scheduler{opts: o}
}

// Stats summarizes one Run: how much propagation work happened and
// whether the round ended by reaching a fixed point or by throttling.
type Stats struct {
	NodesFired int
	Narrowings int
	Failures   int
	Throttled  bool
}

// Run drains the agenda starting from seed (freshly compiled Nodes, or
// Nodes invalidated by a bind.Bind merge), firing each Node's contractor
// and intersecting its results into the operand Intervals, until the
// agenda empties, ctx is canceled, or the round is throttled.
//
// Throttle, per spec.md §4.5: a soft budget of Options.IterationLimit
// Nodes. Once exhausted, the round ends as soon as the most recent
// narrowing's relative width shrinkage falls at or below
// Options.ThrottleThreshold ("not significant"); otherwise the budget is
// ignored and propagation continues, preventing both runaway iteration on
// a non-convergent fixed point and premature termination mid-progress.
func (s *Scheduler) Run(ctx context.Context, tr *trail.Trail, seed []*Node) (Stats, error) {
	var stats Stats
	for _, n := range seed {
		if !n.linked && !n.persistent {
			n.linked = true
			s.agenda = append(s.agenda, n)
		}
	}

	opsLeft := s.opts.IterationLimit
	lastSignificant := true

	for len(s.agenda) > 0 {
		if err := ctx.Err(); err != nil {
			return stats, err
		}
		if s.opts.IterationLimit > 0 && opsLeft <= 0 && !lastSignificant {
			stats.Throttled = true
			break
		}

		n := s.agenda[0]
		s.agenda = s.agenda[1:]
		n.linked = false
		if n.persistent {
			continue
		}

		stats.NodesFired++
		opsLeft--
		s.opts.OnNodeFired(n)

		c, _ := contractor.For(n.op) // presence guaranteed by NewNode
		bounds := make([]ivl.Bounds, len(n.args))
		for i, a := range n.args {
			bounds[i] = a.Bounds()
		}
		narrowed, persistent, err := c.Narrow(bounds)
		if err != nil {
			return stats, err
		}
		if persistent {
			n.persistent = true
		}

		lastSignificant = false
		for i, a := range n.args {
			before := a.Bounds()
			outcome, err := a.IntersectSet(tr, narrowed[i])
			if err != nil {
				stats.Failures++
				return stats, err
			}
			if outcome == ivl.Updated || outcome == ivl.Collapsed {
				stats.Narrowings++
				s.opts.OnIntervalNarrowed(a, before, a.Bounds())
				if shrunkSignificantly(before, a.Bounds(), s.opts.ThrottleThreshold) {
					lastSignificant = true
				}
			}
		}
	}
	return stats, nil
}

// shrunkSignificantly reports whether after's width is smaller than
// before's by more than threshold, relative to before's width. An
// infinite or zero before-width is always treated as significant: any
// narrowing away from an unbounded operand, or any narrowing of an
// already-degenerate one, is progress that must not be throttled away.
func shrunkSignificantly(before, after ivl.Bounds, threshold float64) bool {
	bw := before.Width().Float64()
	if math.IsInf(bw, 0) || bw == 0 {
		return true
	}
	aw := after.Width().Float64()
	shrink := (bw - aw) / bw
	return shrink > threshold
}
