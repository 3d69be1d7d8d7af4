package search

import (
	"context"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

// maxNibbleIterations bounds Absolve's binary search for the feasible
// boundary near each end of v's interval.
const maxNibbleIterations = 64

// Absolve implements spec.md §4.7's absolve(V, Prec): nibbling. It tests
// whether the current lower bound is itself a consistent point; if not,
// it bisects toward the true feasible/infeasible boundary and tightens
// the lower bound to what it finds. It repeats the same process,
// independently, for the upper bound. Interior gaps in a non-convex
// feasible region are not discovered -- only the two edges are nibbled.
func Absolve(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, v *ivl.Interval, cfg Config) error {
	if err := absolveEdge(ctx, sched, tr, v, cfg, true); err != nil {
		return err
	}
	return absolveEdge(ctx, sched, tr, v, cfg, false)
}

func absolveEdge(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, v *ivl.Interval, cfg Config, lower bool) error {
	b := v.Bounds()
	edge, far := b.Lo, b.Hi
	if !lower {
		edge, far = b.Hi, b.Lo
	}

	edgeOK, err := testPoint(ctx, sched, tr, v, edge)
	if err != nil {
		return err
	}
	if edgeOK {
		return nil
	}

	infeasible, feasible := edge, far
	precision := cfg.precisionOrDefault()
	for i := 0; i < maxNibbleIterations; i++ {
		span := ivl.Bounds{Lo: numeric.Min(infeasible, feasible), Hi: numeric.Max(infeasible, feasible)}
		if small(span, precision) {
			break
		}
		mid := Midpoint(span)
		ok, err := testPoint(ctx, sched, tr, v, mid)
		if err != nil {
			return err
		}
		if ok {
			feasible = mid
		} else {
			infeasible = mid
		}
	}

	var newBounds ivl.Bounds
	if lower {
		newBounds = ivl.Bounds{Lo: feasible, Hi: b.Hi}
	} else {
		newBounds = ivl.Bounds{Lo: b.Lo, Hi: feasible}
	}
	_, err = v.IntersectSet(tr, newBounds)
	return err
}

// testPoint narrows v to the single point value and runs propagation to
// see whether that choice is consistent, then unconditionally undoes the
// trial -- Absolve only commits the final boundary it settles on.
func testPoint(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, v *ivl.Interval, value numeric.Extended) (bool, error) {
	mark := tr.Mark()
	defer tr.Undo(mark)

	if _, err := v.IntersectSet(tr, ivl.Bounds{Lo: value, Hi: value}); err != nil {
		return false, nil
	}
	return runToFixpoint(ctx, sched, tr)
}
