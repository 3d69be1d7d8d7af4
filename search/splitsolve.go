package search

import (
	"context"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

// Visit is called once per leaf of a bisecting search, with every
// variable in Vs narrowed to a settled enclosure. Returning stop=true
// ends the search early (the caller found what it needed); a non-nil
// error aborts the whole search and is returned from the top-level call.
type Visit func(vs []*ivl.Interval) (stop bool, err error)

// SplitSolve implements spec.md §4.7's splitsolve(Vs, Prec): plain
// bisection, each split creating a choice point for the left half then
// the right half, recursing until every variable's width is below the
// small threshold cfg.Precision determines.
func SplitSolve(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, vs []*ivl.Interval, cfg Config, visit Visit) error {
	if len(vs) == 0 {
		return ErrNoVariables
	}
	_, err := splitSolveStep(ctx, sched, tr, vs, cfg, visit, 0)
	return err
}

func splitSolveStep(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, vs []*ivl.Interval, cfg Config, visit Visit, depth int) (bool, error) {
	ok, err := runToFixpoint(ctx, sched, tr)
	if err != nil || !ok {
		return false, err
	}

	idx, found := pickSplitVar(vs, cfg, depth)
	if !found {
		return visit(vs)
	}

	v := vs[idx]
	b := v.Bounds()
	m := Midpoint(b)

	left := tr.Mark()
	if _, err := v.IntersectSet(tr, ivl.Bounds{Lo: b.Lo, Hi: m}); err == nil {
		stop, err := splitSolveStep(ctx, sched, tr, vs, cfg, visit, depth+1)
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
	}
	tr.Undo(left)

	right := tr.Mark()
	if _, err := v.IntersectSet(tr, ivl.Bounds{Lo: m, Hi: b.Hi}); err == nil {
		stop, err := splitSolveStep(ctx, sched, tr, vs, cfg, visit, depth+1)
		if err != nil {
			return false, err
		}
		if stop {
			return true, nil
		}
	}
	tr.Undo(right)

	return false, nil
}
