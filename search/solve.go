package search

import (
	"context"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

// Solve implements spec.md §4.7's solve(Vs, Prec): like SplitSolve, but
// the split point is nudged slightly off the true midpoint so a point
// solution landing exactly on it is enclosed by only one of the two
// branches, never both -- avoiding the duplicate-solution double-count
// plain bisection can produce at an exact midpoint.
func Solve(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, vs []*ivl.Interval, cfg Config, visit Visit) error {
	if len(vs) == 0 {
		return ErrNoVariables
	}
	_, err := solveStep(ctx, sched, tr, vs, cfg, visit, 0)
	return err
}

// splitPoint returns a point slightly off b's true midpoint, nudged by a
// small fraction of the interval's width, so a solution sitting exactly on
// the true midpoint falls in only one of the two halves {Lo,m} / {m,Hi};
// the halves still share the split point m itself.
func splitPoint(b ivl.Bounds) numeric.Extended {
	m := Midpoint(b)
	eps := numeric.MulHi(b.Width(), numeric.FromFloat64(1e-9))
	if eps.Sign() == 0 {
		return m
	}
	return numeric.AddHi(m, eps)
}

func solveStep(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, vs []*ivl.Interval, cfg Config, visit Visit, depth int) (bool, error) {
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
	m := splitPoint(b)

	left := tr.Mark()
	if _, err := v.IntersectSet(tr, ivl.Bounds{Lo: b.Lo, Hi: m}); err == nil {
		stop, err := solveStep(ctx, sched, tr, vs, cfg, visit, depth+1)
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
		stop, err := solveStep(ctx, sched, tr, vs, cfg, visit, depth+1)
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
