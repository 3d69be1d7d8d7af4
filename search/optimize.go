package search

import (
	"context"
	"errors"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/nb"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

// ErrNoSolution indicates a GlobalMinimum/GlobalMaximum search explored
// its entire domain without finding a single consistent leaf.
var ErrNoSolution = errors.New("search: no consistent solution found")

// GlobalMinimum implements spec.md §4.7's global_minimum(Expr, Z, Prec):
// branch-and-bound over vs, pruning any branch whose z enclosure's lower
// bound already exceeds the best upper bound on the minimum found so far.
// z is the already-compiled Interval holding Expr's value (see
// compile.Compiler.Compile); vs are the free variables to bisect.
//
// The best bound is tracked in an nb.Cell so it survives the branch
// backtracking every other piece of state here is subject to, per
// spec.md §4.7 "Uses nb_setbounds ... to preserve the best bound across
// branches".
func GlobalMinimum(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, z *ivl.Interval, vs []*ivl.Interval, cfg Config) (ivl.Bounds, error) {
	return optimize(ctx, sched, tr, z, vs, cfg, true)
}

// GlobalMaximum implements spec.md §4.7's global_maximum(Expr, Z, Prec),
// the mirror image of GlobalMinimum: it prunes branches whose z
// enclosure's upper bound already falls below the best lower bound found
// so far on the maximum.
func GlobalMaximum(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, z *ivl.Interval, vs []*ivl.Interval, cfg Config) (ivl.Bounds, error) {
	return optimize(ctx, sched, tr, z, vs, cfg, false)
}

func optimize(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, z *ivl.Interval, vs []*ivl.Interval, cfg Config, minimize bool) (ivl.Bounds, error) {
	if len(vs) == 0 {
		return ivl.Bounds{}, ErrNoVariables
	}
	incumbent := nb.NewCell()
	boundSeen := nb.NewCell()

	if err := optimizeStep(ctx, sched, tr, z, vs, cfg, 0, incumbent, boundSeen, minimize); err != nil {
		return ivl.Bounds{}, err
	}

	best, ok := incumbent.Value()
	if !ok {
		return ivl.Bounds{}, ErrNoSolution
	}
	other, _ := boundSeen.Value()
	if minimize {
		return ivl.Bounds{Lo: other, Hi: best}, nil
	}
	return ivl.Bounds{Lo: best, Hi: other}, nil
}

func optimizeStep(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, z *ivl.Interval, vs []*ivl.Interval, cfg Config, depth int, incumbent, boundSeen *nb.Cell, minimize bool) error {
	ok, err := runToFixpoint(ctx, sched, tr)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	zb := z.Bounds()
	if best, has := incumbent.Value(); has {
		if minimize && zb.Lo.Cmp(best) > 0 {
			return nil
		}
		if !minimize && zb.Hi.Cmp(best) < 0 {
			return nil
		}
	}

	idx, found := pickSplitVar(vs, cfg, depth)
	if !found {
		if minimize {
			incumbent.TightenNonBacktrackable(zb.Hi, nb.Less)
			boundSeen.TightenNonBacktrackable(zb.Lo, nb.Less)
		} else {
			incumbent.TightenNonBacktrackable(zb.Lo, nb.Greater)
			boundSeen.TightenNonBacktrackable(zb.Hi, nb.Greater)
		}
		return nil
	}

	v := vs[idx]
	b := v.Bounds()
	m := Midpoint(b)

	left := tr.Mark()
	if _, err := v.IntersectSet(tr, ivl.Bounds{Lo: b.Lo, Hi: m}); err == nil {
		if err := optimizeStep(ctx, sched, tr, z, vs, cfg, depth+1, incumbent, boundSeen, minimize); err != nil {
			return err
		}
	}
	tr.Undo(left)

	right := tr.Mark()
	if _, err := v.IntersectSet(tr, ivl.Bounds{Lo: m, Hi: b.Hi}); err == nil {
		if err := optimizeStep(ctx, sched, tr, z, vs, cfg, depth+1, incumbent, boundSeen, minimize); err != nil {
			return err
		}
	}
	tr.Undo(right)

	return nil
}
