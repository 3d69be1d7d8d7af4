package search

import (
	"context"
	"fmt"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

// maxEnumerationDomain bounds how many values Enumerate will try for a
// single variable before giving up with ErrDomainTooLarge, guarding
// against silently looping over an interval left at its default
// +/-10^16 integer bound.
const maxEnumerationDomain = 1_000_000

// Enumerate implements spec.md §4.7's enumerate(Vs): for each integer
// interval in vs, nondeterministically choose each value in its domain
// smallest-first, propagating between bindings; an inconsistent choice
// backtracks to the next value. visit is called once per fully-bound
// combination; returning stop=true ends the search early.
//
// Before branching, Enumerate opportunistically runs a global SAT check
// (globalBooleanCheck, package contractor/satcheck) over any boolean-
// connective sub-network reachable from vs, per spec.md §4.3's
// "Domain-stack addition": this can prune the whole call in one shot
// when that sub-network is unsatisfiable, which node-by-node arc-
// consistency alone would only discover after exhausting every branch.
func Enumerate(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, vs []*ivl.Interval, visit Visit) error {
	if len(vs) == 0 {
		return ErrNoVariables
	}
	for _, v := range vs {
		if v.Kind() != ivl.Integer {
			return ErrNotInteger
		}
	}

	sat, err := globalBooleanCheck(vs)
	if err != nil {
		return err
	}
	if !sat {
		// The boolean sub-network reachable from vs has no satisfying
		// assignment at all: every branch enumeration would try is
		// already known infeasible, so report no solutions without
		// spending a single propagation round on it.
		return nil
	}

	_, err = enumerateFrom(ctx, sched, tr, vs, 0, visit)
	return err
}

func enumerateFrom(ctx context.Context, sched *propagate.Scheduler, tr *trail.Trail, vs []*ivl.Interval, idx int, visit Visit) (bool, error) {
	if idx == len(vs) {
		return visit(vs)
	}

	v := vs[idx]
	b := v.Bounds()
	if b.IsPoint() {
		return enumerateFrom(ctx, sched, tr, vs, idx+1, visit)
	}

	lo := b.Lo.Float64()
	hi := b.Hi.Float64()
	if hi-lo > maxEnumerationDomain {
		return false, fmt.Errorf("%w: variable %d spans %g values", ErrDomainTooLarge, idx, hi-lo+1)
	}

	for n := int64(lo); n <= int64(hi); n++ {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		mark := tr.Mark()
		point := ivl.Bounds{Lo: numeric.FromInt64(n), Hi: numeric.FromInt64(n)}
		if _, err := v.IntersectSet(tr, point); err == nil {
			if ok, err := runToFixpoint(ctx, sched, tr); err != nil {
				return false, err
			} else if ok {
				stop, err := enumerateFrom(ctx, sched, tr, vs, idx+1, visit)
				if err != nil {
					return false, err
				}
				if stop {
					return true, nil
				}
			}
		}
		tr.Undo(mark)
	}
	return false, nil
}
