package bind

import (
	"errors"
	"fmt"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/trail"
)

// Bind implements spec.md §4.6's unification hook for interval variable v.
//
// If term is a Number, v is narrowed to that exact point (after checking
// integer membership for an Integer-typed v) and v itself is returned.
//
// If term is a VarTerm wrapping v', the merged type (real /\ real = real;
// else integer), merged bounds (intersection), merged watcher list (union
// suppressing (Op, operand-vector) duplicates via ivl.Keyed), and merged
// flags (union) are installed on v' -- the surviving interval, returned to
// the caller, which must use it in place of both v and v' from this point
// on. v itself is left otherwise untouched (there is no union-find pointer
// to redirect: that bookkeeping belongs to the host's variable layer,
// spec.md §1 "Out of scope").
//
// Any inconsistency (bounds that no longer intersect, a non-integer point
// bound to an Integer interval) returns ErrInconsistent or ErrNotInteger,
// which the caller propagates as a backtracking trigger.
func Bind(tr *trail.Trail, v *ivl.Interval, term Term) (*ivl.Interval, error) {
	switch t := term.(type) {
	case Number:
		return bindNumber(tr, v, t)
	case VarTerm:
		return bindVar(tr, v, t.Interval)
	default:
		return nil, fmt.Errorf("bind: unknown Term %T", term)
	}
}

func bindNumber(tr *trail.Trail, v *ivl.Interval, n Number) (*ivl.Interval, error) {
	if v.Kind() == ivl.Integer && !n.Value.IsInteger() {
		return nil, fmt.Errorf("%w: %v", ErrNotInteger, n.Value)
	}
	point := ivl.Bounds{Lo: n.Value, Hi: n.Value}
	outcome, err := v.IntersectSet(tr, point)
	if err != nil {
		if errors.Is(err, ivl.ErrFailed) {
			return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
		}
		return nil, err
	}
	if outcome == ivl.Failed {
		return nil, ErrInconsistent
	}
	return v, nil
}

// bindVar merges v into v', per the survivor convention documented on Bind.
func bindVar(tr *trail.Trail, v, vprime *ivl.Interval) (*ivl.Interval, error) {
	if v == vprime {
		return vprime, nil
	}

	mergedKind := ivl.Real
	if v.Kind() == ivl.Integer || vprime.Kind() == ivl.Integer {
		mergedKind = ivl.Integer
	}

	vb, vpb := v.Bounds(), vprime.Bounds()
	merged := ivl.Bounds{Lo: maxExt(vb.Lo, vpb.Lo), Hi: minExt(vb.Hi, vpb.Hi)}
	if !merged.Valid() {
		return nil, ErrInconsistent
	}

	vprime.SetKind(tr, mergedKind)
	outcome, err := vprime.IntersectSet(tr, merged)
	if err != nil {
		if errors.Is(err, ivl.ErrFailed) {
			return nil, fmt.Errorf("%w: %v", ErrInconsistent, err)
		}
		return nil, err
	}
	if outcome == ivl.Failed {
		return nil, ErrInconsistent
	}

	mergeWatchers(tr, vprime, v.Watchers())
	vprime.SetFlags(tr, v.Flags())

	return vprime, nil
}

// mergeWatchers appends every watcher in src not already present on dst (by
// ivl.Keyed.Key when available, else by pointer identity), per spec.md
// §4.6 "merged watcher list = union suppressing (Op, args) duplicates".
func mergeWatchers(tr *trail.Trail, dst *ivl.Interval, src []ivl.Watcher) {
	existingKeys := make(map[string]struct{}, len(dst.Watchers()))
	existingPtrs := make(map[ivl.Watcher]struct{}, len(dst.Watchers()))
	for _, w := range dst.Watchers() {
		if k, ok := w.(ivl.Keyed); ok {
			existingKeys[k.Key()] = struct{}{}
		} else {
			existingPtrs[w] = struct{}{}
		}
	}

	for _, w := range src {
		if k, ok := w.(ivl.Keyed); ok {
			if _, dup := existingKeys[k.Key()]; dup {
				continue
			}
			existingKeys[k.Key()] = struct{}{}
			dst.AddWatcher(tr, w)
			continue
		}
		if _, dup := existingPtrs[w]; dup {
			continue
		}
		existingPtrs[w] = struct{}{}
		dst.AddWatcher(tr, w)
	}
}

func maxExt(a, b numeric.Extended) numeric.Extended {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

func minExt(a, b numeric.Extended) numeric.Extended {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
