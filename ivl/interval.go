package ivl

import (
	"fmt"

	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/trail"
)

// ID uniquely identifies an Interval within the Store that created it.
type ID uint64

// Interval is the mutable, backtrackable record of spec.md §3: a type tag,
// a (Lo, Hi) pair of numeric.Extended bounds, a watcher list, and a flag
// set. All mutation goes through IntersectSet.
type Interval struct {
	id       ID
	kind     Kind
	bounds   Bounds
	watchers []Watcher
	flags    Flags

	// collapsed is set once the interval's bounds become a representable
	// point, per spec.md §3 "Point collapse". A collapsed interval keeps
	// narrowing (it may still be bound to a fresh term by bind.Bind) but
	// callers can check Collapsed() to short-circuit further contraction.
	collapsed bool
}

// ID returns the interval's identity, stable for its lifetime.
func (iv *Interval) ID() ID { return iv.id }

// Kind returns the interval's type tag.
func (iv *Interval) Kind() Kind { return iv.kind }

// Bounds returns the interval's current (Lo, Hi) pair.
func (iv *Interval) Bounds() Bounds { return iv.bounds }

// Flags returns the interval's current flag set.
func (iv *Interval) Flags() Flags { return iv.flags }

// Collapsed reports whether the interval's bounds are a representable
// point.
func (iv *Interval) Collapsed() bool { return iv.collapsed }

// Watchers returns the interval's current watcher list. The returned slice
// must not be mutated by the caller; use addWatcher / notify to change it.
func (iv *Interval) Watchers() []Watcher { return iv.watchers }

// SetKind trails and installs k as the interval's type tag. Used by
// bind.Bind to apply spec.md §4.6's merged-type rule ("real /\ real = real;
// else integer") when two interval variables are unified: downgrading to
// Integer re-rounds the current bounds inward the same way Declare does.
func (iv *Interval) SetKind(tr *trail.Trail, k Kind) {
	if k == iv.kind {
		return
	}
	prevKind := iv.kind
	prevBounds := iv.bounds
	prevCollapsed := iv.collapsed
	tr.Push(func() {
		iv.kind = prevKind
		iv.bounds = prevBounds
		iv.collapsed = prevCollapsed
	})
	iv.kind = k
	if k == Integer {
		iv.bounds = Bounds{Lo: iv.bounds.Lo.CeilInt(), Hi: iv.bounds.Hi.FloorInt()}
		iv.collapsed = iv.bounds.IsPoint()
	}
}

// SetFlags trails and installs f, merging with any flags already present
// (matching bind.Bind's "merged flags = union", spec.md §4.6).
func (iv *Interval) SetFlags(tr *trail.Trail, f Flags) {
	prev := iv.flags
	tr.Push(func() { iv.flags = prev })
	iv.flags |= f
}

// AddWatcher appends w to the interval's watch list. The append is
// trailed: undoing restores the pre-append length, matching spec.md §9
// "Open-ended watcher lists ... insertions are trailed".
func (iv *Interval) AddWatcher(tr *trail.Trail, w Watcher) {
	prevLen := len(iv.watchers)
	iv.watchers = append(iv.watchers, w)
	tr.Push(func() { iv.watchers = iv.watchers[:prevLen] })
}

// Notify scans the watcher list once: watchers reporting Persistent() are
// removed in place (trailed), the rest are told MarkDirty(). This is
// spec.md §4.5's "Persistence trimming" combined with the scheduling
// trigger, run directly by IntersectSet on every successful narrowing.
func (iv *Interval) Notify(tr *trail.Trail) {
	live := iv.watchers[:0:0]
	removed := false
	for _, w := range iv.watchers {
		if w.Persistent() {
			removed = true
			continue
		}
		live = append(live, w)
		w.MarkDirty()
	}
	if removed {
		prev := iv.watchers
		tr.Push(func() { iv.watchers = prev })
		iv.watchers = live
	}
}

// Outcome classifies the result of an IntersectSet call.
type Outcome uint8

const (
	// Unchanged means the candidate bounds did not narrow the interval.
	Unchanged Outcome = iota
	// Updated means the interval narrowed but did not collapse to a point.
	Updated
	// Collapsed means the interval narrowed to a representable point.
	Collapsed
	// Failed means the candidate bounds are empty (Lo > Hi); the caller
	// must treat this as a consistency failure and trigger backtracking.
	Failed
)

// String implements fmt.Stringer for diagnostics.
func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Collapsed:
		return "collapsed"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Outcome(%d)", o)
	}
}

// IntersectSet narrows iv to the intersection of its current bounds with
// cand, per spec.md §4.2. Integer-typed intervals are re-rounded inward
// (ceil Lo, floor Hi) before the intersection is applied. Every write is
// trailed. On success (Updated or Collapsed), registered watchers are
// notified via Notify.
func (iv *Interval) IntersectSet(tr *trail.Trail, cand Bounds) (Outcome, error) {
	if cand.Lo.IsNaN() || cand.Hi.IsNaN() {
		// NaN from a contractor (e.g. 0/0) means "unbounded in this
		// direction"; re-clamp against the interval's current bound
		// instead of propagating NaN, per spec.md §4.1.
		if cand.Lo.IsNaN() {
			cand.Lo = iv.bounds.Lo
		}
		if cand.Hi.IsNaN() {
			cand.Hi = iv.bounds.Hi
		}
	}

	newLo := maxExtended(iv.bounds.Lo, cand.Lo)
	newHi := minExtended(iv.bounds.Hi, cand.Hi)

	if iv.kind == Integer {
		newLo = newLo.CeilInt()
		newHi = newHi.FloorInt()
	}

	if newLo.Cmp(newHi) > 0 {
		return Failed, ErrFailed
	}

	if newLo.Equal(iv.bounds.Lo) && newHi.Equal(iv.bounds.Hi) {
		return Unchanged, nil
	}

	prevBounds := iv.bounds
	prevCollapsed := iv.collapsed
	tr.Push(func() {
		iv.bounds = prevBounds
		iv.collapsed = prevCollapsed
	})
	iv.bounds = Bounds{Lo: newLo, Hi: newHi}
	iv.collapsed = iv.bounds.IsPoint()

	iv.Notify(tr)

	if iv.collapsed {
		return Collapsed, nil
	}
	return Updated, nil
}

func minExtended(a, b numeric.Extended) numeric.Extended {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

func maxExtended(a, b numeric.Extended) numeric.Extended {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}
