package ivl

import "github.com/boundedlogic/clpbnr/numeric"

// Kind is an interval's type tag. Boolean is not a distinct Kind: it is an
// Integer interval whose bounds are intersected to [0,1] at declaration.
type Kind uint8

const (
	// Real intervals enclose a subset of the reals.
	Real Kind = iota
	// Integer intervals are re-rounded inward (ceil Lo, floor Hi) on every
	// update, per spec.md §4.2 "Integer type discipline".
	Integer
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	if k == Integer {
		return "integer"
	}
	return "real"
}

// Bounds is a candidate or current (Lo, Hi) pair. Bounds values are
// immutable; Interval.IntersectSet takes one by value and never mutates
// its argument.
type Bounds struct {
	Lo, Hi numeric.Extended
}

// IsPoint reports whether Lo == Hi, i.e. the bounds denote a single value.
func (b Bounds) IsPoint() bool {
	return !b.Lo.IsNaN() && !b.Hi.IsNaN() && b.Lo.Equal(b.Hi)
}

// Valid reports whether Lo <= Hi, the invariant every Interval must
// maintain (spec.md §3 "L <= H always").
func (b Bounds) Valid() bool {
	if b.Lo.IsNaN() || b.Hi.IsNaN() {
		return false
	}
	return b.Lo.Cmp(b.Hi) <= 0
}

// Width returns Hi - Lo, rounded outward toward +Inf (spec.md §4.7
// "delta"), i.e. an enclosure of the true width.
func (b Bounds) Width() numeric.Extended {
	return numeric.SubHi(b.Hi, b.Lo)
}

// Flags is a small unordered set of per-interval annotations, spec.md §3
// "flags: ... e.g., watch(Action) for tracing".
type Flags uint8

const (
	FlagNone     Flags = 0
	FlagWatchLog Flags = 1 << iota
	FlagWatchTrace
)

// Has reports whether f contains bit.
func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// Watcher is whatever a Node-like consumer implements to be notified when
// an Interval it watches narrows. Defining it here, rather than importing
// package propagate's concrete Node type, keeps ivl leaf-level and lets
// propagate depend on ivl without a cycle.
type Watcher interface {
	// MarkDirty is called once per narrowing event. Implementations
	// should be idempotent against being notified for more than one
	// narrowed operand of the same node in a single propagation round
	// (a propagate.Node tracks its own "linked" bit for this reason).
	MarkDirty()

	// Persistent reports whether this watcher can never produce further
	// narrowing and should be pruned from the watch list it is found on,
	// per spec.md §4.5 "Persistence trimming".
	Persistent() bool
}

// Keyed is an optional interface a Watcher can implement to support the
// structural-equality duplicate suppression spec.md §4.6 requires when
// two watch lists are merged on variable unification: two watchers with
// the same Key are considered the same (Op, operand-vector) node.
type Keyed interface {
	Key() string
}
