package ivl

import (
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/trail"
)

// DefaultRealBound and DefaultIntegerBound are the magnitude used for an
// unbounded declaration, per spec.md §6 ("defaults: real +/- 10^16,
// integer +/- host's tagged integer range"). Go has no small-integer tag
// limit, so the integer default simply reuses the same magnitude.
const (
	DefaultRealBound    = 1e16
	DefaultIntegerBound = 1e16
)

// Store allocates Intervals and is the owning registry spec.md §3
// "Ownership" describes: "Each interval is owned by the host's variable-
// binding layer" — here, whichever Store.Declare created it.
type Store struct {
	tr   *trail.Trail
	next ID
	byID map[ID]*Interval
}

// NewStore returns a Store that trails its declarations' bookkeeping onto
// tr. tr is also the Trail callers must pass to IntersectSet on Intervals
// this Store creates, so that backtracking restores both bounds and the
// registry's membership consistently.
func NewStore(tr *trail.Trail) *Store {
	return &Store{tr: tr, byID: make(map[ID]*Interval)}
}

// Declare creates a new Interval of the given kind and bounds. A zero
// Bounds (both fields the zero Extended) is replaced by the type's default
// bounds, matching spec.md §6 "X :: real with no bounds -- defaults to the
// finite default bounds". Boolean declarations should pass Integer with
// Bounds{0,1} (or call DeclareBoolean).
func (s *Store) Declare(kind Kind, bounds Bounds) (*Interval, error) {
	if bounds == (Bounds{}) {
		bounds = defaultBounds(kind)
	}
	if kind == Integer {
		bounds.Lo = bounds.Lo.CeilInt()
		bounds.Hi = bounds.Hi.FloorInt()
	}
	if !bounds.Valid() {
		return nil, ErrInvalidBounds
	}

	s.next++
	id := s.next
	iv := &Interval{id: id, kind: kind, bounds: bounds, collapsed: bounds.IsPoint()}
	s.byID[id] = iv

	tr := s.tr
	tr.Push(func() { delete(s.byID, id) })

	return iv, nil
}

// DeclareBoolean creates an Integer interval intersected to [0,1], per
// spec.md §3 "Boolean is encoded as integer with bounds (0,1)".
func (s *Store) DeclareBoolean() (*Interval, error) {
	return s.Declare(Integer, Bounds{Lo: numeric.Zero, Hi: numeric.FromInt64(1)})
}

// Get returns the interval with the given ID, if it is still live.
func (s *Store) Get(id ID) (*Interval, bool) {
	iv, ok := s.byID[id]
	return iv, ok
}

// Len returns the number of live intervals, used by telemetry's node-count
// style gauges.
func (s *Store) Len() int { return len(s.byID) }

// Trail returns the Trail this Store (and the Intervals it created) should
// be mutated through.
func (s *Store) Trail() *trail.Trail { return s.tr }

func defaultBounds(kind Kind) Bounds {
	if kind == Integer {
		return Bounds{Lo: numeric.FromFloat64(-DefaultIntegerBound), Hi: numeric.FromFloat64(DefaultIntegerBound)}
	}
	return Bounds{Lo: numeric.FromFloat64(-DefaultRealBound), Hi: numeric.FromFloat64(DefaultRealBound)}
}
