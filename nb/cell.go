package nb

import "github.com/boundedlogic/clpbnr/numeric"

// Cell holds a non-backtrackable numeric value, per spec.md §4.7
// global_minimum/global_maximum's "non-backtrackable upper bound on the
// minimum". Unlike every other piece of mutable state in this module, a
// Cell is not trailed: search's branch-and-bound loop writes through it
// directly so the best bound found in one branch survives backtracking
// into the next, exactly the way graph.Dijkstra's dist map is updated in
// place rather than undone per-edge-relaxation-attempt.
//
// A Cell is not safe for concurrent use, consistent with spec.md §5's
// single-threaded cooperative scheduling model.
type Cell struct {
	value numeric.Extended
	set   bool
}

// NewCell returns an empty Cell with no value set.
func NewCell() *Cell { return &Cell{} }

// Value reports the cell's current value and whether one has been set.
func (c *Cell) Value() (numeric.Extended, bool) { return c.value, c.set }

// TightenNonBacktrackable replaces the cell's value with cand if the cell
// is empty or cand strictly improves on the current value, where
// improvement is judged by better(cand, current). It returns whether the
// cell's value changed. The write is unconditional and not trailed: it
// survives any later trail.Undo.
func (c *Cell) TightenNonBacktrackable(cand numeric.Extended, better func(cand, current numeric.Extended) bool) bool {
	if !c.set {
		c.value = cand
		c.set = true
		return true
	}
	if better(cand, c.value) {
		c.value = cand
		return true
	}
	return false
}

// Less is a better func for global_minimum: smaller is an improvement.
func Less(cand, current numeric.Extended) bool { return cand.Cmp(current) < 0 }

// Greater is a better func for global_maximum: larger is an improvement.
func Greater(cand, current numeric.Extended) bool { return cand.Cmp(current) > 0 }
