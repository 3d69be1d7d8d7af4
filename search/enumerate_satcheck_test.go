package search_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/search"
	"github.com/boundedlogic/clpbnr/trail"
)

func boolPoint(t *testing.T, store *ivl.Store, v int64) *ivl.Interval {
	t.Helper()
	iv, err := store.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(v), Hi: numeric.FromInt64(v)})
	require.NoError(t, err)
	return iv
}

// TestEnumeratePrunesGloballyUnsatisfiableBooleanNetwork builds A=1 (fixed),
// Z = not A, W = A and Z, W=1 (fixed) -- a contradiction no single node's
// local contractor detects before the scheduler runs, but the boolean
// sub-network as a whole has no assignment. Enumerate must report no
// solutions (visit never called) without it, catching the inconsistency
// via the global SAT pre-check rather than by exhausting Z's domain.
func TestEnumeratePrunesGloballyUnsatisfiableBooleanNetwork(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	sched := propagate.NewScheduler()

	a := boolPoint(t, store, 1)
	z, err := store.DeclareBoolean()
	require.NoError(t, err)
	w := boolPoint(t, store, 1)

	_, err = sched.NewNode(tr, contractor.Not, []*ivl.Interval{a, z})
	require.NoError(t, err)
	_, err = sched.NewNode(tr, contractor.And, []*ivl.Interval{a, z, w})
	require.NoError(t, err)

	visited := 0
	err = search.Enumerate(context.Background(), sched, tr, []*ivl.Interval{a, z, w}, func(vs []*ivl.Interval) (bool, error) {
		visited++
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, 0, visited)
}

// TestEnumerateAndGateFindsOnlySatisfyingAssignment builds A=1 (fixed),
// W=0 (fixed), B=DeclareBoolean, and an And node over [A,B,W]: the only
// assignment consistent with AND(1,B)=0 is B=0. This is a regression test
// for a Tseitin clause-polarity bug in the global boolean SAT pre-check
// that previously reported this satisfiable network as UNSAT
// unconditionally (violating spec.md §8's soundness invariant -- the
// engine must never prune a solution that satisfies every constraint).
func TestEnumerateAndGateFindsOnlySatisfyingAssignment(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	sched := propagate.NewScheduler()

	a := boolPoint(t, store, 1)
	w := boolPoint(t, store, 0)
	b, err := store.DeclareBoolean()
	require.NoError(t, err)

	_, err = sched.NewNode(tr, contractor.And, []*ivl.Interval{a, b, w})
	require.NoError(t, err)

	var got []int64
	err = search.Enumerate(context.Background(), sched, tr, []*ivl.Interval{b}, func(vs []*ivl.Interval) (bool, error) {
		got = append(got, int64(vs[0].Bounds().Lo.Float64()))
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, []int64{0}, got)
}

// TestEnumerateAllowsSatisfiableBooleanNetwork is the mirror-image sanity
// check: a boolean network with at least one valid assignment must still
// let Enumerate explore it normally.
func TestEnumerateAllowsSatisfiableBooleanNetwork(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	sched := propagate.NewScheduler()

	a, err := store.DeclareBoolean()
	require.NoError(t, err)
	z, err := store.DeclareBoolean()
	require.NoError(t, err)

	_, err = sched.NewNode(tr, contractor.Not, []*ivl.Interval{a, z})
	require.NoError(t, err)

	visited := 0
	err = search.Enumerate(context.Background(), sched, tr, []*ivl.Interval{a, z}, func(vs []*ivl.Interval) (bool, error) {
		visited++
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, 2, visited)
}
