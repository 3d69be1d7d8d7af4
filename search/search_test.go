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

func TestMidpointOfFullyUnboundedIsZero(t *testing.T) {
	b := ivl.Bounds{Lo: numeric.NegInf, Hi: numeric.PosInf}
	m := search.Midpoint(b)
	require.True(t, m.Equal(numeric.Zero))
}

func TestMidpointDeltaMedianOnPointInterval(t *testing.T) {
	b := ivl.Bounds{Lo: numeric.FromInt64(5), Hi: numeric.FromInt64(5)}
	require.True(t, search.Midpoint(b).Equal(numeric.FromInt64(5)))
	require.True(t, search.Median(b).Equal(numeric.FromInt64(5)))
	require.True(t, search.Delta(b).Equal(numeric.Zero))
}

func TestMedianOfIntervalContainingZeroIsZero(t *testing.T) {
	b := ivl.Bounds{Lo: numeric.FromInt64(-3), Hi: numeric.FromInt64(5)}
	require.True(t, search.Median(b).Equal(numeric.Zero))
}

func TestMedianOfNegativeIntervalIsNegative(t *testing.T) {
	b := ivl.Bounds{Lo: numeric.FromInt64(-9), Hi: numeric.FromInt64(-1)}
	m := search.Median(b)
	require.True(t, m.Sign() < 0)
}

func TestSolveFindsPositiveRootOfXSquared(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	node, err := sched.NewNode(tr, contractor.Mul, []*ivl.Interval{x, x, mustPoint(t, store, 4)})
	require.NoError(t, err)
	_, err = sched.Run(context.Background(), tr, []*propagate.Node{node})
	require.NoError(t, err)

	var found []ivl.Bounds
	err = search.Solve(context.Background(), sched, tr, []*ivl.Interval{x}, search.DefaultConfig(),
		func(vs []*ivl.Interval) (bool, error) {
			found = append(found, vs[0].Bounds())
			return false, nil
		})
	require.NoError(t, err)
	require.NotEmpty(t, found)
	for _, b := range found {
		require.True(t, b.Lo.Float64() <= 2.01)
		require.True(t, b.Hi.Float64() >= 1.99)
	}
}

func TestEnumerateVisitsEachIntegerValue(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(1), Hi: numeric.FromInt64(3)})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	var seen []int64
	err = search.Enumerate(context.Background(), sched, tr, []*ivl.Interval{x},
		func(vs []*ivl.Interval) (bool, error) {
			seen = append(seen, int64(vs[0].Bounds().Lo.Float64()))
			return false, nil
		})
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, seen)
}

func TestEnumerateRejectsRealInterval(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(1)})
	require.NoError(t, err)
	sched := propagate.NewScheduler()

	err = search.Enumerate(context.Background(), sched, tr, []*ivl.Interval{x}, func(vs []*ivl.Interval) (bool, error) {
		return false, nil
	})
	require.ErrorIs(t, err, search.ErrNotInteger)
}

func TestAbsolveTightensUpperBoundToFeasibleEdge(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	v, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)
	k, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(3), Hi: numeric.FromInt64(3)})
	require.NoError(t, err)
	boolZ, err := store.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(1), Hi: numeric.FromInt64(1)})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	// v <= k (forced true): rules out any point of v above 3.
	_, err = sched.NewNode(tr, contractor.Le, []*ivl.Interval{v, k, boolZ})
	require.NoError(t, err)

	err = search.Absolve(context.Background(), sched, tr, v, search.DefaultConfig())
	require.NoError(t, err)
	require.True(t, v.Bounds().Hi.Float64() <= 3.0001)
}

func TestGlobalMinimumFindsMinimumOfSquare(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(-5), Hi: numeric.FromInt64(5)})
	require.NoError(t, err)
	z, err := store.Declare(ivl.Real, ivl.Bounds{})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	node, err := sched.NewNode(tr, contractor.Mul, []*ivl.Interval{x, x, z})
	require.NoError(t, err)
	_, err = sched.Run(context.Background(), tr, []*propagate.Node{node})
	require.NoError(t, err)

	result, err := search.GlobalMinimum(context.Background(), sched, tr, z, []*ivl.Interval{x}, search.DefaultConfig())
	require.NoError(t, err)
	require.True(t, result.Lo.Float64() <= 0.001)
	require.True(t, result.Hi.Float64() >= -0.001)
}

func mustPoint(t *testing.T, store *ivl.Store, n int64) *ivl.Interval {
	t.Helper()
	iv, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(n), Hi: numeric.FromInt64(n)})
	require.NoError(t, err)
	return iv
}
