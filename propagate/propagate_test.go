package propagate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

func declare(t *testing.T, s *ivl.Store, lo, hi int64) *ivl.Interval {
	t.Helper()
	iv, err := s.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(lo), Hi: numeric.FromInt64(hi)})
	require.NoError(t, err)
	return iv
}

func TestRunPropagatesAddUntilFixedPoint(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x := declare(t, store, 0, 10)
	y := declare(t, store, 0, 10)
	z, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(5), Hi: numeric.FromInt64(5)})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	node, err := sched.NewNode(tr, contractor.Add, []*ivl.Interval{x, y, z})
	require.NoError(t, err)

	stats, err := sched.Run(context.Background(), tr, []*propagate.Node{node})
	require.NoError(t, err)
	require.GreaterOrEqual(t, stats.NodesFired, 1)
	require.True(t, x.Bounds().Hi.Equal(numeric.FromInt64(5)))
	require.True(t, y.Bounds().Hi.Equal(numeric.FromInt64(5)))
}

func TestRunPropagatesChainedNodesViaWatchers(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	// X + Y = Z, Z - W = 0  (i.e. Z == W), with W fixed to 5.
	x := declare(t, store, 0, 10)
	y := declare(t, store, 0, 10)
	z := declare(t, store, 0, 20)
	w, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(5), Hi: numeric.FromInt64(5)})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	addNode, err := sched.NewNode(tr, contractor.Add, []*ivl.Interval{x, y, z})
	require.NoError(t, err)
	subNode, err := sched.NewNode(tr, contractor.Sub, []*ivl.Interval{z, w, zeroInterval(t, store, tr)})
	require.NoError(t, err)

	_, err = sched.Run(context.Background(), tr, []*propagate.Node{addNode, subNode})
	require.NoError(t, err)
	require.True(t, z.Bounds().Hi.Equal(numeric.FromInt64(5)))
}

func zeroInterval(t *testing.T, s *ivl.Store, tr *trail.Trail) *ivl.Interval {
	t.Helper()
	iv, err := s.Declare(ivl.Real, ivl.Bounds{Lo: numeric.Zero, Hi: numeric.Zero})
	require.NoError(t, err)
	return iv
}

func TestRunFailsOnInconsistentConstraint(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x := declare(t, store, 0, 1)
	y := declare(t, store, 5, 10)
	eqTrue, err := store.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(1), Hi: numeric.FromInt64(1)})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	node, err := sched.NewNode(tr, contractor.Eq, []*ivl.Interval{x, y, eqTrue})
	require.NoError(t, err)

	_, err = sched.Run(context.Background(), tr, []*propagate.Node{node})
	require.ErrorIs(t, err, ivl.ErrFailed)
}

func TestRunHonorsIterationLimitWhenNotSignificant(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	// X == X*X/10 over [0,10]: a fixed point at 0 and 10, with a wide
	// region of slow, non-convergent narrowing between -- the throttle
	// must terminate the round rather than loop indefinitely.
	x := declare(t, store, 0, 10)
	xx, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.Zero, Hi: numeric.FromInt64(100)})
	require.NoError(t, err)
	tenth, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(10), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)

	sched := propagate.NewScheduler(propagate.WithIterationLimit(50))
	mulNode, err := sched.NewNode(tr, contractor.Mul, []*ivl.Interval{x, x, xx})
	require.NoError(t, err)
	divNode, err := sched.NewNode(tr, contractor.Div, []*ivl.Interval{xx, tenth, x})
	require.NoError(t, err)

	stats, err := sched.Run(context.Background(), tr, []*propagate.Node{mulNode, divNode})
	require.NoError(t, err)
	require.LessOrEqual(t, x.Bounds().Lo.Float64(), 0.0)
	require.GreaterOrEqual(t, x.Bounds().Hi.Float64(), 10.0)
	_ = stats
}
