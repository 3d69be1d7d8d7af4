package ivl_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/trail"
)

// fakeWatcher is a minimal ivl.Watcher for exercising notification and
// persistence trimming without depending on package propagate.
type fakeWatcher struct {
	dirty      int
	persistent bool
}

func (w *fakeWatcher) MarkDirty()     { w.dirty++ }
func (w *fakeWatcher) Persistent() bool { return w.persistent }

func TestIntersectSetNarrowsAndCollapses(t *testing.T) {
	tr := trail.New()
	s := ivl.NewStore(tr)
	iv, err := s.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)

	outcome, err := iv.IntersectSet(tr, ivl.Bounds{Lo: numeric.FromInt64(3), Hi: numeric.FromInt64(3)})
	require.NoError(t, err)
	require.Equal(t, ivl.Collapsed, outcome)
	require.True(t, iv.Collapsed())
}

func TestIntersectSetFailsOnEmptyResult(t *testing.T) {
	tr := trail.New()
	s := ivl.NewStore(tr)
	iv, _ := s.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})

	outcome, err := iv.IntersectSet(tr, ivl.Bounds{Lo: numeric.FromInt64(20), Hi: numeric.FromInt64(30)})
	require.ErrorIs(t, err, ivl.ErrFailed)
	require.Equal(t, ivl.Failed, outcome)
}

func TestIntegerIntersectSetRoundsInward(t *testing.T) {
	tr := trail.New()
	s := ivl.NewStore(tr)
	iv, _ := s.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})

	_, err := iv.IntersectSet(tr, ivl.Bounds{Lo: numeric.FromFloat64(2.1), Hi: numeric.FromFloat64(7.9)})
	require.NoError(t, err)
	require.Equal(t, "3", iv.Bounds().Lo.String())
	require.Equal(t, "7", iv.Bounds().Hi.String())
}

func TestNotifyFiresWatchersAndTrimsPersistent(t *testing.T) {
	tr := trail.New()
	s := ivl.NewStore(tr)
	iv, _ := s.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})

	live := &fakeWatcher{}
	dead := &fakeWatcher{persistent: true}
	iv.AddWatcher(tr, live)
	iv.AddWatcher(tr, dead)

	_, err := iv.IntersectSet(tr, ivl.Bounds{Lo: numeric.FromInt64(1), Hi: numeric.FromInt64(9)})
	require.NoError(t, err)
	require.Equal(t, 1, live.dirty)
	require.Len(t, iv.Watchers(), 1)
}

func TestBacktrackRestoresBoundsAndWatchers(t *testing.T) {
	tr := trail.New()
	s := ivl.NewStore(tr)
	iv, _ := s.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(1), Hi: numeric.FromInt64(10)})

	mark := tr.Mark()
	w := &fakeWatcher{}
	iv.AddWatcher(tr, w)
	_, err := iv.IntersectSet(tr, ivl.Bounds{Lo: numeric.FromInt64(3), Hi: numeric.FromInt64(5)})
	require.NoError(t, err)

	tr.Undo(mark)

	require.Equal(t, "1", iv.Bounds().Lo.String())
	require.Equal(t, "10", iv.Bounds().Hi.String())
	require.Empty(t, iv.Watchers())
}
