package telemetry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/telemetry"
	"github.com/boundedlogic/clpbnr/trail"
)

func TestCountersIncrementAndSnapshot(t *testing.T) {
	tr := trail.New()
	c := telemetry.NewCounters()

	c.IncNarrowing(tr)
	c.IncNarrowing(tr)
	c.IncFailure(tr)
	c.IncIterationUsed(tr)
	c.SetNodesTotal(tr, 3)

	snap := c.Snapshot()
	require.Equal(t, 2.0, snap.NarrowingOps)
	require.Equal(t, 1.0, snap.Failures)
	require.Equal(t, 1.0, snap.IterationBudgetUsed)
	require.Equal(t, 3.0, snap.NodesTotal)
}

func TestCountersRestoreOnBacktrack(t *testing.T) {
	tr := trail.New()
	c := telemetry.NewCounters()

	c.IncNarrowing(tr)
	mark := tr.Mark()
	c.IncNarrowing(tr)
	c.IncFailure(tr)
	c.SetNodesTotal(tr, 5)

	require.Equal(t, 2.0, c.Snapshot().NarrowingOps)
	tr.Undo(mark)

	snap := c.Snapshot()
	require.Equal(t, 1.0, snap.NarrowingOps)
	require.Equal(t, 0.0, snap.Failures)
	require.Equal(t, 0.0, snap.NodesTotal)
}

func TestCountersRegistryIsGatherable(t *testing.T) {
	c := telemetry.NewCounters()
	tr := trail.New()
	c.IncNarrowing(tr)

	mfs, err := c.Registry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}
