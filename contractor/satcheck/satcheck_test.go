package satcheck_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/contractor/satcheck"
)

func TestConsistentBooleanSatisfiable(t *testing.T) {
	p := satcheck.New()
	a := p.NewVar()
	b := p.NewVar()
	p.AddClause(satcheck.Pos(a), satcheck.Pos(b))
	p.AddClause(satcheck.Not(a), satcheck.Pos(b))

	sat, err := satcheck.ConsistentBoolean(p)
	require.NoError(t, err)
	require.True(t, sat)
	require.True(t, p.Model(b))
}

func TestConsistentBooleanUnsatisfiable(t *testing.T) {
	p := satcheck.New()
	a := p.NewVar()
	p.AddClause(satcheck.Pos(a))
	p.AddClause(satcheck.Not(a))

	sat, err := satcheck.ConsistentBoolean(p)
	require.NoError(t, err)
	require.False(t, sat)
}
