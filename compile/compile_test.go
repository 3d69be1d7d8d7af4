package compile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/compile"
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

func TestConstantFoldFoldsGroundArithmetic(t *testing.T) {
	e := compile.Call{Op: contractor.Add, Args: []compile.Expr{
		compile.RealNum(numeric.FromInt64(2)),
		compile.RealNum(numeric.FromInt64(3)),
	}}
	folded := compile.Simplify(e, compile.ConstantFold)
	n, ok := folded.(compile.Num)
	require.True(t, ok)
	require.True(t, n.Bounds.IsPoint())
	require.True(t, n.Bounds.Lo.Equal(numeric.FromInt64(5)))
}

func TestFoldNegNegCancels(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)

	e := compile.Call{Op: contractor.Neg, Args: []compile.Expr{
		compile.Call{Op: contractor.Neg, Args: []compile.Expr{compile.VarRef{Interval: x}}},
	}}
	simplified := compile.Simplify(e, compile.FoldNegNeg)
	ref, ok := simplified.(compile.VarRef)
	require.True(t, ok)
	require.Same(t, x, ref.Interval)
}

func TestFoldPowSquareRewritesToMul(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(-3), Hi: numeric.FromInt64(3)})
	require.NoError(t, err)

	e := compile.Call{Op: contractor.Pow, Args: []compile.Expr{compile.VarRef{Interval: x}, compile.IntNum(2)}}
	simplified := compile.Simplify(e, compile.FoldPowSquare)
	call, ok := simplified.(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Mul, call.Op)
}

func TestCompilerBuildsRunnableNodeForLinearConstraint(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)
	y, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)

	sched := propagate.NewScheduler()
	c := compile.NewCompiler(store, sched, compile.Config{})

	// X + Y
	sum, nodes, err := c.Compile(tr, compile.Call{Op: contractor.Add, Args: []compile.Expr{
		compile.VarRef{Interval: x}, compile.VarRef{Interval: y},
	}})
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	_, err = sum.IntersectSet(tr, ivl.Bounds{Lo: numeric.FromInt64(5), Hi: numeric.FromInt64(5)})
	require.NoError(t, err)

	_, err = sched.Run(context.Background(), tr, nodes)
	require.NoError(t, err)
	require.True(t, x.Bounds().Hi.Equal(numeric.FromInt64(5)))
	require.True(t, y.Bounds().Hi.Equal(numeric.FromInt64(5)))
}

func TestPartialDerivativeOfProductRule(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	x, err := store.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(0), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)

	// d/dx (X * X) == 1*X + X*1: DefaultRewrites has no multiplicative
	// identity rule, so the product-rule terms are left as written --
	// checking the top-level structural shape only.
	expr := compile.Call{Op: contractor.Mul, Args: []compile.Expr{
		compile.VarRef{Interval: x}, compile.VarRef{Interval: x},
	}}
	d := compile.PartialDerivative(expr, x)
	call, ok := d.(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Add, call.Op)
}

func TestAssertRejectsNonRelationOp(t *testing.T) {
	tr := trail.New()
	store := ivl.NewStore(tr)
	sched := propagate.NewScheduler()
	c := compile.NewCompiler(store, sched, compile.Config{})

	_, err := c.Assert(tr, contractor.Add, compile.IntNum(1), compile.IntNum(2))
	require.ErrorIs(t, err, compile.ErrAssertArity)
}
