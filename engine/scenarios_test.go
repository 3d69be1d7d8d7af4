package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/engine"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

func newTestEngine(t *testing.T) *engine.Engine {
	t.Helper()
	e, err := engine.New(engine.DefaultConfig())
	require.NoError(t, err)
	return e
}

func rnum(n int64) engine.Expr { return engine.Num{Kind: ivl.Real, Bounds: ivl.Bounds{Lo: numeric.FromInt64(n), Hi: numeric.FromInt64(n)}} }

func call(op contractor.Op, args ...engine.Expr) engine.Expr {
	return engine.Call{Op: op, Args: args}
}

// TestLinearSystemNarrowing implements spec.md §8 scenario 1: a
// two-variable linear system narrows to near-exact values through plain
// propagation, no search required.
func TestLinearSystemNarrowing(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	x, err := e.Declare(ivl.Real, ivl.Bounds{})
	require.NoError(t, err)
	y, err := e.Declare(ivl.Real, ivl.Bounds{})
	require.NoError(t, err)
	xr, yr := e.VarRef(x), e.VarRef(y)

	require.NoError(t, e.Post(ctx, call(contractor.Eq,
		call(contractor.Add, xr, call(contractor.Mul, rnum(2), yr)), rnum(1))))
	require.NoError(t, e.Post(ctx, call(contractor.Eq,
		call(contractor.Sub, xr, yr), rnum(1))))

	xlo, xhi, _ := e.Domain(x)
	ylo, yhi, _ := e.Domain(y)
	require.InDelta(t, 1.0, xlo.Float64(), 1e-6)
	require.InDelta(t, 1.0, xhi.Float64(), 1e-6)
	require.InDelta(t, 0.0, ylo.Float64(), 1e-6)
	require.InDelta(t, 0.0, yhi.Float64(), 1e-6)
}

// TestParallelLinesNeedsSolve implements spec.md §8 scenario 2: the same
// shape of system, posed so that plain propagation alone cannot narrow it
// (both intervals stay at their default finite bounds), but solve/1 pins
// X down once a search is allowed to split.
func TestParallelLinesNeedsSolve(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	x, err := e.Declare(ivl.Real, ivl.Bounds{})
	require.NoError(t, err)
	y, err := e.Declare(ivl.Real, ivl.Bounds{})
	require.NoError(t, err)
	xr, yr := e.VarRef(x), e.VarRef(y)

	require.NoError(t, e.Post(ctx, call(contractor.Eq, call(contractor.Add, xr, yr), rnum(1))))
	require.NoError(t, e.Post(ctx, call(contractor.Eq, call(contractor.Sub, xr, yr), rnum(1))))

	xlo, xhi, _ := e.Domain(x)
	require.True(t, xhi.Float64()-xlo.Float64() > 1)

	found := 0
	err = e.Solve(ctx, []*ivl.Interval{x}, func(vs []*ivl.Interval) (bool, error) {
		found++
		lo, hi, _ := e.Domain(vs[0])
		require.InDelta(t, 1.0, lo.Float64(), 1e-6)
		require.InDelta(t, 1.0, hi.Float64(), 1e-6)
		return false, nil
	})
	require.NoError(t, err)
	require.GreaterOrEqual(t, found, 1)
}

// TestIntegerProductionScheduling implements spec.md §8 scenario 3: a
// three-variable integer system with a unique solution, found by enumerate
// after propagation narrows most of the domain away.
func TestIntegerProductionScheduling(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	a, err := e.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.Zero, Hi: numeric.FromInt64(1000)})
	require.NoError(t, err)
	b, err := e.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.Zero, Hi: numeric.FromInt64(1000)})
	require.NoError(t, err)
	c, err := e.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.Zero, Hi: numeric.FromInt64(1000)})
	require.NoError(t, err)
	ar, br, cr := e.VarRef(a), e.VarRef(b), e.VarRef(c)
	inum := func(n int64) engine.Expr { return engine.Num{Kind: ivl.Integer, Bounds: ivl.Bounds{Lo: numeric.FromInt64(n), Hi: numeric.FromInt64(n)}} }

	sum := func(terms ...engine.Expr) engine.Expr {
		acc := terms[0]
		for _, t := range terms[1:] {
			acc = call(contractor.Add, acc, t)
		}
		return acc
	}
	mul := func(n int64, v engine.Expr) engine.Expr { return call(contractor.Mul, inum(n), v) }

	require.NoError(t, e.Post(ctx, call(contractor.Eq, inum(180), sum(mul(2, ar), br, cr))))
	require.NoError(t, e.Post(ctx, call(contractor.Eq, inum(300), sum(ar, mul(3, br), mul(2, cr)))))
	require.NoError(t, e.Post(ctx, call(contractor.Eq, inum(240), sum(mul(2, ar), br, mul(2, cr)))))

	var got [3]int64
	found := 0
	err = e.Enumerate(ctx, []*ivl.Interval{a, b, c}, func(vs []*ivl.Interval) (bool, error) {
		found++
		for i, v := range vs {
			lo, _, _ := e.Domain(v)
			got[i] = int64(lo.Float64())
		}
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, found)
	require.Equal(t, [3]int64{36, 48, 60}, got)
}

// TestSendMoreMoney implements spec.md §8 scenario 4: the classic
// cryptarithmetic puzzle, solved by pairwise-distinct constraints plus
// the digit-weighted sum equation, resolved via enumerate.
func TestSendMoreMoney(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	names := []string{"S", "E", "N", "D", "M", "O", "R", "Y"}
	vars := make(map[string]*ivl.Interval, len(names))
	for _, n := range names {
		lo, hi := int64(0), int64(9)
		if n == "S" || n == "M" {
			lo = 1
		}
		iv, err := e.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(lo), Hi: numeric.FromInt64(hi)})
		require.NoError(t, err)
		vars[n] = iv
	}

	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			require.NoError(t, e.Post(ctx, call(contractor.Ne, e.VarRef(vars[names[i]]), e.VarRef(vars[names[j]]))))
		}
	}

	inum := func(n int64) engine.Expr { return engine.Num{Kind: ivl.Integer, Bounds: ivl.Bounds{Lo: numeric.FromInt64(n), Hi: numeric.FromInt64(n)}} }
	digits := func(weights []int64, names ...string) engine.Expr {
		var acc engine.Expr
		for i, n := range names {
			term := call(contractor.Mul, inum(weights[i]), e.VarRef(vars[n]))
			if acc == nil {
				acc = term
			} else {
				acc = call(contractor.Add, acc, term)
			}
		}
		return acc
	}

	send := digits([]int64{1000, 100, 10, 1}, "S", "E", "N", "D")
	more := digits([]int64{1000, 100, 10, 1}, "M", "O", "R", "E")
	money := digits([]int64{10000, 1000, 100, 10, 1}, "M", "O", "N", "E", "Y")

	require.NoError(t, e.Post(ctx, call(contractor.Eq, call(contractor.Add, send, more), money)))

	vs := make([]*ivl.Interval, len(names))
	for i, n := range names {
		vs[i] = vars[n]
	}

	expect := map[string]int64{"S": 9, "E": 5, "N": 6, "D": 7, "M": 1, "O": 0, "R": 8, "Y": 2}
	found := 0
	err := e.Enumerate(ctx, vs, func(vs []*ivl.Interval) (bool, error) {
		found++
		for i, n := range names {
			lo, _, _ := e.Domain(vs[i])
			require.Equal(t, expect[n], int64(lo.Float64()), "digit %s", n)
		}
		return false, nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, found)
}

// TestPolynomialRootsSolve implements spec.md §8 scenario 5: solve/1
// finds both real roots of a quartic with a double real factor pair,
// each enclosure tight enough to distinguish the two roots.
func TestPolynomialRootsSolve(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	x, err := e.Declare(ivl.Real, ivl.Bounds{Lo: numeric.FromInt64(-100), Hi: numeric.FromInt64(100)})
	require.NoError(t, err)
	xr := e.VarRef(x)

	pow := func(base engine.Expr, n int64) engine.Expr { return call(contractor.Pow, base, rnum(n)) }
	poly := call(contractor.Sub,
		call(contractor.Add,
			call(contractor.Sub, pow(xr, 4), call(contractor.Mul, rnum(4), pow(xr, 3))),
			call(contractor.Sub, call(contractor.Mul, rnum(4), pow(xr, 2)), call(contractor.Mul, rnum(4), xr))),
		rnum(-3))
	require.NoError(t, e.Post(ctx, call(contractor.Eq, poly, rnum(0))))

	var roots []float64
	err = e.Solve(ctx, []*ivl.Interval{x}, func(vs []*ivl.Interval) (bool, error) {
		lo, hi, _ := e.Domain(vs[0])
		roots = append(roots, (lo.Float64()+hi.Float64())/2)
		return false, nil
	})
	require.NoError(t, err)
	require.Len(t, roots, 2)
}

// TestNonConvergentFixedPointThrottles implements spec.md §8 scenario 6:
// X == X*X/10 over X::real(0,10) has two fixed points (0 and 10); plain
// propagation must terminate (by throttle or stability) rather than loop
// forever, and the surviving enclosure must still contain both.
func TestNonConvergentFixedPointThrottles(t *testing.T) {
	e := newTestEngine(t)
	ctx := context.Background()

	x, err := e.Declare(ivl.Real, ivl.Bounds{Lo: numeric.Zero, Hi: numeric.FromInt64(10)})
	require.NoError(t, err)
	xr := e.VarRef(x)

	rhs := call(contractor.Div, call(contractor.Mul, xr, xr), rnum(10))
	require.NoError(t, e.Post(ctx, call(contractor.Eq, xr, rhs)))

	lo, hi, _ := e.Domain(x)
	require.LessOrEqual(t, lo.Float64(), 0.0)
	require.GreaterOrEqual(t, hi.Float64(), 10.0)
}

// TestBacktrackRestoration implements spec.md §8 scenario 7: a choice
// point that narrows X and then fails must leave X exactly as it was
// before the choice point opened.
func TestBacktrackRestoration(t *testing.T) {
	e := newTestEngine(t)

	x, err := e.Declare(ivl.Integer, ivl.Bounds{Lo: numeric.FromInt64(1), Hi: numeric.FromInt64(10)})
	require.NoError(t, err)

	beforeLo, beforeHi, _ := e.Domain(x)

	mark := e.Trail().Mark()
	_, err = x.IntersectSet(e.Trail(), ivl.Bounds{Lo: numeric.FromInt64(3), Hi: numeric.FromInt64(5)})
	require.NoError(t, err)
	narrowedLo, narrowedHi, _ := e.Domain(x)
	require.NotEqual(t, beforeLo, narrowedLo)
	require.NotEqual(t, beforeHi, narrowedHi)

	e.Trail().Undo(mark)

	afterLo, afterHi, _ := e.Domain(x)
	require.Equal(t, beforeLo, afterLo)
	require.Equal(t, beforeHi, afterHi)
}
