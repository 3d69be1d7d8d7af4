package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boundedlogic/clpbnr/compile"
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/engine"
)

func TestParseExprStringArithmeticPrecedence(t *testing.T) {
	vars := map[string]engine.Expr{}
	e, err := parseExprString("1 + 2 * 3", vars)
	require.NoError(t, err)

	call, ok := e.(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Add, call.Op)

	rhs, ok := call.Args[1].(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Mul, rhs.Op)
}

func TestParseExprStringComparisonAndBooleanConnective(t *testing.T) {
	vars := map[string]engine.Expr{}
	e, err := parseExprString("1 < 2 and 3 <= 4", vars)
	require.NoError(t, err)

	call, ok := e.(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.And, call.Op)

	left, ok := call.Args[0].(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Lt, left.Op)

	right, ok := call.Args[1].(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Le, right.Op)
}

func TestParseExprStringResolvesDeclaredVariable(t *testing.T) {
	x := engine.VarRef{}
	vars := map[string]engine.Expr{"X": x}
	e, err := parseExprString("X + 1", vars)
	require.NoError(t, err)

	call, ok := e.(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Add, call.Op)
	require.Equal(t, x, call.Args[0])
}

func TestParseExprStringUndeclaredVariableErrors(t *testing.T) {
	_, err := parseExprString("Y + 1", map[string]engine.Expr{})
	require.Error(t, err)
}

func TestParseExprStringFunctionCallAndPowRightAssociative(t *testing.T) {
	vars := map[string]engine.Expr{}
	e, err := parseExprString("sqrt(2 ** 3 ** 2)", vars)
	require.NoError(t, err)

	call, ok := e.(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Sqrt, call.Op)

	pow, ok := call.Args[0].(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Pow, pow.Op)

	innerPow, ok := pow.Args[1].(compile.Call)
	require.True(t, ok)
	require.Equal(t, contractor.Pow, innerPow.Op)
}

func TestParseDeclareLineWithBounds(t *testing.T) {
	d, err := parseDeclareLine("declare X real(0,10)")
	require.NoError(t, err)
	require.Equal(t, "X", d.name)
	require.True(t, d.hasBounds)
	require.False(t, d.bool)
}

func TestParseDeclareLineBoolean(t *testing.T) {
	d, err := parseDeclareLine("declare B boolean")
	require.NoError(t, err)
	require.True(t, d.bool)
	require.False(t, d.hasBounds)
}
