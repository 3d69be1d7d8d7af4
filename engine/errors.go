package engine

import (
	stderrors "errors"
)

// Sentinel errors for the engine façade, per spec.md §7's error taxonomy
// mapped onto Go. Call sites that need a stack trace for trace/debug
// builds wrap these with github.com/pkg/errors.Wrap (see engine.go), which
// stays errors.Is-comparable to the sentinel here, following the same
// sentinel-plus-wrapping discipline as builder/errors.go.
var (
	// ErrUnsupportedOperator indicates Post/Assert was given an Expr
	// using an operator outside spec.md §6's accepted set. Raised before
	// any state mutates, per spec.md §7 "Type error at the boundary".
	ErrUnsupportedOperator = stderrors.New("engine: unsupported operator")

	// ErrNonNumericDomain indicates Declare was asked for a Kind this
	// engine doesn't recognize.
	ErrNonNumericDomain = stderrors.New("engine: non-numeric domain")

	// ErrNotBoolean indicates Post was given an Expr whose compiled
	// result is not Integer-typed, i.e. not something that can be
	// asserted to 1 as spec.md §6 "{...}"
	// requires ("Each Ci is a boolean expression that must evaluate to
	// 1").
	ErrNotBoolean = stderrors.New("engine: constraint does not evaluate to a boolean")

	// ErrNoIEEESupport surfaces a host environment error at New, per
	// spec.md §7 "detected at initialisation": New wraps it around a
	// failed numeric.SelfTest. New never returns
	// ErrUnboundedIntegerUnsupported; no check in this module produces it.
	// Go's math/big and math packages always satisfy both requirements on
	// every supported platform; New's self-test exists to fail loudly
	// rather than to catch a realistic failure, per spec.md §7.
	ErrUnboundedIntegerUnsupported = stderrors.New("engine: host lacks unbounded integer support")
	ErrNoIEEESupport               = stderrors.New("engine: host floating point is not IEEE-754 compliant")
)
