package propagate

import "errors"

// ErrUnsupportedOp indicates NewNode was asked to build a Node for an Op
// with no registered contractor.Contractor.
var ErrUnsupportedOp = errors.New("propagate: unsupported operator")

// ErrBadArity indicates NewNode was given the wrong number of operand
// Intervals for the Op's documented arity.
var ErrBadArity = errors.New("propagate: wrong number of operands for operator")
