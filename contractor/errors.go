package contractor

import "errors"

// ErrUnsupportedOp indicates For was asked for an Op with no registered
// Contractor; this can only happen for a programmer error (a new Op added
// to op.go without a matching register call), since every Op above is
// registered by this package's init-time files.
var ErrUnsupportedOp = errors.New("contractor: unsupported operator")

// ErrBadArity indicates a Narrow call was given the wrong number of
// operand Bounds for its Op.
var ErrBadArity = errors.New("contractor: wrong number of arguments")
