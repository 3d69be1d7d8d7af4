package compile

import "errors"

// ErrUnknownExpr indicates Compile was handed an Expr implementation this
// package doesn't know (only Num, VarRef, and Call are expected); this
// can only happen if a caller defines its own Expr type, since isExpr is
// otherwise unexported.
var ErrUnknownExpr = errors.New("compile: unrecognized expression node")

// ErrAssertArity indicates Assert was given an Op whose Arity isn't the
// binary, no-output-operand shape Subset/Superset use.
var ErrAssertArity = errors.New("compile: Assert requires a binary relation operator")
