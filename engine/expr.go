package engine

import "github.com/boundedlogic/clpbnr/compile"

// Expr aliases compile.Expr so callers building constraint trees against
// this façade don't need a separate import, matching spec.md §6's
// Post(Expr) signature.
type Expr = compile.Expr

// Num, Call, and VarRef re-export compile's Expr constructors for the
// same reason.
type (
	Num    = compile.Num
	Call   = compile.Call
	VarRef = compile.VarRef
)
