package contractor

import "github.com/boundedlogic/clpbnr/ivl"

// Op identifies a primitive relation. The operand-vector convention for
// each Op's Contractor.Narrow is documented on the Op constant itself.
type Op uint8

const (
	// Add is the ternary Z = X + Y. Args: [X, Y, Z].
	Add Op = iota
	// Sub is the ternary Z = X - Y. Args: [X, Y, Z].
	Sub
	// Neg is the binary Z = -X. Args: [X, Z].
	Neg
	// Mul is the ternary Z = X * Y. Args: [X, Y, Z].
	Mul
	// Div is the ternary Z = X / Y. Args: [X, Y, Z].
	Div
	// Pow is the ternary Z = X ** Y. Args: [X, Y, Z].
	Pow
	// Abs is the binary Z = |X|. Args: [X, Z].
	Abs
	// Min is the ternary Z = min(X, Y). Args: [X, Y, Z].
	Min
	// Max is the ternary Z = max(X, Y). Args: [X, Y, Z].
	Max
	// Sqrt is the binary Z = sqrt(X). Args: [X, Z].
	Sqrt
	// Exp is the binary Z = e**X. Args: [X, Z].
	Exp
	// Log is the binary Z = ln(X). Args: [X, Z].
	Log
	// Sin is the binary Z = sin(X). Args: [X, Z].
	Sin
	// Cos is the binary Z = cos(X). Args: [X, Z].
	Cos
	// Tan is the binary Z = tan(X). Args: [X, Z].
	Tan
	// Eq is the ternary boolean Z = (X == Y). Args: [X, Y, Z].
	Eq
	// Ne is the ternary boolean Z = (X != Y). Args: [X, Y, Z].
	Ne
	// Le is the ternary boolean Z = (X <= Y). Args: [X, Y, Z].
	Le
	// Lt is the ternary boolean Z = (X < Y). Args: [X, Y, Z].
	Lt
	// Subset is the binary X subseteq Y: narrows X to X and Y. Args: [X, Y].
	Subset
	// Superset is the binary X supseteq Y: narrows Y to X and Y. Args: [X, Y].
	Superset
	// Not is the binary boolean Z = not X. Args: [X, Z].
	Not
	// And is the ternary boolean Z = X and Y. Args: [X, Y, Z].
	And
	// Or is the ternary boolean Z = X or Y. Args: [X, Y, Z].
	Or
	// Xor is the ternary boolean Z = X xor Y. Args: [X, Y, Z].
	Xor
	// Nand is the ternary boolean Z = not(X and Y). Args: [X, Y, Z].
	Nand
	// Nor is the ternary boolean Z = not(X or Y). Args: [X, Y, Z].
	Nor
	// Imb is the ternary boolean Z = (X implies Y). Args: [X, Y, Z].
	Imb
	// Integral coerces a real-derived interval to integer bounds. Args:
	// [X, Z] where Z is the integer-typed interval and X is its real
	// source; it is scheduled after the raw update that produced X,
	// per spec.md §4.2.
	Integral
)

// String implements fmt.Stringer.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "unknown"
}

var opNames = [...]string{
	"add", "sub", "neg", "mul", "div", "pow", "abs", "min", "max", "sqrt",
	"exp", "log", "sin", "cos", "tan", "eq", "ne", "le", "lt", "subset",
	"superset", "not", "and", "or", "xor", "nand", "nor", "imb", "integral",
}

// Arity returns the number of operand Bounds a Contractor for this Op
// expects in Narrow's args slice.
func (o Op) Arity() int {
	switch o {
	case Neg, Abs, Sqrt, Exp, Log, Sin, Cos, Tan, Not, Integral:
		return 2
	case Subset, Superset:
		return 2
	default:
		return 3
	}
}

// Contractor narrows the operands of one primitive relation.
type Contractor interface {
	// Narrow takes the current Bounds of each operand (ordered per the
	// Op's documented convention) and returns a tightened candidate
	// Bounds for each operand (same order, same length), plus whether no
	// further narrowing by this primitive is ever possible again
	// (spec.md §4.3 "Persistence"). Returned Bounds are enclosures
	// computed from the *other* operands; the caller intersects them
	// with each operand's own current bounds.
	Narrow(args []ivl.Bounds) (narrowed []ivl.Bounds, persistent bool, err error)
}

// ContractorFunc adapts a plain function to the Contractor interface.
type ContractorFunc func(args []ivl.Bounds) ([]ivl.Bounds, bool, error)

// Narrow implements Contractor.
func (f ContractorFunc) Narrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	return f(args)
}

var registry = map[Op]Contractor{}

func register(op Op, fn func([]ivl.Bounds) ([]ivl.Bounds, bool, error)) {
	registry[op] = ContractorFunc(fn)
}

// For returns the Contractor registered for op.
func For(op Op) (Contractor, bool) {
	c, ok := registry[op]
	return c, ok
}
