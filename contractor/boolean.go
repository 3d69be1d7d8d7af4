package contractor

import "github.com/boundedlogic/clpbnr/ivl"

func init() {
	register(Not, notNarrow)
	register(And, andNarrow)
	register(Or, orNarrow)
	register(Xor, xorNarrow)
	register(Nand, nandNarrow)
	register(Nor, norNarrow)
	register(Imb, imbNarrow)
}

// notNarrow implements the binary boolean Z = not X.
func notNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, z := args[0], args[1]
	nz := z
	switch {
	case isTrue(x):
		nz = boolBounds(0)
	case isFalse(x):
		nz = boolBounds(1)
	}
	nx := x
	switch {
	case isTrue(z):
		nx = boolBounds(0)
	case isFalse(z):
		nx = boolBounds(1)
	}
	return []ivl.Bounds{nx, nz}, nz.IsPoint(), nil
}

// andNarrow implements the ternary boolean Z = X and Y.
func andNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := z
	switch {
	case isFalse(x) || isFalse(y):
		nz = boolBounds(0)
	case isTrue(x) && isTrue(y):
		nz = boolBounds(1)
	}
	nx, ny := x, y
	if isTrue(nz) {
		nx, ny = boolBounds(1), boolBounds(1)
	}
	if isFalse(nz) {
		if isTrue(x) {
			ny = boolBounds(0)
		}
		if isTrue(y) {
			nx = boolBounds(0)
		}
	}
	return []ivl.Bounds{nx, ny, nz}, nz.IsPoint(), nil
}

// orNarrow implements the ternary boolean Z = X or Y.
func orNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := z
	switch {
	case isTrue(x) || isTrue(y):
		nz = boolBounds(1)
	case isFalse(x) && isFalse(y):
		nz = boolBounds(0)
	}
	nx, ny := x, y
	if isFalse(nz) {
		nx, ny = boolBounds(0), boolBounds(0)
	}
	if isTrue(nz) {
		if isFalse(x) {
			ny = boolBounds(1)
		}
		if isFalse(y) {
			nx = boolBounds(1)
		}
	}
	return []ivl.Bounds{nx, ny, nz}, nz.IsPoint(), nil
}

// xorNarrow implements the ternary boolean Z = X xor Y.
func xorNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := z
	switch {
	case (isTrue(x) && isFalse(y)) || (isFalse(x) && isTrue(y)):
		nz = boolBounds(1)
	case (isTrue(x) && isTrue(y)) || (isFalse(x) && isFalse(y)):
		nz = boolBounds(0)
	}
	nx, ny := x, y
	if isTrue(nz) {
		if isTrue(x) {
			ny = boolBounds(0)
		}
		if isFalse(x) {
			ny = boolBounds(1)
		}
		if isTrue(y) {
			nx = boolBounds(0)
		}
		if isFalse(y) {
			nx = boolBounds(1)
		}
	}
	if isFalse(nz) {
		if isTrue(x) {
			ny = boolBounds(1)
		}
		if isFalse(x) {
			ny = boolBounds(0)
		}
		if isTrue(y) {
			nx = boolBounds(1)
		}
		if isFalse(y) {
			nx = boolBounds(0)
		}
	}
	return []ivl.Bounds{nx, ny, nz}, nz.IsPoint(), nil
}

// nandNarrow implements the ternary boolean Z = not(X and Y) by composing
// And's truth table with negation on the Z operand, in both directions.
func nandNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	inner := []ivl.Bounds{x, y, invertBool(z)}
	nargs, persistent, err := andNarrow(inner)
	if err != nil {
		return nil, false, err
	}
	return []ivl.Bounds{nargs[0], nargs[1], invertBool(nargs[2])}, persistent, nil
}

// norNarrow implements the ternary boolean Z = not(X or Y).
func norNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	inner := []ivl.Bounds{x, y, invertBool(z)}
	nargs, persistent, err := orNarrow(inner)
	if err != nil {
		return nil, false, err
	}
	return []ivl.Bounds{nargs[0], nargs[1], invertBool(nargs[2])}, persistent, nil
}

// invertBool negates a boolean Bounds when it is already determined
// (a singleton 0 or 1); an undetermined Bounds passes through unchanged.
func invertBool(b ivl.Bounds) ivl.Bounds {
	switch {
	case isTrue(b):
		return boolBounds(0)
	case isFalse(b):
		return boolBounds(1)
	default:
		return b
	}
}

// imbNarrow implements the ternary boolean Z = (X implies Y).
func imbNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := z
	switch {
	case isFalse(x) || isTrue(y):
		nz = boolBounds(1)
	case isTrue(x) && isFalse(y):
		nz = boolBounds(0)
	}
	nx, ny := x, y
	if isFalse(nz) {
		nx, ny = boolBounds(1), boolBounds(0)
	}
	if isTrue(nz) && isTrue(x) {
		ny = boolBounds(1)
	}
	return []ivl.Bounds{nx, ny, nz}, nz.IsPoint(), nil
}
