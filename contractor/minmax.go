package contractor

import (
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

func init() {
	register(Min, minNarrow)
	register(Max, maxNarrow)
	register(Abs, absNarrow)
}

// minNarrow implements the ternary Z = min(X, Y).
func minNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := ivl.Bounds{Lo: minOf(x.Lo, y.Lo), Hi: minOf(x.Hi, y.Hi)}
	// Z = min(X,Y) <= X and Z = min(X,Y) <= Y always; X,Y are only
	// narrowed from below, by Z's lower bound.
	nx := ivl.Bounds{Lo: z.Lo, Hi: x.Hi}
	ny := ivl.Bounds{Lo: z.Lo, Hi: y.Hi}
	return []ivl.Bounds{nx, ny, nz}, false, nil
}

// maxNarrow implements the ternary Z = max(X, Y).
func maxNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 3); err != nil {
		return nil, false, err
	}
	x, y, z := args[0], args[1], args[2]
	nz := ivl.Bounds{Lo: maxOf(x.Lo, y.Lo), Hi: maxOf(x.Hi, y.Hi)}
	nx := ivl.Bounds{Lo: x.Lo, Hi: z.Hi}
	ny := ivl.Bounds{Lo: y.Lo, Hi: z.Hi}
	return []ivl.Bounds{nx, ny, nz}, false, nil
}

// absNarrow implements the binary Z = |X|.
func absNarrow(args []ivl.Bounds) ([]ivl.Bounds, bool, error) {
	if err := checkArity(args, 2); err != nil {
		return nil, false, err
	}
	x, z := args[0], args[1]

	var nz ivl.Bounds
	switch {
	case x.Hi.Sign() <= 0: // X entirely <= 0
		nz = ivl.Bounds{Lo: x.Hi.Neg(), Hi: x.Lo.Neg()}
	case x.Lo.Sign() >= 0: // X entirely >= 0
		nz = x
	default: // X straddles zero
		hi := maxOf(x.Hi, x.Lo.Neg())
		nz = ivl.Bounds{Lo: numeric.Zero, Hi: hi}
	}

	// X and (-Z union Z): a single interval can't represent that union
	// exactly unless X is already sign-definite, in which case the
	// narrowing below recovers the sign-definite enclosure; otherwise we
	// can only tighten X's magnitude, not its sign, so fall back to the
	// widest sound enclosure [-Z.Hi, Z.Hi] intersected with X's own sign.
	var nx ivl.Bounds
	switch {
	case x.Hi.Sign() <= 0:
		nx = ivl.Bounds{Lo: z.Lo.Neg(), Hi: z.Hi.Neg()}
	case x.Lo.Sign() >= 0:
		nx = z
	default:
		nx = ivl.Bounds{Lo: z.Hi.Neg(), Hi: z.Hi}
	}

	return []ivl.Bounds{nx, nz}, false, nil
}
