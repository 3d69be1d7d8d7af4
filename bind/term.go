package bind

import (
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
)

// Term is whatever a host unification can present to Bind: a ground
// number, or another interval variable. It mirrors spec.md §4.6's "T is a
// number N" / "T is another interval V'" case split.
type Term interface {
	isTerm()
}

// Number is a ground numeric term, narrowed against the target interval as
// the degenerate point bounds {Value, Value}.
type Number struct {
	Value numeric.Extended
}

func (Number) isTerm() {}

// VarTerm wraps another interval variable being unified with the bind
// target.
type VarTerm struct {
	Interval *ivl.Interval
}

func (VarTerm) isTerm() {}
