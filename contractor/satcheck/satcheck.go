package satcheck

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// Var identifies a boolean problem variable (typically a bound interval
// variable already known to be 0/1-valued).
type Var int

// Lit is a literal: a Var in either its positive or negated sense.
type Lit struct {
	V   Var
	Neg bool
}

// Pos returns the positive literal of v.
func Pos(v Var) Lit { return Lit{V: v} }

// Not returns the negated literal of v.
func Not(v Var) Lit { return Lit{V: v, Neg: true} }

// Problem accumulates boolean variables and CNF clauses for a single
// ConsistentBoolean check. The zero value is not usable; use New.
type Problem struct {
	g       *gini.Gini
	vars    map[Var]z.Lit
	nextVar Var
}

// New returns an empty Problem.
func New() *Problem {
	return &Problem{g: gini.New(), vars: make(map[Var]z.Lit)}
}

// NewVar allocates and returns a fresh problem Var.
func (p *Problem) NewVar() Var {
	v := p.nextVar
	p.nextVar++
	p.vars[v] = p.g.Lit()
	return v
}

func (p *Problem) lit(l Lit) z.Lit {
	m := p.vars[l.V]
	if l.Neg {
		return m.Not()
	}
	return m
}

// AddClause asserts the disjunction of lits as a constraint: at least one
// must be true. Calling AddClause with the single literals for the
// And/Or/Xor/Nand/Nor/Imb truth tables of a boolean node encodes that
// node's constraint in CNF, the same translation
// operator-framework-operator-lifecycle-manager's litMapping performs
// per-Constraint via its apply method.
func (p *Problem) AddClause(lits ...Lit) {
	gl := make([]z.Lit, len(lits))
	for i, l := range lits {
		gl[i] = p.lit(l)
	}
	p.g.Add(gl...)
	p.g.Add(0)
}

// Model reports the solved truth value of v, valid only after
// ConsistentBoolean(p) has returned (true, nil).
func (p *Problem) Model(v Var) bool {
	return p.g.Value(p.vars[v])
}

// ConsistentBoolean reports whether p's accumulated clauses are jointly
// satisfiable. A false result means the boolean sub-network has no
// solution under any assignment, i.e. the constraint store as a whole
// has failed even though local interval narrowing hasn't yet detected it.
func ConsistentBoolean(p *Problem) (sat bool, err error) {
	switch p.g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, ErrIndeterminate
	}
}
