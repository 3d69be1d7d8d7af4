package satcheck

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Circuit builds a CNF problem from gate combinators (And/Or/Xor/Implies/
// Not) rather than hand-derived Tseitin clauses, via gini's logic.C
// and-inverter graph -- the same shape
// operator-framework-operator-lifecycle-manager's litMapping/Constraint.apply
// use: each constraint calls a *logic.C gate method to get one output
// literal, and the whole circuit is flattened to CNF with a single
// (*logic.C).ToCnf call, instead of writing out each gate's clauses by
// hand. Hand-deriving Tseitin clauses per gate is error-prone (an easy
// place to swap a clause's polarity) and redundant once logic.C already
// does it correctly.
type Circuit struct {
	c       *logic.C
	vars    map[Var]z.Lit
	nextVar Var
	units   []z.Lit
	roots   []z.Lit
}

// NewCircuit returns an empty Circuit.
func NewCircuit() *Circuit {
	return &Circuit{c: logic.NewCCap(64), vars: make(map[Var]z.Lit)}
}

// NewVar allocates and returns a fresh problem Var with its own circuit
// input literal.
func (ci *Circuit) NewVar() Var {
	v := ci.nextVar
	ci.nextVar++
	ci.vars[v] = ci.c.Lit()
	return v
}

// Fix asserts that v's literal equals value, for a variable already
// narrowed to a singleton 0/1 bound.
func (ci *Circuit) Fix(v Var, value bool) {
	m := ci.vars[v]
	if !value {
		m = m.Not()
	}
	ci.units = append(ci.units, m)
}

// equiv asserts z0 <-> gate: the node's declared output variable and the
// literal computed for its gate must agree under every satisfying
// assignment. Xor(z0, gate) is true exactly when they differ, so its
// negation is the equivalence.
func (ci *Circuit) equiv(z0, gate z.Lit) {
	ci.roots = append(ci.roots, ci.c.Xor(z0, gate).Not())
}

// And asserts out <-> (x and y).
func (ci *Circuit) And(x, y, out Var) {
	ci.equiv(ci.vars[out], ci.c.And(ci.vars[x], ci.vars[y]))
}

// Or asserts out <-> (x or y).
func (ci *Circuit) Or(x, y, out Var) {
	ci.equiv(ci.vars[out], ci.c.Or(ci.vars[x], ci.vars[y]))
}

// Xor asserts out <-> (x xor y).
func (ci *Circuit) Xor(x, y, out Var) {
	ci.equiv(ci.vars[out], ci.c.Xor(ci.vars[x], ci.vars[y]))
}

// Nand asserts out <-> not(x and y).
func (ci *Circuit) Nand(x, y, out Var) {
	ci.equiv(ci.vars[out], ci.c.And(ci.vars[x], ci.vars[y]).Not())
}

// Nor asserts out <-> not(x or y).
func (ci *Circuit) Nor(x, y, out Var) {
	ci.equiv(ci.vars[out], ci.c.Or(ci.vars[x], ci.vars[y]).Not())
}

// Implies asserts out <-> (x implies y).
func (ci *Circuit) Implies(x, y, out Var) {
	ci.equiv(ci.vars[out], ci.c.Implies(ci.vars[x], ci.vars[y]))
}

// Not asserts out <-> (not x).
func (ci *Circuit) Not(x, out Var) {
	ci.equiv(ci.vars[out], ci.vars[x].Not())
}

// ConsistentCircuit compiles ci's accumulated gates to CNF via
// (*logic.C).ToCnf, asserts its fixed variables and gate equivalences as
// unit clauses, and runs a single Solve -- mirroring
// litMapping.AddConstraints/AssumeConstraints's split between "compile
// the circuit once" and "assert the clauses that pin specific literals".
func ConsistentCircuit(ci *Circuit) (bool, error) {
	g := gini.New()
	ci.c.ToCnf(g)
	for _, u := range ci.units {
		g.Add(u)
		g.Add(0)
	}
	for _, r := range ci.roots {
		g.Add(r)
		g.Add(0)
	}
	switch g.Solve() {
	case 1:
		return true, nil
	case -1:
		return false, nil
	default:
		return false, ErrIndeterminate
	}
}
