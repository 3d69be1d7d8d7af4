package search

import (
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/contractor/satcheck"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/propagate"
)

// isBooleanConnective reports whether op's node structure is one
// collectBooleanNetwork should follow: the six truth-table connectives
// plus Not, per spec.md §4.3's boolean primitive set. Eq/Ne/Le/Lt also
// produce an Integer(0,1) result but have no fixed CNF shape independent
// of their operands' numeric domains, so they are left to ordinary
// interval propagation rather than folded into the SAT pre-check.
func isBooleanConnective(op contractor.Op) bool {
	switch op {
	case contractor.And, contractor.Or, contractor.Xor, contractor.Nand, contractor.Nor, contractor.Imb, contractor.Not:
		return true
	}
	return false
}

// collectBooleanNetwork walks outward from vs through every boolean-
// connective node reachable via watcher lists, per spec.md §4.3's
// "Domain-stack addition": And/Or/Xor/Nand/Nor/Imb/Not nodes tie
// Integer(0,1) intervals together the same way Add/Mul nodes tie real
// ones together, and that sub-network is exactly what a global SAT check
// can usefully summarize.
func collectBooleanNetwork(vs []*ivl.Interval) []*propagate.Node {
	seenIv := make(map[*ivl.Interval]bool, len(vs))
	seenNode := make(map[*propagate.Node]bool)
	var nodes []*propagate.Node
	queue := append([]*ivl.Interval(nil), vs...)

	for len(queue) > 0 {
		iv := queue[0]
		queue = queue[1:]
		if seenIv[iv] {
			continue
		}
		seenIv[iv] = true
		for _, w := range iv.Watchers() {
			n, ok := w.(*propagate.Node)
			if !ok || seenNode[n] || !isBooleanConnective(n.Op()) {
				continue
			}
			seenNode[n] = true
			nodes = append(nodes, n)
			for _, a := range n.Args() {
				if !seenIv[a] {
					queue = append(queue, a)
				}
			}
		}
	}
	return nodes
}

// globalBooleanCheck runs contractor/satcheck.ConsistentCircuit over the
// gate-combinator translation of every boolean-connective node reachable
// from vs, reporting false when the boolean sub-network as a whole has no
// satisfying assignment -- a global inconsistency purely local,
// node-by-node arc-consistency narrowing can take many more propagation
// rounds (or a full search) to discover. An empty network (no reachable
// connective nodes) is trivially consistent.
//
// Each connective is asserted by calling the matching Circuit gate
// method for its already-allocated problem variables, letting gini's
// logic.C derive the CNF rather than hand-writing it; an operand interval
// already narrowed to a single 0 or 1 is additionally fixed.
func globalBooleanCheck(vs []*ivl.Interval) (bool, error) {
	nodes := collectBooleanNetwork(vs)
	if len(nodes) == 0 {
		return true, nil
	}

	ci := satcheck.NewCircuit()
	varOf := make(map[*ivl.Interval]satcheck.Var)
	v := func(iv *ivl.Interval) satcheck.Var {
		sv, ok := varOf[iv]
		if !ok {
			sv = ci.NewVar()
			varOf[iv] = sv
			if b := iv.Bounds(); b.IsPoint() {
				ci.Fix(sv, b.Lo.Sign() != 0)
			}
		}
		return sv
	}

	for _, n := range nodes {
		args := n.Args()
		switch n.Op() {
		case contractor.Not:
			ci.Not(v(args[0]), v(args[1]))
		case contractor.And:
			ci.And(v(args[0]), v(args[1]), v(args[2]))
		case contractor.Or:
			ci.Or(v(args[0]), v(args[1]), v(args[2]))
		case contractor.Xor:
			ci.Xor(v(args[0]), v(args[1]), v(args[2]))
		case contractor.Nand:
			ci.Nand(v(args[0]), v(args[1]), v(args[2]))
		case contractor.Nor:
			ci.Nor(v(args[0]), v(args[1]), v(args[2]))
		case contractor.Imb:
			ci.Implies(v(args[0]), v(args[1]), v(args[2]))
		}
	}

	return satcheck.ConsistentCircuit(ci)
}
