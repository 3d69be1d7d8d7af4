package propagate

import (
	"fmt"

	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/trail"
)

// Node is a primitive constraint instance bound to a fixed vector of
// operand Intervals, per spec.md §3 "Node". It implements ivl.Watcher so
// each of its operands' watcher lists can hold it directly, and
// ivl.Keyed so bind.Bind can suppress duplicate nodes when two watcher
// lists are merged on variable unification.
type Node struct {
	sched      *Scheduler
	op         contractor.Op
	args       []*ivl.Interval
	linked     bool
	persistent bool
}

// NewNode constructs a Node for op over args (operand order per op's
// documented convention on the Op constant), registers it as a trailed
// watcher on every operand, and returns it. The Node is not placed on the
// agenda by NewNode; pass it to Scheduler.Run as part of seed to kick off
// its first evaluation.
func (s *Scheduler) NewNode(tr *trail.Trail, op contractor.Op, args []*ivl.Interval) (*Node, error) {
	if _, ok := contractor.For(op); !ok {
		return nil, ErrUnsupportedOp
	}
	if len(args) != op.Arity() {
		return nil, ErrBadArity
	}
	n := &Node{sched: s, op: op, args: args}
	for _, a := range args {
		a.AddWatcher(tr, n)
	}
	return n, nil
}

// MarkDirty implements ivl.Watcher: enqueues the node onto its owning
// Scheduler's agenda, unless it is already linked or already known
// persistent.
func (n *Node) MarkDirty() {
	if n.linked || n.persistent {
		return
	}
	n.linked = true
	n.sched.agenda = append(n.sched.agenda, n)
}

// Persistent implements ivl.Watcher and ivl.Keyed's sibling contract:
// once true, ivl.Interval.Notify prunes this Node from its watch list on
// next encounter.
func (n *Node) Persistent() bool { return n.persistent }

// Key implements ivl.Keyed: two Nodes are the same for duplicate
// suppression purposes iff they share an operator and operand identity,
// per spec.md §4.6 "Duplicates by (Op, operand-vector) are suppressed at
// merge time". Operand identity is each Interval's in-process pointer
// address, which stays stable for its lifetime and collapses two
// previously-distinct Nodes' keys to the same value once bind.Bind
// unifies their differing operand into one survivor.
func (n *Node) Key() string {
	s := n.op.String()
	for _, a := range n.args {
		s += fmt.Sprintf(":%p", a)
	}
	return s
}

// Op returns the Node's operator.
func (n *Node) Op() contractor.Op { return n.op }

// Args returns the Node's operand Intervals. The returned slice must not
// be mutated by the caller.
func (n *Node) Args() []*ivl.Interval { return n.args }
