package compile

import (
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/trail"
)

// Compiler turns Expr trees into propagate.Node DAGs over a shared
// ivl.Store and propagate.Scheduler, per spec.md §4.4.
type Compiler struct {
	store *ivl.Store
	sched *propagate.Scheduler
	cfg   Config
}

// NewCompiler returns a Compiler that declares intermediate Intervals in
// store and registers Nodes on sched.
func NewCompiler(store *ivl.Store, sched *propagate.Scheduler, cfg Config) *Compiler {
	if cfg.Rewrites == nil {
		cfg.Rewrites = DefaultRewrites()
	}
	return &Compiler{store: store, sched: sched, cfg: cfg}
}

// Compile simplifies e, then recursively decomposes it into a DAG of
// propagate.Node values, returning the Interval holding e's value and
// every Node newly created in the process (pass these to
// Scheduler.Run as seed). VarRef leaves and folded Num literals
// contribute no Nodes.
func (c *Compiler) Compile(tr *trail.Trail, e Expr) (*ivl.Interval, []*propagate.Node, error) {
	passes := append([]Simplifier{ConstantFold}, c.cfg.Rewrites...)
	e = Simplify(e, passes...)
	return c.compile(tr, e)
}

func (c *Compiler) compile(tr *trail.Trail, e Expr) (*ivl.Interval, []*propagate.Node, error) {
	switch v := e.(type) {
	case VarRef:
		return v.Interval, nil, nil
	case Num:
		iv, err := c.store.Declare(v.Kind, v.Bounds)
		if err != nil {
			return nil, nil, err
		}
		return iv, nil, nil
	case Call:
		return c.compileCall(tr, v)
	default:
		return nil, nil, ErrUnknownExpr
	}
}

func (c *Compiler) compileCall(tr *trail.Trail, call Call) (*ivl.Interval, []*propagate.Node, error) {
	var nodes []*propagate.Node
	argIvs := make([]*ivl.Interval, 0, len(call.Args)+1)
	for _, a := range call.Args {
		iv, ns, err := c.compile(tr, a)
		if err != nil {
			return nil, nil, err
		}
		argIvs = append(argIvs, iv)
		nodes = append(nodes, ns...)
	}

	zKind, zBounds := outputDomain(call.Op, argIvs)
	z, err := c.store.Declare(zKind, zBounds)
	if err != nil {
		return nil, nil, err
	}
	argIvs = append(argIvs, z)

	node, err := c.sched.NewNode(tr, call.Op, argIvs)
	if err != nil {
		return nil, nil, err
	}
	nodes = append(nodes, node)
	return z, nodes, nil
}

// Assert compiles a Subset/Superset relation directly between x and y's
// compiled Intervals: these operators have no implicit output operand
// (their Arity is exactly the number of Expr operands), so they cannot
// be expressed as a value-producing Call and are posted as constraints
// in their own right.
func (c *Compiler) Assert(tr *trail.Trail, op contractor.Op, x, y Expr) ([]*propagate.Node, error) {
	if op != contractor.Subset && op != contractor.Superset {
		return nil, ErrAssertArity
	}
	xi, nodes, err := c.compile(tr, x)
	if err != nil {
		return nil, err
	}
	yi, ns, err := c.compile(tr, y)
	if err != nil {
		return nil, err
	}
	nodes = append(nodes, ns...)
	node, err := c.sched.NewNode(tr, op, []*ivl.Interval{xi, yi})
	if err != nil {
		return nil, err
	}
	return append(nodes, node), nil
}
