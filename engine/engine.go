package engine

import (
	"context"

	pkgerrors "github.com/pkg/errors"

	"github.com/boundedlogic/clpbnr/bind"
	"github.com/boundedlogic/clpbnr/compile"
	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/numeric"
	"github.com/boundedlogic/clpbnr/propagate"
	"github.com/boundedlogic/clpbnr/search"
	"github.com/boundedlogic/clpbnr/telemetry"
	"github.com/boundedlogic/clpbnr/trail"
)

// Engine is the façade described in this package's doc comment. The zero
// value is not usable; construct one with New.
type Engine struct {
	tr       *trail.Trail
	store    *ivl.Store
	sched    *propagate.Scheduler
	compiler *compile.Compiler
	counters *telemetry.Counters
	tracer   *telemetry.Tracer
	cfg      Config
}

// New constructs an Engine, running spec.md §7's host-environment
// self-test first ("Host environment error: absence of ... IEEE support
// is detected at initialisation ... the engine refuses to proceed").
func New(cfg Config) (*Engine, error) {
	if err := numeric.SelfTest(); err != nil {
		return nil, pkgerrors.Wrap(ErrNoIEEESupport, err.Error())
	}

	tr := trail.New()
	store := ivl.NewStore(tr)
	counters := telemetry.NewCounters()
	tracer := telemetry.NewTracer()

	opts := append([]propagate.Option{
		propagate.WithOnNodeFired(func(n *propagate.Node) {
			counters.IncIterationUsed(tr)
			tracer.OnNodeFired(n.Op(), n.Args())
		}),
		propagate.WithOnIntervalNarrowed(func(iv *ivl.Interval, before, after ivl.Bounds) {
			counters.IncNarrowing(tr)
			tracer.OnIntervalNarrowed(iv, before, after)
		}),
	}, cfg.Propagate...)
	sched := propagate.NewScheduler(opts...)

	e := &Engine{
		tr:       tr,
		store:    store,
		sched:    sched,
		compiler: compile.NewCompiler(store, sched, cfg.Compile),
		counters: counters,
		tracer:   tracer,
		cfg:      cfg,
	}
	return e, nil
}

// Trail returns the Engine's Trail, for a caller that wants to open its
// own choice points around a sequence of Declare/Post calls (matching
// spec.md §9's "Attributed variables pattern" note that an explicit
// bind/2-style API is the direct equivalent of host unification when no
// host substrate is present).
func (e *Engine) Trail() *trail.Trail { return e.tr }

// Counters returns the Engine's statistics block (spec.md §6
// clpStatistics/0,1 and clpStatistic/1).
func (e *Engine) Counters() *telemetry.Counters { return e.counters }

// Tracer returns the Engine's per-interval trace hook.
func (e *Engine) Tracer() *telemetry.Tracer { return e.tracer }

// Declare attaches a fresh interval of the given kind and bounds, per
// spec.md §6 "X :: real(L,H) / X :: integer(L,H)". A zero Bounds value
// uses the type's default bounds ("X :: real with no bounds").
func (e *Engine) Declare(kind ivl.Kind, bounds ivl.Bounds) (*ivl.Interval, error) {
	if kind != ivl.Real && kind != ivl.Integer {
		return nil, ErrNonNumericDomain
	}
	return e.store.Declare(kind, bounds)
}

// DeclareBoolean attaches a fresh Integer(0,1) interval, per spec.md §6
// "X :: boolean".
func (e *Engine) DeclareBoolean() (*ivl.Interval, error) {
	return e.store.DeclareBoolean()
}

// DeclareMany broadcasts Declare across n fresh variables, per spec.md §6
// "List form [X1, ..., Xn] :: Dom".
func (e *Engine) DeclareMany(n int, kind ivl.Kind, bounds ivl.Bounds) ([]*ivl.Interval, error) {
	out := make([]*ivl.Interval, 0, n)
	for i := 0; i < n; i++ {
		iv, err := e.Declare(kind, bounds)
		if err != nil {
			return nil, err
		}
		out = append(out, iv)
	}
	return out, nil
}

// VarRef wraps an already-declared interval as a compile.Expr leaf, for
// building constraint expressions to pass to Post/Assert.
func (e *Engine) VarRef(iv *ivl.Interval) compile.Expr { return compile.VarRef{Interval: iv} }

// Post compiles e and asserts it must evaluate to 1, per spec.md §6
// "{ C1, C2, ... } ... Each Ci is a boolean expression that must evaluate
// to 1", then runs propagation to a fixed point (or until throttled).
// Post returns ErrNotBoolean if e's compiled result isn't Integer-typed
// (comparisons and boolean connectives always are; a bare arithmetic
// Expr with a Real-typed result is a caller error, not a consistency
// failure, so it is reported before propagation runs). Only the Kind is
// checked: arithmetic over Integer operands only compiles to an Integer
// result and is asserted to 1 like a boolean.
func (e *Engine) Post(ctx context.Context, c Expr) error {
	z, nodes, err := e.compiler.Compile(e.tr, c)
	if err != nil {
		return err
	}
	if z.Kind() != ivl.Integer {
		return ErrNotBoolean
	}
	if _, err := z.IntersectSet(e.tr, ivl.Bounds{Lo: numeric.FromInt64(1), Hi: numeric.FromInt64(1)}); err != nil {
		return pkgerrors.Wrap(ivl.ErrFailed, err.Error())
	}
	return e.runSeeded(ctx, nodes)
}

// Assert posts a Subset or Superset relation directly between x and y,
// per spec.md §4.4's note that these relations have no implicit output
// operand.
func (e *Engine) Assert(ctx context.Context, op contractor.Op, x, y Expr) error {
	nodes, err := e.compiler.Assert(e.tr, op, x, y)
	if err != nil {
		return err
	}
	return e.runSeeded(ctx, nodes)
}

func (e *Engine) runSeeded(ctx context.Context, nodes []*propagate.Node) error {
	e.counters.SetNodesTotal(e.tr, e.store.Len())
	_, err := e.sched.Run(ctx, e.tr, nodes)
	if err != nil {
		e.counters.IncFailure(e.tr)
		return err
	}
	return nil
}

// Interval reports whether iv still belongs to this Engine's Store, per
// spec.md §6 "interval(X) -- true iff X has an attached interval".
func (e *Engine) Interval(iv *ivl.Interval) bool {
	_, ok := e.store.Get(iv.ID())
	return ok
}

// Domain returns iv's current enclosure and kind, per spec.md §6
// "domain(X, Dom) / range(X, [L,H])".
func (e *Engine) Domain(iv *ivl.Interval) (lo, hi numeric.Extended, kind ivl.Kind) {
	b := iv.Bounds()
	return b.Lo, b.Hi, iv.Kind()
}

// LowerBound narrows iv to its current lower bound and returns it, per
// spec.md §6 "lower_bound(X) -- unify X with its current lower/upper
// bound (narrows to a point)".
func (e *Engine) LowerBound(iv *ivl.Interval) (numeric.Extended, error) {
	b := iv.Bounds()
	if _, err := iv.IntersectSet(e.tr, ivl.Bounds{Lo: b.Lo, Hi: b.Lo}); err != nil {
		return numeric.Extended{}, pkgerrors.Wrap(ivl.ErrFailed, err.Error())
	}
	return b.Lo, nil
}

// UpperBound narrows iv to its current upper bound and returns it.
func (e *Engine) UpperBound(iv *ivl.Interval) (numeric.Extended, error) {
	b := iv.Bounds()
	if _, err := iv.IntersectSet(e.tr, ivl.Bounds{Lo: b.Hi, Hi: b.Hi}); err != nil {
		return numeric.Extended{}, pkgerrors.Wrap(ivl.ErrFailed, err.Error())
	}
	return b.Hi, nil
}

// Delta, Midpoint, and Median are spec.md §6's pure interval functions.
func (e *Engine) Delta(iv *ivl.Interval) numeric.Extended    { return search.Delta(iv.Bounds()) }
func (e *Engine) Midpoint(iv *ivl.Interval) numeric.Extended { return search.Midpoint(iv.Bounds()) }
func (e *Engine) Median(iv *ivl.Interval) numeric.Extended   { return search.Median(iv.Bounds()) }

// PartialDerivative implements spec.md §6/§4.7's partial_derivative.
func (e *Engine) PartialDerivative(c Expr, x *ivl.Interval) Expr {
	return search.PartialDerivative(c, x)
}

// Watch sets iv's trace action, per spec.md §6 "watch(X, Action)".
func (e *Engine) Watch(iv *ivl.Interval, action telemetry.Action) {
	telemetry.Watch(e.tr, iv, action)
}

// Bind implements spec.md §4.6's variable-binding hook directly against
// this Engine's Trail, for a caller building its own host-variable layer
// on top of the engine (spec.md §9's "Attributed variables pattern").
func (e *Engine) Bind(v *ivl.Interval, term bind.Term) (*ivl.Interval, error) {
	return bind.Bind(e.tr, v, term)
}
