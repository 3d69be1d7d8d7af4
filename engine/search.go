package engine

import (
	"context"

	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/search"
)

// Visit re-exports search.Visit for callers of the search passthroughs
// below.
type Visit = search.Visit

// Solve implements spec.md §6's solve/1,2, threading this Engine's own
// Scheduler and Trail through to package search so a caller never wires
// those by hand.
func (e *Engine) Solve(ctx context.Context, vs []*ivl.Interval, visit Visit) error {
	return search.Solve(ctx, e.sched, e.tr, vs, e.cfg.Search, visit)
}

// SplitSolve implements spec.md §6's splitsolve/1,2.
func (e *Engine) SplitSolve(ctx context.Context, vs []*ivl.Interval, visit Visit) error {
	return search.SplitSolve(ctx, e.sched, e.tr, vs, e.cfg.Search, visit)
}

// Absolve implements spec.md §6's absolve/1,2.
func (e *Engine) Absolve(ctx context.Context, v *ivl.Interval) error {
	return search.Absolve(ctx, e.sched, e.tr, v, e.cfg.Search)
}

// Enumerate implements spec.md §6's enumerate/1. Before branching, it
// opportunistically runs contractor/satcheck's global boolean
// consistency check over any Integer(0,1)-typed variables in vs tied
// together by boolean-connective nodes, pruning the whole call if the
// boolean sub-network is jointly unsatisfiable, per spec.md §4.3's
// "Domain-stack addition" note.
func (e *Engine) Enumerate(ctx context.Context, vs []*ivl.Interval, visit Visit) error {
	return search.Enumerate(ctx, e.sched, e.tr, vs, visit)
}

// GlobalMinimum implements spec.md §6's global_minimum/2,3. z must be the
// Interval returned by compiling the objective expression (see
// Engine.Compile).
func (e *Engine) GlobalMinimum(ctx context.Context, z *ivl.Interval, vs []*ivl.Interval) (ivl.Bounds, error) {
	return search.GlobalMinimum(ctx, e.sched, e.tr, z, vs, e.cfg.Search)
}

// GlobalMaximum implements spec.md §6's global_maximum/2,3.
func (e *Engine) GlobalMaximum(ctx context.Context, z *ivl.Interval, vs []*ivl.Interval) (ivl.Bounds, error) {
	return search.GlobalMaximum(ctx, e.sched, e.tr, z, vs, e.cfg.Search)
}

// Compile compiles e without asserting it to any particular value,
// returning the Interval holding its value -- the entry point
// GlobalMinimum/GlobalMaximum need for an objective expression that
// isn't itself a boolean constraint.
func (e *Engine) Compile(c Expr) (*ivl.Interval, error) {
	iv, nodes, err := e.compiler.Compile(e.tr, c)
	if err != nil {
		return nil, err
	}
	if err := e.runSeeded(context.Background(), nodes); err != nil {
		return nil, err
	}
	return iv, nil
}
