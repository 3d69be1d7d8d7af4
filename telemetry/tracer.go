package telemetry

import (
	"github.com/sirupsen/logrus"

	"github.com/boundedlogic/clpbnr/contractor"
	"github.com/boundedlogic/clpbnr/ivl"
	"github.com/boundedlogic/clpbnr/trail"
)

// Action is a per-interval trace action, per spec.md §6 "watch(X,
// Action)".
type Action uint8

const (
	// ActionNone disables tracing for an interval (the default).
	ActionNone Action = iota
	// ActionLog emits one structured log line per narrowing.
	ActionLog
	// ActionTrace additionally includes the firing node's (Op, Args).
	ActionTrace
)

// Tracer emits structured log lines for watched intervals, via
// github.com/sirupsen/logrus (grounded on the same go.mod that supplies
// client_golang for Counters). It holds no per-interval state of its own:
// ivl.Flags already carries FlagWatchLog/FlagWatchTrace on the Interval
// itself, so Tracer only needs to be told what just happened and decide
// whether the interval's flags call for a line.
type Tracer struct {
	log *logrus.Logger
}

// NewTracer returns a Tracer writing through a fresh logrus.Logger at its
// default settings (text formatter, Info level and above writing to
// stderr). Callers that want JSON output or a different level configure
// Logger() directly, the same way a caller would configure any
// logrus.Logger.
func NewTracer() *Tracer {
	return &Tracer{log: logrus.New()}
}

// Logger returns the underlying logrus.Logger for direct configuration
// (formatter, level, output).
func (t *Tracer) Logger() *logrus.Logger { return t.log }

// OnIntervalNarrowed is a propagate.Options.OnIntervalNarrowed-shaped hook:
// if iv's flags request tracing, it emits one structured line describing
// the narrowing.
func (t *Tracer) OnIntervalNarrowed(iv *ivl.Interval, before, after ivl.Bounds) {
	if !iv.Flags().Has(ivl.FlagWatchLog) && !iv.Flags().Has(ivl.FlagWatchTrace) {
		return
	}
	t.log.WithFields(logrus.Fields{
		"interval": iv.ID(),
		"kind":     iv.Kind().String(),
		"before":   before.Lo.String() + ".." + before.Hi.String(),
		"after":    after.Lo.String() + ".." + after.Hi.String(),
	}).Info("interval narrowed")
}

// OnNodeFired is a propagate.Options.OnNodeFired-shaped hook: if any of
// the node's own operand intervals is flagged ActionTrace, it emits one
// structured line naming the firing node's operator and operands. It does
// not itself decide narrowing; OnIntervalNarrowed covers that.
func (t *Tracer) OnNodeFired(op contractor.Op, args []*ivl.Interval) {
	trace := false
	for _, a := range args {
		if a.Flags().Has(ivl.FlagWatchTrace) {
			trace = true
			break
		}
	}
	if !trace {
		return
	}
	ids := make([]ivl.ID, len(args))
	for i, a := range args {
		ids[i] = a.ID()
	}
	t.log.WithFields(logrus.Fields{
		"op":   op.String(),
		"args": ids,
	}).Info("node fired")
}

// Watch sets iv's trace action, per spec.md §6 "watch(X, Action)". The
// flag write is trailed like every other Interval mutation.
func Watch(tr *trail.Trail, iv *ivl.Interval, action Action) {
	switch action {
	case ActionLog:
		iv.SetFlags(tr, ivl.FlagWatchLog)
	case ActionTrace:
		iv.SetFlags(tr, ivl.FlagWatchTrace)
	default:
		// ActionNone: flags are additive (spec.md §4.6 "merged flags =
		// union"), so there is no narrowing-style clear path; watch/2
		// with `none` on an unwatched interval is simply a no-op.
	}
}
