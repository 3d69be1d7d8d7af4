package telemetry

import (
	"fmt"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/boundedlogic/clpbnr/trail"
)

// instanceSeq disambiguates the constant label the registry's Counter
// vector needs across multiple Counters instances registered into
// process-default metrics collection; it is not used for backtracking.
var instanceSeq int64

// Counters is the process-wide (per-engine-instance) statistics block of
// spec.md §5 "Statistics globals": narrowing operations, failures, node
// count, and iteration-budget usage. clpStatistic(S)/clpStatistics/1-style
// queries read it back via Snapshot; Counters has no reset operation.
//
// Every Inc/Set call here pushes an inverse onto tr, per spec.md §7
// "Statistics globals ... maintained as backtrackable globals when
// incremented during propagation": undoing it restores the values
// Snapshot reports, and the nodes_total gauge. The three Prometheus
// counters only ever increase (a prometheus.Counter cannot be decremented),
// so they are not rolled back and keep counting work done on abandoned
// branches.
type Counters struct {
	reg *prometheus.Registry

	narrowingOps prometheus.Counter
	failures     prometheus.Counter
	nodesTotal   prometheus.Gauge
	iterUsed     prometheus.Counter

	// Shadow values mirroring the instruments above, for Snapshot: Go's
	// prometheus client intentionally offers no cheap synchronous read
	// path for a Counter/Gauge it didn't construct via a *Vec with
	// score-boarding, so clpStatistics/1-style bulk reads are served from
	// these plain fields instead of reflecting into the client's wire
	// format. Every mutator below updates both; undo restores the shadow
	// values and the gauge.
	snapNarrowingOps float64
	snapFailures     float64
	snapNodesTotal   float64
	snapIterUsed     float64
}

// NewCounters returns a fresh Counters registered into its own private
// prometheus.Registry (the Registry method exposes it so a caller can additionally wire it into an HTTP /metrics handler; the
// engine itself never reaches for Prometheus's query API directly).
func NewCounters() *Counters {
	id := atomic.AddInt64(&instanceSeq, 1)
	reg := prometheus.NewRegistry()
	c := &Counters{
		reg: reg,
		narrowingOps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "clpbnr",
			Name:        "narrowing_ops_total",
			Help:        "Total number of interval narrowings accepted by the propagator.",
			ConstLabels: prometheus.Labels{"instance": fmt.Sprintf("%d", id)},
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "clpbnr",
			Name:        "failures_total",
			Help:        "Total number of consistency failures (Lo > Hi) observed.",
			ConstLabels: prometheus.Labels{"instance": fmt.Sprintf("%d", id)},
		}),
		nodesTotal: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   "clpbnr",
			Name:        "nodes_total",
			Help:        "Current number of live propagation nodes.",
			ConstLabels: prometheus.Labels{"instance": fmt.Sprintf("%d", id)},
		}),
		iterUsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   "clpbnr",
			Name:        "iteration_budget_used_total",
			Help:        "Total number of propagation nodes fired against the iteration budget.",
			ConstLabels: prometheus.Labels{"instance": fmt.Sprintf("%d", id)},
		}),
	}
	reg.MustRegister(c.narrowingOps, c.failures, c.nodesTotal, c.iterUsed)
	return c
}

// Registry returns the private prometheus.Registry these counters are
// registered in, for a caller that wants to serve /metrics.
func (c *Counters) Registry() *prometheus.Registry { return c.reg }

// IncNarrowing records one accepted narrowing, trailed.
func (c *Counters) IncNarrowing(tr *trail.Trail) {
	c.narrowingOps.Inc()
	c.snapNarrowingOps++
	tr.Push(func() { c.snapNarrowingOps-- })
}

// IncFailure records one consistency failure, trailed.
func (c *Counters) IncFailure(tr *trail.Trail) {
	c.failures.Inc()
	c.snapFailures++
	tr.Push(func() { c.snapFailures-- })
}

// IncIterationUsed records one propagation node fired against the
// iteration budget, trailed.
func (c *Counters) IncIterationUsed(tr *trail.Trail) {
	c.iterUsed.Inc()
	c.snapIterUsed++
	tr.Push(func() { c.snapIterUsed-- })
}

// SetNodesTotal sets the live-node-count gauge to n, trailed against its
// prior value.
func (c *Counters) SetNodesTotal(tr *trail.Trail, n int) {
	prev := c.snapNodesTotal
	c.nodesTotal.Set(float64(n))
	c.snapNodesTotal = float64(n)
	tr.Push(func() { c.nodesTotal.Set(prev); c.snapNodesTotal = prev })
}

// Snapshot is a plain-struct read of every counter, for clpStatistics/1-
// style bulk queries without forcing a caller to depend on Prometheus's
// own query API.
type Snapshot struct {
	NarrowingOps        float64
	Failures            float64
	NodesTotal          float64
	IterationBudgetUsed float64
}

// Snapshot reads every counter's current value into a plain struct.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		NarrowingOps:        c.snapNarrowingOps,
		Failures:            c.snapFailures,
		NodesTotal:          c.snapNodesTotal,
		IterationBudgetUsed: c.snapIterUsed,
	}
}
