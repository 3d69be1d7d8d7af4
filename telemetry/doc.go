// Package telemetry implements spec.md §3.8/§5/§6's statistics and
// tracing surface: process-wide (per-engine-instance) counters for
// narrowing operations, failures, node count, and iteration-budget usage,
// plus a per-interval watch hook for debug tracing.
//
// Counters are domain-stack wired onto
// github.com/prometheus/client_golang/prometheus Counter/Gauge
// instruments, registered in a private prometheus.Registry so multiple
// engine instances in one process don't collide (grounded on
// operator-framework-operator-lifecycle-manager/go.mod, which ships
// client_golang for exactly this kind of operational counter set).
// Per spec.md §7, every increment runs through the same *trail.Trail the
// rest of the engine mutates through, so a failed choice point restores
// the pre-choice values Counters.Snapshot reports (spec.md §8 "Backtrack
// restoration"); the exported Prometheus counters only increase and are
// not rolled back.
//
// Tracer is a separate, lighter mechanism for watch(X, Action): structured
// log lines via github.com/sirupsen/logrus, one per narrowing (Action ==
// log) optionally including the firing node's (Op, Args) (Action ==
// trace).
package telemetry
