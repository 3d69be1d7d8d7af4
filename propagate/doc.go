// Package propagate implements the fixed-point propagation scheduler of
// spec.md §4.5: a FIFO agenda of constraint Nodes, each re-fired whenever
// one of its operand ivl.Intervals narrows, until the agenda empties or
// the iteration budget is exhausted.
//
// The shape is the teacher's graph.BFS generalized from a vertex frontier
// to a constraint-node frontier: Node implements ivl.Watcher the way a
// BFS queue item is enqueued on discovery, and Scheduler's
// OnNodeFired/OnIntervalNarrowed hooks mirror bfs.BFSOptions'
// OnVisit/OnEnqueue.
package propagate
