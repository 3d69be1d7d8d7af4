// Package nb implements the one non-backtrackable write site spec.md §5
// calls out by name: `nb_setbounds`, the global-optimisation upper-bound
// tracker that must survive branch-and-bound backtracking instead of being
// undone by it.
//
// Every other mutation in this module goes through a trail.Trail so a
// failed search branch restores prior state. Cell is the deliberate
// exception, modeled on katalvlaran-lvlath's graph.Dijkstra `dist` map:
// a plain map write, outside any undo log, that only ever moves toward a
// better (never worse) known value and must keep that value across every
// branch the search abandons.
package nb
