// Package traversal evolves a StateVector across a single graph edge
// and bounds the remaining cost to a destination.
//
// A Model is the engine's only extension point for physical semantics:
// everything the search engine knows about distance, time, energy, or
// any other accumulated quantity comes from calling Traversal and
// CostEstimate on whatever Models a query configures. Built-in models
// compose sequentially — DistanceModel before SpeedModel before an
// energy.Model — each reading state a prior model already wrote,
// mirroring the teacher's preference for small composable runners over
// one large parameterized algorithm (compare dijkstra.go's separation
// of queue management from relax steps).
package traversal
