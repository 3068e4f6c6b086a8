// Package search implements the engine's label-setting shortest-path
// algorithm: A* when given an admissible heuristic from a
// traversal.Model, degenerating to Dijkstra when the destination is
// absent and the heuristic is identically zero.
//
// The engine touches exactly three other packages' public surfaces —
// graph for adjacency and attributes, traversal and cost for per-edge
// economics — and owns nothing shared across searches: the frontier,
// tree, and settled set it allocates on Run are exclusively its own and
// released on return, mirroring the teacher's per-call runner pattern
// (see dijkstra's own single-owner run state) rather than a
// long-lived shared search object.
package search
