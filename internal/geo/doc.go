// Package geo holds small, dependency-free geometric helpers:
// great-circle distance, which the traversal models' lower-bound
// heuristics use, and a lon/lat range check. The ingest readers do not
// call ValidateCoordinate; the coordinates they read reach the graph
// builder unchecked.
package geo
