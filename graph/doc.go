// Package graph defines the immutable road network the routing engine
// searches over: integer-indexed vertices and edges with O(1) attribute
// and adjacency access.
//
// A Graph is built once, via Builder, from external ingestion (see
// internal/ingest) and never mutated afterward. Vertex and edge ids are
// dense non-negative integers used directly as array offsets, so
// EdgeAttr, VertexAttr, and adjacency lookups never allocate and never
// touch a map.
//
//	go get github.com/openrouteengine/compass/graph
package graph
