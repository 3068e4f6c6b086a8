// Package ingest builds a graph.Graph from on-disk vertex/edge record
// streams. Both sources follow the same two-pass shape: count rows
// first so the graph.Builder can preallocate its dense arrays, then
// fill the builder in a second pass. Ids in either stream must already
// be dense in [0, n) — ingest does not renumber them.
package ingest
