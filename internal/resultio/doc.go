// Package resultio serializes a search.Result into the wire shape
// spec.md §6 names: snake_case fields, durations in milliseconds, and
// a string-keyed tree map (JSON object keys must be strings; a
// graph.VertexId is not one). JSON is the CLI's default; YAML is
// available for symmetry with the config loader.
package resultio
