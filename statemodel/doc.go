// Package statemodel gives names, indices, and unit-aware typed access to
// the otherwise-opaque numeric state vector a TraversalModel evolves
// along a route.
//
// A StateModel is constructed once per query (merging the engine default
// with any query overrides, see Extend) from a sorted set of named
// StateFeature declarations, and is the only authority on what each slot
// of a StateVector means. This mirrors the teacher's own split between a
// thin, documented public facade (model.go) and the data it operates
// over (variants.go, feature.go, codec.go): algorithms never branch on
// feature kind themselves, they call the typed getters and setters here.
//
// Four small, fixed-arity implementations (one through four features)
// back StateModel when the query uses that few features, avoiding a map
// allocation and a hash on every state-vector read; a general map-backed
// implementation handles five or more. Callers cannot tell which is in
// use — StateModel hides the choice behind a single exported type.
package statemodel
