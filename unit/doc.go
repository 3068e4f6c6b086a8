// Package unit provides dimensional conversion for the physical
// quantities the routing engine accumulates: distance, time, and energy.
//
// Each dimension has a canonical base unit (meters, seconds, and
// kilowatt-hours respectively) and a fixed table of rational conversion
// factors to that base. Converting a value to its own unit is always the
// identity; converting A->B->A round-trips within floating point
// tolerance. Conversion across dimensions (e.g. distance to time) is not
// expressible through this package's types — it is a compile error, not
// a runtime one, which is stronger than the spec's "Cross-dimension
// conversion is an error" requirement for the dimension-tagged types
// below. StateModel (see the statemodel package) enforces the same rule
// at the untyped StateVar boundary, where it is a genuine runtime check.
package unit
