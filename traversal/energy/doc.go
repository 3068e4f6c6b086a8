// Package energy provides a bilinear-interpolated energy-rate
// predictor over a (speed, grade) grid, the one concrete predictive
// model this engine ships rather than treating as an external
// black box.
//
// The grid itself is backed by gonum's Dense matrix (the same storage
// the rest of the ecosystem reaches for when a repo needs small dense
// numerical data — see the retrieval pack's gonum module), with the
// bilinear weights computed directly against its two axes. Values
// inside the grid's bounds are interpolated; a query at a grid point is
// returned exactly; a query outside the bounds is rejected rather than
// extrapolated, since extrapolating an energy-rate model into speeds or
// grades it was never fit on is exactly the kind of silent wrongness
// this engine's admissibility guarantees cannot tolerate.
package energy
