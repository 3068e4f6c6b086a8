// Package cost turns per-feature state deltas into a single scalar an
// engine can compare, order, and sum along a path.
//
// A CostModel pairs a per-feature weight with a rate converting that
// feature's state unit into a cost unit, then folds the weighted deltas
// together under one of two aggregation modes. The fold is the only
// place feature-specific knowledge lives; traversal_cost, access_cost,
// and cost_estimate are otherwise identical shapes applied to different
// inputs, matching the teacher's pattern of a single runner type with a
// handful of thin entry points (see search/engine.go).
package cost
