package cost

import (
	"fmt"
	"sort"

	"github.com/openrouteengine/compass/statemodel"
)

// Model maps state-vector deltas to a scalar Cost. It is immutable once
// built and safe to share by reference across concurrent searches.
type Model struct {
	weights     map[string]float64
	rates       map[string]float64
	features    []string
	aggregation Aggregation
}

// New builds a Model over the given cost-bearing features. weights and
// rates must have an entry for every name in features; features not
// named are simply never consulted, matching the teacher's validate-at
// construction, trust-thereafter style (see graph.Builder.Build).
func New(features []string, weights, rates map[string]float64, aggregation Aggregation) (*Model, error) {
	ordered := append([]string(nil), features...)
	sort.Strings(ordered)

	for _, name := range ordered {
		if _, ok := weights[name]; !ok {
			return nil, fmt.Errorf("%w: feature %q has no weight", ErrBuildError, name)
		}
		if _, ok := rates[name]; !ok {
			return nil, fmt.Errorf("%w: feature %q has no rate", ErrBuildError, name)
		}
		if weights[name] < 0 {
			return nil, fmt.Errorf("%w: feature %q has negative weight", ErrBuildError, name)
		}
		if rates[name] < 0 {
			return nil, fmt.Errorf("%w: feature %q has negative rate", ErrBuildError, name)
		}
	}

	return &Model{
		weights:     weights,
		rates:       rates,
		features:    ordered,
		aggregation: aggregation,
	}, nil
}

// Features returns the ordered list of cost-bearing feature names.
func (m *Model) Features() []string { return append([]string(nil), m.features...) }

// weightedDelta rate-converts and weights each cost-bearing feature's
// entry in delta (itself already a per-feature difference, e.g. the
// access or traversal delta a traversal.Model produced), clamping
// every feature non-negative before it can enter the aggregation.
func (m *Model) weightedDelta(delta statemodel.StateVector, sm statemodel.StateModel) ([]Cost, error) {
	values := make([]Cost, 0, len(m.features))
	for _, name := range m.features {
		raw, err := sm.GetValue(delta, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, err)
		}
		d := float64(raw)
		if d < 0 {
			d = 0
		}
		values = append(values, Cost(d*m.rates[name]*m.weights[name]))
	}
	return values, nil
}

// TraversalCost aggregates the weighted, rate-converted traversal delta
// (the per-edge state change produced after the access step) over
// every cost-bearing feature.
func (m *Model) TraversalCost(delta statemodel.StateVector, sm statemodel.StateModel) (Cost, error) {
	values, err := m.weightedDelta(delta, sm)
	if err != nil {
		return 0, err
	}
	return m.aggregation.fold(values), nil
}

// TraversalCostFromStates computes the delta between prev and next
// itself before aggregating, for callers that only have absolute
// states rather than an already-isolated delta.
func (m *Model) TraversalCostFromStates(prev, next statemodel.StateVector, sm statemodel.StateModel) (Cost, error) {
	delta, err := stateDelta(prev, next, sm, m.features)
	if err != nil {
		return 0, err
	}
	return m.TraversalCost(delta, sm)
}

// AccessCost aggregates the weighted, rate-converted access-step delta.
// Identical shape to TraversalCost; kept as a distinct entry point
// because the two deltas come from distinct stages of a
// traversal.Model's Traversal call and must never be conflated by a
// caller.
func (m *Model) AccessCost(delta statemodel.StateVector, sm statemodel.StateModel) (Cost, error) {
	return m.TraversalCost(delta, sm)
}

// CostEstimate aggregates a lower-bound state delta — produced by a
// traversal.Model's CostEstimate — into the admissible heuristic used
// by the search engine's priority function.
func (m *Model) CostEstimate(lowerBound statemodel.StateVector, sm statemodel.StateModel) (Cost, error) {
	return m.TraversalCost(lowerBound, sm)
}

// SerializeCost renders one entry per cost-bearing feature plus the
// aggregated total for delta.
func (m *Model) SerializeCost(delta statemodel.StateVector, sm statemodel.StateModel) (map[string]any, error) {
	values, err := m.weightedDelta(delta, sm)
	if err != nil {
		return nil, err
	}
	out := make(map[string]any, len(m.features)+1)
	for i, name := range m.features {
		out[name] = float64(values[i])
	}
	out["total"] = float64(m.aggregation.fold(values))
	return out, nil
}

// SerializeCostFromStates computes the delta between prev and next
// itself before rendering it, for callers that only have absolute
// states rather than an already-isolated delta.
func (m *Model) SerializeCostFromStates(prev, next statemodel.StateVector, sm statemodel.StateModel) (map[string]any, error) {
	delta, err := stateDelta(prev, next, sm, m.features)
	if err != nil {
		return nil, err
	}
	return m.SerializeCost(delta, sm)
}

func stateDelta(prev, next statemodel.StateVector, sm statemodel.StateModel, features []string) (statemodel.StateVector, error) {
	if len(prev) != len(next) {
		return nil, fmt.Errorf("%w: state vectors differ in length", ErrUnknownFeature)
	}
	delta := make(statemodel.StateVector, len(prev))
	for _, name := range features {
		d, err := sm.GetDelta(prev, next, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, err)
		}
		i, err := sm.GetIndex(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFeature, err)
		}
		delta[i] = d
	}
	return delta, nil
}
