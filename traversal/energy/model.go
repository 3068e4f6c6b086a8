package energy

import (
	"fmt"
	"math"

	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/traversal"
	"github.com/openrouteengine/compass/unit"
)

// Model evolves an energy feature (kWh) using a Grid predictor keyed by
// speed (read from SpeedFeature, in mph, see traversal.SpeedModel) and
// grade (read from the traversed edge).
type Model struct {
	EnergyFeature string
	SpeedFeature  string
	grid          *Grid
}

// NewModel builds an energy Model reading speed from speedFeature and
// accumulating into energyFeature, predicting a rate from grid.
func NewModel(energyFeature, speedFeature string, grid *Grid) *Model {
	return &Model{EnergyFeature: energyFeature, SpeedFeature: speedFeature, grid: grid}
}

func (m *Model) InitialState(sm statemodel.StateModel) statemodel.StateVector {
	return sm.InitialState()
}

func (m *Model) Traversal(_ graph.Vertex, edge graph.Edge, _ graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (traversal.Delta, error) {
	accessDelta := make(statemodel.StateVector, len(state))

	speedMph, err := sm.GetCustomF64(state, m.SpeedFeature)
	if err != nil {
		return traversal.Delta{}, err
	}

	ratePerMile, err := m.grid.Predict(speedMph, edge.Grade)
	if err != nil {
		return traversal.Delta{}, err
	}
	if math.IsNaN(ratePerMile) || math.IsInf(ratePerMile, 0) {
		return traversal.Delta{}, fmt.Errorf("%w: feature %q produced %v", traversal.ErrPredictionInvalid, m.EnergyFeature, ratePerMile)
	}

	distanceMiles := float64(unit.Convert(unit.Distance(edge.Distance), unit.Meters, unit.Miles))
	energyKwh := ratePerMile * distanceMiles

	// A descending grade can make ratePerMile negative; clamp before the
	// state write (not just on the returned delta) so a downhill edge
	// never decreases the energy a later edge inherits.
	raw, err := sm.AddEnergy(state, m.EnergyFeature, unit.Energy(energyKwh), unit.KilowattHours)
	if err != nil {
		return traversal.Delta{}, err
	}

	traversalDelta, next, err := clampedStateDelta(state, raw)
	if err != nil {
		return traversal.Delta{}, err
	}

	return traversal.Delta{
		AccessDelta:    accessDelta,
		TraversalDelta: traversalDelta,
		NewState:       next,
	}, nil
}

// clampedStateDelta computes raw-state, clamps every negative entry to
// zero, and rebuilds the resulting state from the clamped delta rather
// than from raw directly, so a negative-yielding predictor can never
// decrease the state it writes.
func clampedStateDelta(state, raw statemodel.StateVector) (delta, next statemodel.StateVector, err error) {
	if len(state) != len(raw) {
		return nil, nil, fmt.Errorf("%w: state vectors differ in length (%d vs %d)", traversal.ErrNumericError, len(state), len(raw))
	}
	delta = make(statemodel.StateVector, len(state))
	next = make(statemodel.StateVector, len(state))
	for i := range state {
		d := raw[i] - state[i]
		if d < 0 {
			d = 0
		}
		delta[i] = d
		next[i] = state[i] + d
	}
	return delta, next, nil
}

func (m *Model) CostEstimate(src, dst graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (statemodel.StateVector, error) {
	// The admissible lower bound on energy is zero: a descending grade
	// can make the actual energy cost arbitrarily close to zero (or, on
	// a realized path, clamped to zero after negative-delta clamping),
	// so no positive bound is safe to claim here.
	return make(statemodel.StateVector, len(state)), nil
}

func (m *Model) Summary(state statemodel.StateVector, sm statemodel.StateModel) (map[string]any, error) {
	v, err := sm.GetEnergy(state, m.EnergyFeature, unit.KilowattHours)
	if err != nil {
		return nil, err
	}
	return map[string]any{m.EnergyFeature: float64(v)}, nil
}
