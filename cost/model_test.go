package cost_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrouteengine/compass/cost"
	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/unit"
)

func distanceModel(t *testing.T) statemodel.StateModel {
	t.Helper()
	m, err := statemodel.New(map[string]statemodel.Feature{
		"distance": statemodel.DistanceFeature(unit.Meters, 0),
		"energy":   statemodel.EnergyFeature(unit.KilowattHours, 0),
	})
	require.NoError(t, err)
	return m
}

func TestModel_TraversalCostSumsWeightedRate(t *testing.T) {
	sm := distanceModel(t)
	m, err := cost.New(
		[]string{"distance"},
		map[string]float64{"distance": 2.0},
		map[string]float64{"distance": 0.5},
		cost.Sum,
	)
	require.NoError(t, err)

	prev := sm.InitialState()
	next, err := sm.AddDistance(prev, "distance", 100, unit.Meters)
	require.NoError(t, err)

	c, err := m.TraversalCostFromStates(prev, next, sm)
	require.NoError(t, err)
	assert.Equal(t, cost.Cost(100), c) // 100 * 0.5 * 2.0
}

func TestModel_NegativeDeltaClampedToZero(t *testing.T) {
	sm := distanceModel(t)
	m, err := cost.New(
		[]string{"distance"},
		map[string]float64{"distance": 1.0},
		map[string]float64{"distance": 1.0},
		cost.Sum,
	)
	require.NoError(t, err)

	prev, err := sm.AddDistance(sm.InitialState(), "distance", 100, unit.Meters)
	require.NoError(t, err)
	next := sm.InitialState() // next < prev: a negative delta

	c, err := m.TraversalCostFromStates(prev, next, sm)
	require.NoError(t, err)
	assert.Equal(t, cost.Zero, c)
}

func TestModel_MulAggregationEmptyYieldsZero(t *testing.T) {
	sm := distanceModel(t)
	m, err := cost.New(nil, map[string]float64{}, map[string]float64{}, cost.Mul)
	require.NoError(t, err)

	c, err := m.TraversalCostFromStates(sm.InitialState(), sm.InitialState(), sm)
	require.NoError(t, err)
	assert.Equal(t, cost.Zero, c, "empty Mul aggregation is zero, not the multiplicative identity")
}

func TestModel_MulAggregationMultipliesNonEmpty(t *testing.T) {
	sm := distanceModel(t)
	m, err := cost.New(
		[]string{"distance", "energy"},
		map[string]float64{"distance": 1.0, "energy": 1.0},
		map[string]float64{"distance": 1.0, "energy": 1.0},
		cost.Mul,
	)
	require.NoError(t, err)

	prev := sm.InitialState()
	next, err := sm.AddDistance(prev, "distance", 2, unit.Meters)
	require.NoError(t, err)
	next, err = sm.AddEnergy(next, "energy", 3, unit.KilowattHours)
	require.NoError(t, err)

	c, err := m.TraversalCostFromStates(prev, next, sm)
	require.NoError(t, err)
	assert.Equal(t, cost.Cost(6), c)
}

func TestNew_RejectsMissingWeight(t *testing.T) {
	_, err := cost.New([]string{"distance"}, map[string]float64{}, map[string]float64{"distance": 1}, cost.Sum)
	assert.ErrorIs(t, err, cost.ErrBuildError)
}

func TestModel_CostEstimateAggregatesLowerBound(t *testing.T) {
	sm := distanceModel(t)
	m, err := cost.New(
		[]string{"distance"},
		map[string]float64{"distance": 1.0},
		map[string]float64{"distance": 1.0},
		cost.Sum,
	)
	require.NoError(t, err)

	bound, err := sm.AddDistance(sm.InitialState(), "distance", 42, unit.Meters)
	require.NoError(t, err)

	c, err := m.CostEstimate(bound, sm)
	require.NoError(t, err)
	assert.Equal(t, cost.Cost(42), c)
}
