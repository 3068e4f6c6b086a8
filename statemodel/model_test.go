package statemodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/unit"
)

func distanceTimeModel(t *testing.T) statemodel.StateModel {
	t.Helper()
	m, err := statemodel.New(map[string]statemodel.Feature{
		"distance": statemodel.DistanceFeature(unit.Meters, 0),
		"time":     statemodel.TimeFeature(unit.Seconds, 0),
	})
	require.NoError(t, err)
	return m
}

func TestNew_ChoosesSpecializationBySize(t *testing.T) {
	for n := 0; n <= 6; n++ {
		features := map[string]statemodel.Feature{}
		for i := 0; i < n; i++ {
			features[string(rune('a'+i))] = statemodel.DistanceFeature(unit.Meters, 0)
		}
		m, err := statemodel.New(features)
		require.NoError(t, err)
		assert.Equal(t, n, m.Len())
	}
}

func TestStateModel_IndexIsStableUnderNameOrder(t *testing.T) {
	a, err := statemodel.New(map[string]statemodel.Feature{
		"zzz": statemodel.DistanceFeature(unit.Meters, 0),
		"aaa": statemodel.TimeFeature(unit.Seconds, 0),
	})
	require.NoError(t, err)

	iZZZ, err := a.GetIndex("zzz")
	require.NoError(t, err)
	iAAA, err := a.GetIndex("aaa")
	require.NoError(t, err)
	assert.Less(t, iAAA, iZZZ, "aaa sorts before zzz")
}

func TestStateModel_RoundTripDistanceThroughDifferentUnit(t *testing.T) {
	m := distanceTimeModel(t)
	state := m.InitialState()

	state, err := m.SetDistance(state, "distance", 1, unit.Miles)
	require.NoError(t, err)

	meters, err := m.GetDistance(state, "distance", unit.Meters)
	require.NoError(t, err)
	assert.InDelta(t, 1609.344, float64(meters), 1e-6)

	milesBack, err := m.GetDistance(state, "distance", unit.Miles)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, float64(milesBack), 1e-9)
}

func TestStateModel_AddAccumulatesAcrossCalls(t *testing.T) {
	m := distanceTimeModel(t)
	state := m.InitialState()

	state, err := m.AddDistance(state, "distance", 100, unit.Meters)
	require.NoError(t, err)
	state, err = m.AddDistance(state, "distance", 200, unit.Meters)
	require.NoError(t, err)

	total, err := m.GetDistance(state, "distance", unit.Meters)
	require.NoError(t, err)
	assert.Equal(t, unit.Distance(300), total)
}

func TestStateModel_GetDeltaReflectsTraversal(t *testing.T) {
	m := distanceTimeModel(t)
	start := m.InitialState()
	end, err := m.AddDistance(start, "distance", 50, unit.Meters)
	require.NoError(t, err)

	delta, err := m.GetDelta(start, end, "distance")
	require.NoError(t, err)
	assert.Equal(t, statemodel.StateVar(50), delta)
}

func TestStateModel_IncompatibleFeatureTypeRejected(t *testing.T) {
	m := distanceTimeModel(t)
	state := m.InitialState()
	_, err := m.GetEnergy(state, "distance", unit.KilowattHours)
	assert.ErrorIs(t, err, statemodel.ErrIncompatibleFeatureType)
}

func TestStateModel_UnknownFeatureRejected(t *testing.T) {
	m := distanceTimeModel(t)
	state := m.InitialState()
	_, err := m.GetValue(state, "nonexistent")
	assert.ErrorIs(t, err, statemodel.ErrUnknownFeature)
}

func TestStateModel_SizeMismatchRejected(t *testing.T) {
	m := distanceTimeModel(t)
	_, err := m.GetValue(statemodel.StateVector{1}, "distance")
	assert.ErrorIs(t, err, statemodel.ErrStateVectorSizeMismatch)
}

func TestStateModel_ExtendOverridesAndAdds(t *testing.T) {
	base := distanceTimeModel(t)
	override, err := statemodel.New(map[string]statemodel.Feature{
		"distance": statemodel.DistanceFeature(unit.Miles, 10),
		"energy":   statemodel.EnergyFeature(unit.KilowattHours, 0),
	})
	require.NoError(t, err)

	merged := base.Extend(override)
	assert.Equal(t, 3, merged.Len())

	state := merged.InitialState()
	d, err := merged.GetDistance(state, "distance", unit.Miles)
	require.NoError(t, err)
	assert.Equal(t, unit.Distance(10), d, "override's feature wins over base's")
}

func TestCustomFeature_UnsignedIntegerRejectsNegative(t *testing.T) {
	m, err := statemodel.New(map[string]statemodel.Feature{
		"visits": statemodel.CustomFeature(statemodel.CustomFormat{Kind: statemodel.UnsignedInteger}, 0),
	})
	require.NoError(t, err)
	state := m.InitialState()

	state, err = m.SetCustomU64(state, "visits", 3)
	require.NoError(t, err)
	v, err := m.GetCustomU64(state, "visits")
	require.NoError(t, err)
	assert.Equal(t, uint64(3), v)

	_, err = m.SetCustomF64(state, "visits", -1)
	assert.ErrorIs(t, err, statemodel.ErrCodecError)
}

func TestCustomFeature_BooleanRoundTrip(t *testing.T) {
	m, err := statemodel.New(map[string]statemodel.Feature{
		"tolled": statemodel.CustomFeature(statemodel.CustomFormat{Kind: statemodel.Boolean}, 0),
	})
	require.NoError(t, err)
	state := m.InitialState()

	state, err = m.SetCustomBool(state, "tolled", true)
	require.NoError(t, err)
	v, err := m.GetCustomBool(state, "tolled")
	require.NoError(t, err)
	assert.True(t, v)
}

func TestStateModel_SerializeStateKeysByFeatureName(t *testing.T) {
	m := distanceTimeModel(t)
	state, err := m.AddDistance(m.InitialState(), "distance", 42, unit.Meters)
	require.NoError(t, err)

	data, err := m.SerializeState(state)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"distance":42`)
}

func TestStateModel_SerializeStateModelListsFeatureNameAndUnit(t *testing.T) {
	m := distanceTimeModel(t)
	data, err := m.SerializeStateModel()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"distance"`)
	assert.Contains(t, string(data), `"unit":"meters"`)
}
