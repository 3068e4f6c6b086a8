package traversal

import (
	"fmt"

	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/unit"
)

// SpeedModel looks up a free-flow speed for an edge's road class and
// writes the implied travel time. It also records the speed itself (in
// mph, the unit the bundled energy grid is built on) into a custom
// feature so a composed energy.Model can read it directly rather than
// recovering it as distance/Δtime.
type SpeedModel struct {
	TimeFeature  string
	SpeedFeature string
	TimeUnit     unit.TimeUnit

	// SpeedByRoadClass maps graph.Edge.RoadClass to a free-flow speed in
	// mph. A class absent from the map falls back to DefaultSpeedMph.
	SpeedByRoadClass map[uint8]float64
	DefaultSpeedMph  float64
}

// NewSpeedModel builds a SpeedModel with the given road-class speed
// table (mph), falling back to defaultSpeedMph for unlisted classes.
func NewSpeedModel(timeFeature, speedFeature string, timeUnit unit.TimeUnit, speedByRoadClass map[uint8]float64, defaultSpeedMph float64) *SpeedModel {
	return &SpeedModel{
		TimeFeature:      timeFeature,
		SpeedFeature:     speedFeature,
		TimeUnit:         timeUnit,
		SpeedByRoadClass: speedByRoadClass,
		DefaultSpeedMph:  defaultSpeedMph,
	}
}

func (m *SpeedModel) speedMph(roadClass uint8) float64 {
	if v, ok := m.SpeedByRoadClass[roadClass]; ok && v > 0 {
		return v
	}
	return m.DefaultSpeedMph
}

func (m *SpeedModel) InitialState(sm statemodel.StateModel) statemodel.StateVector {
	return sm.InitialState()
}

func (m *SpeedModel) Traversal(_ graph.Vertex, edge graph.Edge, _ graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (Delta, error) {
	accessDelta := make(statemodel.StateVector, len(state))

	speedMph := m.speedMph(edge.RoadClass)
	if speedMph <= 0 {
		return Delta{}, fmt.Errorf("%w: non-positive speed %v for road class %d", ErrNumericError, speedMph, edge.RoadClass)
	}
	distanceMiles := unit.Convert(unit.Distance(edge.Distance), unit.Meters, unit.Miles)
	hours := float64(distanceMiles) / speedMph
	if err := checkFinite(m.TimeFeature, hours); err != nil {
		return Delta{}, err
	}

	afterTime, err := sm.AddTime(state, m.TimeFeature, unit.Time(hours), unit.Hours)
	if err != nil {
		return Delta{}, err
	}

	// Clamp against the time-only step. SpeedFeature is a set, not an
	// accumulator — it records the most recent edge's speed rather than
	// summing it, and must stay free to decrease between edges, so it is
	// written after clamping rather than folded into the clamped delta.
	traversalDelta, next, err := clampedStateDelta(state, afterTime)
	if err != nil {
		return Delta{}, err
	}
	next, err = sm.SetCustomF64(next, m.SpeedFeature, speedMph)
	if err != nil {
		return Delta{}, err
	}

	return Delta{
		AccessDelta:    accessDelta,
		TraversalDelta: traversalDelta,
		NewState:       next,
	}, nil
}

func (m *SpeedModel) CostEstimate(src, dst graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (statemodel.StateVector, error) {
	d := straightLineMeters(src, dst)
	distanceMiles := unit.Convert(unit.Distance(d), unit.Meters, unit.Miles)
	hours := float64(distanceMiles) / m.freeFlowFastestMph()

	next, err := sm.AddTime(state, m.TimeFeature, unit.Time(hours), unit.Hours)
	if err != nil {
		return nil, err
	}
	delta, err := diff(sm, state, next)
	if err != nil {
		return nil, err
	}
	return clampNonNegative(delta), nil
}

// freeFlowFastestMph gives the highest configured speed across all
// road classes, the admissible bound for a time-lower-bound: no edge
// can be traversed faster than the fastest class in the table allows.
func (m *SpeedModel) freeFlowFastestMph() float64 {
	fastest := m.DefaultSpeedMph
	for _, v := range m.SpeedByRoadClass {
		if v > fastest {
			fastest = v
		}
	}
	if fastest <= 0 {
		fastest = 1
	}
	return fastest
}

func (m *SpeedModel) Summary(state statemodel.StateVector, sm statemodel.StateModel) (map[string]any, error) {
	t, err := sm.GetTime(state, m.TimeFeature, m.TimeUnit)
	if err != nil {
		return nil, err
	}
	return map[string]any{m.TimeFeature: float64(t)}, nil
}
