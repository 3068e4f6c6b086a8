package traversal

import (
	"fmt"

	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/internal/geo"
	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/unit"
)

// DistanceModel accumulates edge.Distance (assumed to be in meters, the
// graph's canonical distance unit) into a single named feature. It has
// no access-step cost: road networks charge for traversing an edge, not
// for entering one.
type DistanceModel struct {
	FeatureName string
	Unit        unit.DistanceUnit
}

// NewDistanceModel builds a DistanceModel writing into featureName,
// expressed in the state model's declared unit for that feature.
func NewDistanceModel(featureName string, u unit.DistanceUnit) *DistanceModel {
	return &DistanceModel{FeatureName: featureName, Unit: u}
}

func (m *DistanceModel) InitialState(sm statemodel.StateModel) statemodel.StateVector {
	return sm.InitialState()
}

func (m *DistanceModel) Traversal(_ graph.Vertex, edge graph.Edge, _ graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (Delta, error) {
	accessDelta := make(statemodel.StateVector, len(state))

	raw, err := sm.AddDistance(state, m.FeatureName, unit.Distance(edge.Distance), unit.Meters)
	if err != nil {
		return Delta{}, err
	}
	traversalDelta, next, err := clampedStateDelta(state, raw)
	if err != nil {
		return Delta{}, err
	}

	return Delta{
		AccessDelta:    accessDelta,
		TraversalDelta: traversalDelta,
		NewState:       next,
	}, nil
}

func (m *DistanceModel) CostEstimate(src, dst graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (statemodel.StateVector, error) {
	d := straightLineMeters(src, dst)
	next, err := sm.AddDistance(state, m.FeatureName, unit.Distance(d), unit.Meters)
	if err != nil {
		return nil, err
	}
	delta, err := diff(sm, state, next)
	if err != nil {
		return nil, err
	}
	return clampNonNegative(delta), nil
}

func (m *DistanceModel) Summary(state statemodel.StateVector, sm statemodel.StateModel) (map[string]any, error) {
	v, err := sm.GetDistance(state, m.FeatureName, m.Unit)
	if err != nil {
		return nil, err
	}
	return map[string]any{m.FeatureName: float64(v)}, nil
}

// diff returns end - start across every slot of the state vector.
// Traversal models use it to turn a before/after state into the
// feature-wise delta the search and cost model operate on.
func diff(sm statemodel.StateModel, start, end statemodel.StateVector) (statemodel.StateVector, error) {
	if len(start) != len(end) {
		return nil, fmt.Errorf("%w: state vectors differ in length (%d vs %d)", ErrNumericError, len(start), len(end))
	}
	out := make(statemodel.StateVector, len(start))
	for i := range start {
		out[i] = end[i] - start[i]
	}
	return out, nil
}

// straightLineMeters gives a great-circle lower bound on the distance
// between two vertices, used as the admissible heuristic contribution
// for the distance feature. Grounded on the haversine formula rather
// than a flat-earth approximation since vertex coordinates are
// lon/lat pairs that may span a wide area.
func straightLineMeters(src, dst graph.Vertex) float64 {
	return geo.HaversineMeters(src.Coordinate.Lat, src.Coordinate.Lon, dst.Coordinate.Lat, dst.Coordinate.Lon)
}
