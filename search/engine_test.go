package search_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrouteengine/compass/cost"
	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/graphgen"
	gsearch "github.com/openrouteengine/compass/search"
	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/traversal"
	"github.com/openrouteengine/compass/unit"
)

func lineGraph(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(3, 2)
	require.NoError(t, b.AddVertex(0, graph.Coordinate{}))
	require.NoError(t, b.AddVertex(1, graph.Coordinate{}))
	require.NoError(t, b.AddVertex(2, graph.Coordinate{}))
	require.NoError(t, b.AddEdge(0, 0, 1, 100, 0, 1))
	require.NoError(t, b.AddEdge(1, 1, 2, 200, 0, 1))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func distanceEngine(t *testing.T, g *graph.Graph, dir graph.Direction) *gsearch.Engine {
	t.Helper()
	sm, err := statemodel.New(map[string]statemodel.Feature{
		"distance": statemodel.DistanceFeature(unit.Meters, 0),
	})
	require.NoError(t, err)
	tm := traversal.NewDistanceModel("distance", unit.Meters)
	cm, err := cost.New([]string{"distance"}, map[string]float64{"distance": 1}, map[string]float64{"distance": 1}, cost.Sum)
	require.NoError(t, err)
	return &gsearch.Engine{Graph: g, Direction: dir, TraversalModel: tm, CostModel: cm, StateModel: sm}
}

func TestEngine_LineGraph(t *testing.T) {
	g := lineGraph(t)
	e := distanceEngine(t, g, graph.Forward)
	dest := graph.VertexId(2)

	result, err := e.Run(context.Background(), gsearch.Query{Origin: 0, Destination: &dest})
	require.NoError(t, err)

	require.Len(t, result.Route, 2)
	assert.Equal(t, graph.EdgeId(0), result.Route[0].EdgeID)
	assert.Equal(t, graph.EdgeId(1), result.Route[1].EdgeID)

	var total cost.Cost
	for _, et := range result.Route {
		total += et.AccessCost + et.TraversalCost
	}
	assert.Equal(t, cost.Cost(300), total)
}

func twoPathGraph(t *testing.T) *graph.Graph {
	t.Helper()
	b := graph.NewBuilder(4, 4)
	for i := graph.VertexId(0); i < 4; i++ {
		require.NoError(t, b.AddVertex(i, graph.Coordinate{}))
	}
	require.NoError(t, b.AddEdge(0, 0, 1, 100, 0, 1))
	require.NoError(t, b.AddEdge(1, 1, 3, 100, 0, 1))
	require.NoError(t, b.AddEdge(2, 0, 2, 80, 0, 1))
	require.NoError(t, b.AddEdge(3, 2, 3, 150, 0, 1))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestEngine_TwoPathGraphPicksCheaperRoute(t *testing.T) {
	g := twoPathGraph(t)
	e := distanceEngine(t, g, graph.Forward)
	dest := graph.VertexId(3)

	result, err := e.Run(context.Background(), gsearch.Query{Origin: 0, Destination: &dest})
	require.NoError(t, err)

	require.Len(t, result.Route, 2)
	assert.Equal(t, graph.EdgeId(0), result.Route[0].EdgeID)
	assert.Equal(t, graph.EdgeId(1), result.Route[1].EdgeID)

	var total cost.Cost
	for _, et := range result.Route {
		total += et.AccessCost + et.TraversalCost
	}
	assert.Equal(t, cost.Cost(200), total)
}

func TestEngine_UnreachableDestination(t *testing.T) {
	b := graph.NewBuilder(3, 1)
	require.NoError(t, b.AddVertex(0, graph.Coordinate{}))
	require.NoError(t, b.AddVertex(1, graph.Coordinate{}))
	require.NoError(t, b.AddVertex(2, graph.Coordinate{}))
	require.NoError(t, b.AddEdge(0, 0, 1, 100, 0, 1))
	g, err := b.Build()
	require.NoError(t, err)

	e := distanceEngine(t, g, graph.Forward)
	dest := graph.VertexId(2)

	_, err = e.Run(context.Background(), gsearch.Query{Origin: 0, Destination: &dest})
	assert.ErrorIs(t, err, gsearch.ErrNoPathExists)
}

func TestEngine_OriginEqualsDestinationReturnsEmptyRoute(t *testing.T) {
	g := lineGraph(t)
	e := distanceEngine(t, g, graph.Forward)
	dest := graph.VertexId(0)

	result, err := e.Run(context.Background(), gsearch.Query{Origin: 0, Destination: &dest})
	require.NoError(t, err)
	assert.Empty(t, result.Route)
}

func TestEngine_DeterministicAcrossRuns(t *testing.T) {
	g := twoPathGraph(t)
	dest := graph.VertexId(3)

	var firstRoute []graph.EdgeId
	for i := 0; i < 5; i++ {
		e := distanceEngine(t, g, graph.Forward)
		result, err := e.Run(context.Background(), gsearch.Query{Origin: 0, Destination: &dest})
		require.NoError(t, err)
		var ids []graph.EdgeId
		for _, et := range result.Route {
			ids = append(ids, et.EdgeID)
		}
		if i == 0 {
			firstRoute = ids
		} else {
			assert.Equal(t, firstRoute, ids)
		}
	}
}

// negativeDistanceModel always reports a negative traversal delta, used
// to exercise the engine's clamp-to-zero rule for a predictor that
// dips negative on a downhill segment.
type negativeDistanceModel struct {
	featureName string
}

func (m *negativeDistanceModel) InitialState(sm statemodel.StateModel) statemodel.StateVector {
	return sm.InitialState()
}

func (m *negativeDistanceModel) Traversal(_ graph.Vertex, _ graph.Edge, _ graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (traversal.Delta, error) {
	next, err := sm.AddDistance(state, m.featureName, -0.01, unit.Meters)
	if err != nil {
		return traversal.Delta{}, err
	}
	delta := make(statemodel.StateVector, len(state))
	for i := range state {
		delta[i] = next[i] - state[i]
	}
	clamped := make(statemodel.StateVector, len(delta))
	for i, v := range delta {
		if v < 0 {
			v = 0
		}
		clamped[i] = v
	}
	return traversal.Delta{
		AccessDelta:    make(statemodel.StateVector, len(state)),
		TraversalDelta: clamped,
		NewState:       next,
	}, nil
}

func (m *negativeDistanceModel) CostEstimate(_, _ graph.Vertex, state statemodel.StateVector, _ statemodel.StateModel) (statemodel.StateVector, error) {
	return make(statemodel.StateVector, len(state)), nil
}

func (m *negativeDistanceModel) Summary(state statemodel.StateVector, sm statemodel.StateModel) (map[string]any, error) {
	v, err := sm.GetDistance(state, m.featureName, unit.Meters)
	if err != nil {
		return nil, err
	}
	return map[string]any{m.featureName: float64(v)}, nil
}

func TestEngine_NegativePredictorClampedToZero(t *testing.T) {
	g := lineGraph(t)
	sm, err := statemodel.New(map[string]statemodel.Feature{
		"distance": statemodel.DistanceFeature(unit.Meters, 0),
	})
	require.NoError(t, err)
	cm, err := cost.New([]string{"distance"}, map[string]float64{"distance": 1}, map[string]float64{"distance": 1}, cost.Sum)
	require.NoError(t, err)
	e := &gsearch.Engine{
		Graph:          g,
		Direction:      graph.Forward,
		TraversalModel: &negativeDistanceModel{featureName: "distance"},
		CostModel:      cm,
		StateModel:     sm,
	}
	dest := graph.VertexId(2)

	result, err := e.Run(context.Background(), gsearch.Query{Origin: 0, Destination: &dest})
	require.NoError(t, err)

	var total cost.Cost
	for _, et := range result.Route {
		total += et.AccessCost + et.TraversalCost
	}
	assert.Equal(t, cost.Zero, total, "a negative predicted delta must be clamped before it can accumulate cost")
}

func TestEngine_ReversalMatchesForwardCost(t *testing.T) {
	g := twoPathGraph(t)
	forward := distanceEngine(t, g, graph.Forward)
	dest := graph.VertexId(3)
	fwdResult, err := forward.Run(context.Background(), gsearch.Query{Origin: 0, Destination: &dest})
	require.NoError(t, err)

	reverse := distanceEngine(t, g, graph.Reverse)
	origin := graph.VertexId(0)
	revResult, err := reverse.Run(context.Background(), gsearch.Query{Origin: 3, Destination: &origin})
	require.NoError(t, err)

	var fwdTotal, revTotal cost.Cost
	for _, et := range fwdResult.Route {
		fwdTotal += et.AccessCost + et.TraversalCost
	}
	for _, et := range revResult.Route {
		revTotal += et.AccessCost + et.TraversalCost
	}
	assert.Equal(t, fwdTotal, revTotal)
}

// TestEngine_OptimalityMatchesBruteForce is the "Optimality of A*"
// testable property: for an admissible heuristic, the cost the engine
// returns must equal the cost a from-scratch all-pairs relax finds, on
// a graph irregular enough to exercise the priority queue's tie-break
// and stale-entry paths. RandomSparse lays its 12 vertices out one
// degree apart (at most about 1,007 km between any two), so every edge
// is given a length of at least 1,100 km: the haversine bound the
// distance model uses is then admissible on this fixture.
func TestEngine_OptimalityMatchesBruteForce(t *testing.T) {
	g, err := graphgen.RandomSparse(12, 0.3, graphgen.WithSeed(42),
		graphgen.WithDistanceFn(func(rng *rand.Rand, _, _ int) float64 {
			return 1_100_000 + rng.Float64()*1_000_000
		}))
	require.NoError(t, err)

	brute := allPairsShortestDistance(g, func(e graph.Edge) float64 { return e.Distance })

	for origin := graph.VertexId(0); origin < 12; origin++ {
		e := distanceEngine(t, g, graph.Forward)
		for dest := graph.VertexId(0); dest < 12; dest++ {
			if dest == origin {
				continue
			}
			want := brute[origin][dest]

			d := dest
			result, err := e.Run(context.Background(), gsearch.Query{Origin: origin, Destination: &d})
			if math.IsInf(want, 1) {
				assert.ErrorIs(t, err, gsearch.ErrNoPathExists)
				continue
			}
			require.NoError(t, err)

			var total cost.Cost
			for _, et := range result.Route {
				total += et.AccessCost + et.TraversalCost
			}
			assert.InDelta(t, want, float64(total), 1e-6)
		}
	}
}
