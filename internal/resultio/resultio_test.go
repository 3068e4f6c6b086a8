package resultio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrouteengine/compass/cost"
	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/internal/resultio"
	"github.com/openrouteengine/compass/search"
	"github.com/openrouteengine/compass/statemodel"
)

func sampleResult() *search.Result {
	return &search.Result{
		Route: []search.EdgeTraversal{
			{EdgeID: 0, AccessCost: cost.Zero, TraversalCost: cost.Cost(100), ResultState: statemodel.StateVector{100}},
		},
		SearchRuntime: 2500 * time.Microsecond,
		RouteRuntime:  500 * time.Microsecond,
		TotalRuntime:  3 * time.Millisecond,
		Summary:       map[string]any{"distance": 100.0},
		CostSummary:   map[string]any{"distance": 100.0},
	}
}

func TestMarshalJSON_ProducesSnakeCaseMillisecondFields(t *testing.T) {
	data, err := resultio.MarshalJSON(sampleResult())
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, `"edge_id": 0`)
	assert.Contains(t, s, `"search_runtime_ms": 2.5`)
	assert.Contains(t, s, `"total_runtime_ms": 3`)
	assert.NotContains(t, s, `"tree"`)
}

func TestMarshalYAML_IncludesSnakeCaseRuntimeField(t *testing.T) {
	data, err := resultio.MarshalYAML(sampleResult())
	require.NoError(t, err)
	assert.Contains(t, string(data), "route_runtime_ms")
}

func TestMarshalJSON_IncludesTreeWhenExported(t *testing.T) {
	r := sampleResult()
	r.Tree = map[graph.VertexId]search.SearchTreeBranch{
		1: {PrevEdgeTraversal: search.EdgeTraversal{EdgeID: 0}, TerminalVertex: 1},
	}
	data, err := resultio.MarshalJSON(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"terminal_vertex": 1`)
}
