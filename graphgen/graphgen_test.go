package graphgen_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/graphgen"
)

func TestLine_MatchesScenarioOneFixture(t *testing.T) {
	g, err := graphgen.Line(3, graphgen.WithDistanceFn(func(_ *rand.Rand, i, j int) float64 {
		if i == 0 {
			return 100
		}
		return 200
	}))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 2, g.NumEdges())

	e0, err := g.EdgeAttr(0)
	require.NoError(t, err)
	assert.Equal(t, 100.0, e0.Distance)

	e1, err := g.EdgeAttr(1)
	require.NoError(t, err)
	assert.Equal(t, 200.0, e1.Distance)
}

func TestCycle_EveryVertexHasOneOutAndOneIn(t *testing.T) {
	g, err := graphgen.Cycle(5)
	require.NoError(t, err)
	for v := graph.VertexId(0); v < 5; v++ {
		out, err := g.OutEdges(v)
		require.NoError(t, err)
		assert.Len(t, out, 1)
		in, err := g.InEdges(v)
		require.NoError(t, err)
		assert.Len(t, in, 1)
	}
}

func TestGrid_EdgeCountMatchesLattice(t *testing.T) {
	g, err := graphgen.Grid(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 12, g.NumVertices())
	// horizontal: 3 rows * 3 internal cols * 2 directions = 18
	// vertical: 2 internal rows * 4 cols * 2 directions = 16
	assert.Equal(t, 34, g.NumEdges())
}

func TestGrid_RejectsNonPositiveDimensions(t *testing.T) {
	_, err := graphgen.Grid(0, 4)
	assert.ErrorIs(t, err, graphgen.ErrInvalidDimensions)
}

func TestRandomSparse_DeterministicUnderSameSeed(t *testing.T) {
	g1, err := graphgen.RandomSparse(20, 0.2, graphgen.WithSeed(7))
	require.NoError(t, err)
	g2, err := graphgen.RandomSparse(20, 0.2, graphgen.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, g1.NumEdges(), g2.NumEdges())
}

func TestRandomSparse_RejectsInvalidDensity(t *testing.T) {
	_, err := graphgen.RandomSparse(5, 1.5)
	assert.ErrorIs(t, err, graphgen.ErrInvalidDensity)
}
