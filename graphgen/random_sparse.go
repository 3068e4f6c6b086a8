package graphgen

import (
	"github.com/openrouteengine/compass/graph"
)

// RandomSparse builds a random directed graph over n vertices where
// each ordered pair (i, j), i != j, becomes an edge independently with
// probability density. The search package's optimality test uses it as
// a graph too irregular for Line/Cycle/Grid, to exercise the priority
// queue's tie-breaking and lazy decrease-key paths. Vertex i is placed
// at (lon, lat) = (i mod 10, i / 10).
func RandomSparse(n int, density float64, opts ...Option) (*graph.Graph, error) {
	if density < 0 || density > 1 {
		return nil, ErrInvalidDensity
	}
	cfg := newConfig(opts...)
	rng := cfg.rng

	type pair struct{ i, j int }
	var pairs []pair
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rng.Float64() < density {
				pairs = append(pairs, pair{i, j})
			}
		}
	}

	b := graph.NewBuilder(n, len(pairs))
	for i := 0; i < n; i++ {
		if err := b.AddVertex(graph.VertexId(i), graph.Coordinate{Lon: float64(i % 10), Lat: float64(i / 10)}); err != nil {
			return nil, err
		}
	}
	for id, p := range pairs {
		d := cfg.distanceFn(rng, p.i, p.j)
		gr := cfg.gradeFn(rng, p.i, p.j)
		rc := cfg.roadClassFn(rng, p.i, p.j)
		if err := b.AddEdge(graph.EdgeId(id), graph.VertexId(p.i), graph.VertexId(p.j), d, gr, rc); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
