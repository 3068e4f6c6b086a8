package graphgen

import "github.com/openrouteengine/compass/graph"

// Cycle builds a ring of n vertices connected by n directed edges
// i→(i+1 mod n). Useful for search tests that need a graph with no
// dead ends in either adjacency direction.
func Cycle(n int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if n < 1 {
		n = 0
	}

	b := graph.NewBuilder(n, n)
	for i := 0; i < n; i++ {
		if err := b.AddVertex(graph.VertexId(i), graph.Coordinate{Lon: float64(i), Lat: 0}); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		d := cfg.distanceFn(cfg.rng, i, j)
		gr := cfg.gradeFn(cfg.rng, i, j)
		rc := cfg.roadClassFn(cfg.rng, i, j)
		if err := b.AddEdge(graph.EdgeId(i), graph.VertexId(i), graph.VertexId(j), d, gr, rc); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
