package graphgen

import "github.com/openrouteengine/compass/graph"

// Line builds a straight chain of n vertices (0..n-1) connected by n-1
// directed edges i→i+1. With the default config every edge is
// DefaultDistanceMeters long; Line(3) with a distanceFn returning 100
// for the first edge and 200 for the second reproduces the line-graph
// fixture (0→1, 100m), (1→2, 200m).
func Line(n int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if n < 2 {
		b := graph.NewBuilder(maxInt(n, 0), 0)
		for i := 0; i < n; i++ {
			if err := b.AddVertex(graph.VertexId(i), graph.Coordinate{Lon: float64(i), Lat: 0}); err != nil {
				return nil, err
			}
		}
		return b.Build()
	}

	b := graph.NewBuilder(n, n-1)
	for i := 0; i < n; i++ {
		if err := b.AddVertex(graph.VertexId(i), graph.Coordinate{Lon: float64(i), Lat: 0}); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n-1; i++ {
		d := cfg.distanceFn(cfg.rng, i, i+1)
		g := cfg.gradeFn(cfg.rng, i, i+1)
		rc := cfg.roadClassFn(cfg.rng, i, i+1)
		if err := b.AddEdge(graph.EdgeId(i), graph.VertexId(i), graph.VertexId(i+1), d, g, rc); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
