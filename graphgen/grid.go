package graphgen

import "github.com/openrouteengine/compass/graph"

// Grid builds a rows×cols lattice of vertices, each connected to its
// right and down neighbor by a pair of directed edges (one each way),
// approximating a dense urban street grid. Vertex id for (r, c) is
// r*cols + c; coordinates are laid out one degree apart so haversine
// distance comparisons in traversal tests see a non-degenerate shape.
func Grid(rows, cols int, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if rows < 1 || cols < 1 {
		return nil, ErrInvalidDimensions
	}
	n := rows * cols

	horizontalEdges := rows * maxInt(cols-1, 0)
	verticalEdges := maxInt(rows-1, 0) * cols
	edgeCount := 2 * (horizontalEdges + verticalEdges)

	b := graph.NewBuilder(n, edgeCount)
	id := func(r, c int) graph.VertexId { return graph.VertexId(r*cols + c) }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			coord := graph.Coordinate{Lon: float64(c), Lat: float64(r)}
			if err := b.AddVertex(id(r, c), coord); err != nil {
				return nil, err
			}
		}
	}

	nextEdgeID := 0
	addPair := func(a, bv graph.VertexId) error {
		for _, pair := range [2][2]graph.VertexId{{a, bv}, {bv, a}} {
			d := cfg.distanceFn(cfg.rng, int(pair[0]), int(pair[1]))
			gr := cfg.gradeFn(cfg.rng, int(pair[0]), int(pair[1]))
			rc := cfg.roadClassFn(cfg.rng, int(pair[0]), int(pair[1]))
			if err := b.AddEdge(graph.EdgeId(nextEdgeID), pair[0], pair[1], d, gr, rc); err != nil {
				return err
			}
			nextEdgeID++
		}
		return nil
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := addPair(id(r, c), id(r, c+1)); err != nil {
					return nil, err
				}
			}
			if r+1 < rows {
				if err := addPair(id(r, c), id(r+1, c)); err != nil {
					return nil, err
				}
			}
		}
	}

	return b.Build()
}
