package search_test

import (
	"math"

	"github.com/openrouteengine/compass/graph"
)

// allPairsShortestDistance runs a textbook triple-nested-loop
// all-pairs relax over g's edges, weighted by weight, and returns the
// shortest distance from every vertex to every other. It exists only
// to cross-check the A* engine's optimality against a second,
// independent implementation with no shared code path — including no
// shared priority queue or tie-break logic.
func allPairsShortestDistance(g *graph.Graph, weight func(graph.Edge) float64) [][]float64 {
	n := g.NumVertices()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = math.Inf(1)
			}
		}
	}

	for e := 0; e < g.NumEdges(); e++ {
		edge, err := g.EdgeAttr(graph.EdgeId(e))
		if err != nil {
			continue
		}
		w := weight(edge)
		if w < dist[edge.Src][edge.Dst] {
			dist[edge.Src][edge.Dst] = w
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				via := dist[i][k] + dist[k][j]
				if via < dist[i][j] {
					dist[i][j] = via
				}
			}
		}
	}

	return dist
}
