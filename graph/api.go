// Role: thin, deterministic public facade over Graph's internal arrays.
// No algorithms live here; every method is O(1) and allocation-free.
package graph

// VertexAttr returns the Vertex for id, or ErrVertexAttributeNotFound if
// id is out of range.
//
// Complexity: O(1).
func (g *Graph) VertexAttr(id VertexId) (Vertex, error) {
	if id < 0 || int(id) >= len(g.vertices) {
		return Vertex{}, ErrVertexAttributeNotFound
	}
	return g.vertices[id], nil
}

// EdgeAttr returns the Edge for id, or ErrEdgeAttributeNotFound if id is
// out of range.
//
// Complexity: O(1).
func (g *Graph) EdgeAttr(id EdgeId) (Edge, error) {
	if id < 0 || int(id) >= len(g.edges) {
		return Edge{}, ErrEdgeAttributeNotFound
	}
	return g.edges[id], nil
}

// IncidentEdges returns the edge ids incident to v in the given
// direction: Forward uses out-adjacency, Reverse uses in-adjacency.
// Returns a zero-length slice and no error for a vertex with no edges in that
// direction, and ErrVertexAttributeNotFound for an id outside the graph.
//
// Complexity: O(1) plus the slice length.
func (g *Graph) IncidentEdges(v VertexId, dir Direction) ([]EdgeId, error) {
	if v < 0 || int(v) >= len(g.vertices) {
		return nil, ErrVertexAttributeNotFound
	}
	if dir == Forward {
		return g.adjOut[v], nil
	}
	return g.adjIn[v], nil
}

// OutEdges returns the ids of edges leaving v, or ErrVertexWithoutOutEdges
// if v has none.
func (g *Graph) OutEdges(v VertexId) ([]EdgeId, error) {
	edges, err := g.IncidentEdges(v, Forward)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, ErrVertexWithoutOutEdges
	}
	return edges, nil
}

// InEdges returns the ids of edges entering v, or ErrVertexWithoutInEdges
// if v has none.
func (g *Graph) InEdges(v VertexId) ([]EdgeId, error) {
	edges, err := g.IncidentEdges(v, Reverse)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, ErrVertexWithoutInEdges
	}
	return edges, nil
}

// IncidentVertex returns the "far" endpoint of e relative to direction
// dir: Forward returns Dst, Reverse returns Src.
//
// Complexity: O(1).
func (g *Graph) IncidentVertex(e EdgeId, dir Direction) (VertexId, error) {
	edge, err := g.EdgeAttr(e)
	if err != nil {
		return 0, err
	}
	if dir == Forward {
		return edge.Dst, nil
	}
	return edge.Src, nil
}

// EdgeTriplet is the (src, edge, dst) unit a TraversalModel consumes.
// Forward direction orders src=edge.Src, dst=edge.Dst; Reverse swaps them
// so callers can search backward from a destination.
type EdgeTriplet struct {
	Src  Vertex
	Edge Edge
	Dst  Vertex
}

// EdgeTriplet resolves e into its (src_vertex, edge, dst_vertex) triplet,
// oriented per dir.
func (g *Graph) EdgeTriplet(e EdgeId, dir Direction) (EdgeTriplet, error) {
	edge, err := g.EdgeAttr(e)
	if err != nil {
		return EdgeTriplet{}, err
	}
	srcID, dstID := edge.Src, edge.Dst
	if dir == Reverse {
		srcID, dstID = dstID, srcID
	}
	srcV, err := g.VertexAttr(srcID)
	if err != nil {
		return EdgeTriplet{}, err
	}
	dstV, err := g.VertexAttr(dstID)
	if err != nil {
		return EdgeTriplet{}, err
	}
	return EdgeTriplet{Src: srcV, Edge: edge, Dst: dstV}, nil
}

// IncidentTriplets returns the (src, edge, dst) triplets for every edge
// incident to v in direction dir, oriented so that Src==v always.
//
// Complexity: O(degree(v)).
func (g *Graph) IncidentTriplets(v VertexId, dir Direction) ([]EdgeTriplet, error) {
	edges, err := g.IncidentEdges(v, dir)
	if err != nil {
		return nil, err
	}
	triplets := make([]EdgeTriplet, 0, len(edges))
	for _, e := range edges {
		t, err := g.EdgeTriplet(e, dir)
		if err != nil {
			return nil, err
		}
		triplets = append(triplets, t)
	}
	return triplets, nil
}
