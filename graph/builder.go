package graph

import "fmt"

// Builder accumulates vertices and edges reported by an ingestion source
// into pre-sized dense arrays, then freezes them into an immutable Graph.
//
// Callers must know the total vertex and edge counts up front (a single
// pass over the input, per spec) so the builder can allocate once and
// fill in any order, without a sort pass. Ids supplied by the source are
// used directly as array offsets and must form a dense range [0, n).
type Builder struct {
	vertices   []Vertex
	edges      []Edge
	vertexSeen []bool
	edgeSeen   []bool
	nVertices  int
	nEdges     int
}

// NewBuilder allocates a Builder sized for exactly nVertices vertices and
// nEdges edges.
//
// Complexity: O(nVertices + nEdges) allocation.
func NewBuilder(nVertices, nEdges int) *Builder {
	return &Builder{
		vertices:   make([]Vertex, nVertices),
		edges:      make([]Edge, nEdges),
		vertexSeen: make([]bool, nVertices),
		edgeSeen:   make([]bool, nEdges),
		nVertices:  nVertices,
		nEdges:     nEdges,
	}
}

// AddVertex records vertex id with its coordinate. id must be in
// [0, nVertices) and not previously seen.
func (b *Builder) AddVertex(id VertexId, coord Coordinate) error {
	if id < 0 || int(id) >= b.nVertices {
		return fmt.Errorf("%w: vertex id %d outside [0,%d)", ErrNonDenseIDs, id, b.nVertices)
	}
	if b.vertexSeen[id] {
		return fmt.Errorf("%w: vertex id %d", ErrDuplicateVertexID, id)
	}
	b.vertexSeen[id] = true
	b.vertices[id] = Vertex{ID: id, Coordinate: coord}
	return nil
}

// AddEdge records edge id from src to dst. id must be in [0, nEdges) and
// not previously seen; src and dst need not already be added via
// AddVertex (order is unconstrained) but must be validated at Build time.
func (b *Builder) AddEdge(id EdgeId, src, dst VertexId, distance, grade float64, roadClass uint8) error {
	if id < 0 || int(id) >= b.nEdges {
		return fmt.Errorf("%w: edge id %d outside [0,%d)", ErrNonDenseIDs, id, b.nEdges)
	}
	if b.edgeSeen[id] {
		return fmt.Errorf("%w: edge id %d", ErrDuplicateEdgeID, id)
	}
	b.edgeSeen[id] = true
	b.edges[id] = Edge{
		ID:        id,
		Src:       src,
		Dst:       dst,
		Distance:  distance,
		Grade:     grade,
		RoadClass: roadClass,
	}
	return nil
}

// Build validates that every declared id was filled and every edge
// endpoint is a valid vertex, then returns the frozen Graph with forward
// and reverse adjacency computed.
//
// Complexity: O(nVertices + nEdges).
func (b *Builder) Build() (*Graph, error) {
	for id, seen := range b.vertexSeen {
		if !seen {
			return nil, fmt.Errorf("%w: vertex id %d never supplied", ErrNonDenseIDs, id)
		}
	}
	for id, seen := range b.edgeSeen {
		if !seen {
			return nil, fmt.Errorf("%w: edge id %d never supplied", ErrNonDenseIDs, id)
		}
	}

	outDegree := make([]int, b.nVertices)
	inDegree := make([]int, b.nVertices)
	for _, e := range b.edges {
		if e.Src < 0 || int(e.Src) >= b.nVertices {
			return nil, fmt.Errorf("%w: edge %d src=%d", ErrUnknownEndpoint, e.ID, e.Src)
		}
		if e.Dst < 0 || int(e.Dst) >= b.nVertices {
			return nil, fmt.Errorf("%w: edge %d dst=%d", ErrUnknownEndpoint, e.ID, e.Dst)
		}
		outDegree[e.Src]++
		inDegree[e.Dst]++
	}

	adjOut := make([][]EdgeId, b.nVertices)
	adjIn := make([][]EdgeId, b.nVertices)
	for v := 0; v < b.nVertices; v++ {
		if outDegree[v] > 0 {
			adjOut[v] = make([]EdgeId, 0, outDegree[v])
		}
		if inDegree[v] > 0 {
			adjIn[v] = make([]EdgeId, 0, inDegree[v])
		}
	}
	for _, e := range b.edges {
		adjOut[e.Src] = append(adjOut[e.Src], e.ID)
		adjIn[e.Dst] = append(adjIn[e.Dst], e.ID)
	}

	return &Graph{
		vertices: b.vertices,
		edges:    b.edges,
		adjOut:   adjOut,
		adjIn:    adjIn,
	}, nil
}
