package graph

import "errors"

// Sentinel errors for core graph operations. Callers should branch on
// these with errors.Is; messages are not a stable API surface.
var (
	// ErrVertexAttributeNotFound indicates vertex_attr(v) was called with
	// an id outside [0, len(vertices)).
	ErrVertexAttributeNotFound = errors.New("graph: vertex attribute not found")

	// ErrEdgeAttributeNotFound indicates edge_attr(e) was called with an
	// id outside [0, len(edges)).
	ErrEdgeAttributeNotFound = errors.New("graph: edge attribute not found")

	// ErrVertexWithoutOutEdges indicates out_edges(v) was called on a
	// vertex with no forward adjacency.
	ErrVertexWithoutOutEdges = errors.New("graph: vertex has no out edges")

	// ErrVertexWithoutInEdges indicates in_edges(v) was called on a
	// vertex with no reverse adjacency.
	ErrVertexWithoutInEdges = errors.New("graph: vertex has no in edges")

	// ErrDuplicateVertexID indicates the builder saw the same vertex id
	// more than once.
	ErrDuplicateVertexID = errors.New("graph: duplicate vertex id")

	// ErrDuplicateEdgeID indicates the builder saw the same edge id more
	// than once.
	ErrDuplicateEdgeID = errors.New("graph: duplicate edge id")

	// ErrNonDenseIDs indicates the ids supplied to the builder are not a
	// dense range [0, n) once construction finishes.
	ErrNonDenseIDs = errors.New("graph: vertex or edge ids are not dense")

	// ErrUnknownEndpoint indicates an edge references a vertex id that
	// was never declared to the builder.
	ErrUnknownEndpoint = errors.New("graph: edge endpoint not declared")
)

// VertexId is an opaque, dense, non-negative integer index used directly
// as an offset into Graph's internal vertex array.
type VertexId int

// EdgeId is an opaque, dense, non-negative integer index used directly
// as an offset into Graph's internal edge array.
type EdgeId int

// Coordinate is a WGS84 longitude/latitude pair.
type Coordinate struct {
	Lon float64
	Lat float64
}

// Vertex is an immutable road network node.
type Vertex struct {
	ID         VertexId
	Coordinate Coordinate
}

// Edge is an immutable directed road segment. Distance is expressed in
// the canonical base unit (meters); Grade is a signed percentage (rise
// over run times 100, e.g. 5 for a 5% grade).
type Edge struct {
	ID        EdgeId
	Src       VertexId
	Dst       VertexId
	Distance  float64
	Grade     float64
	RoadClass uint8
}

// Direction selects which adjacency a Graph traversal consults.
// Forward follows edges src->dst; Reverse follows them dst->src.
type Direction uint8

const (
	Forward Direction = iota
	Reverse
)

// Graph is an immutable directed road network. Zero value is not usable;
// construct with NewBuilder.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	// adjOut[v] lists the ids of edges for which edges[e].Src == v.
	adjOut [][]EdgeId
	// adjIn[v] lists the ids of edges for which edges[e].Dst == v.
	adjIn [][]EdgeId
}

// NumVertices returns the number of vertices in the graph.
func (g *Graph) NumVertices() int { return len(g.vertices) }

// NumEdges returns the number of edges in the graph.
func (g *Graph) NumEdges() int { return len(g.edges) }
