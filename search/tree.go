package search

import (
	"github.com/openrouteengine/compass/cost"
	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/statemodel"
)

// EdgeTraversal records one traversed edge's economics and the state
// that resulted from crossing it.
type EdgeTraversal struct {
	EdgeID        graph.EdgeId
	AccessCost    cost.Cost
	TraversalCost cost.Cost
	ResultState   statemodel.StateVector
}

// SearchTreeBranch is the back-pointer recorded for a vertex the first
// time (or the best time) it is reached.
type SearchTreeBranch struct {
	PrevEdgeTraversal EdgeTraversal
	TerminalVertex    graph.VertexId
}

// tree is a dense, VertexId-indexed back-pointer map. It is preferred
// over a general hash map because |V| is known up front and the tree
// is written and read on every expansion — the hottest structure in
// the search besides the frontier itself.
type tree struct {
	branches []*SearchTreeBranch
	g        []cost.Cost
	present  []bool

	// predecessor is kept outside SearchTreeBranch (which only names the
	// spec's {prev_edge_traversal, terminal_vertex} fields) but is needed
	// internally to walk the tree back to the origin during route
	// reconstruction without re-deriving it from the edge each time.
	predecessor []graph.VertexId
}

func newTree(numVertices int) *tree {
	return &tree{
		branches:    make([]*SearchTreeBranch, numVertices),
		g:           make([]cost.Cost, numVertices),
		present:     make([]bool, numVertices),
		predecessor: make([]graph.VertexId, numVertices),
	}
}

func (t *tree) has(v graph.VertexId) bool { return t.present[v] }

func (t *tree) costOf(v graph.VertexId) cost.Cost { return t.g[v] }

func (t *tree) set(v graph.VertexId, g cost.Cost, branch SearchTreeBranch, predecessor graph.VertexId) {
	t.g[v] = g
	t.branches[v] = &branch
	t.present[v] = true
	t.predecessor[v] = predecessor
}

func (t *tree) branchOf(v graph.VertexId) *SearchTreeBranch { return t.branches[v] }

func (t *tree) predecessorOf(v graph.VertexId) graph.VertexId { return t.predecessor[v] }

// export renders the tree as a map, the shape external callers (and
// Result.Tree) expect; only built when a caller actually requests it,
// since most searches never need it.
func (t *tree) export() map[graph.VertexId]SearchTreeBranch {
	out := make(map[graph.VertexId]SearchTreeBranch, len(t.branches))
	for v, present := range t.present {
		if present {
			out[graph.VertexId(v)] = *t.branches[v]
		}
	}
	return out
}
