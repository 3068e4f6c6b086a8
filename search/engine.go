package search

import (
	"context"
	"time"

	"github.com/openrouteengine/compass/cost"
	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/statemodel"
	"github.com/openrouteengine/compass/traversal"
)

// Engine runs least-cost searches over a fixed Graph, parameterized by
// a direction, a traversal model, and a cost model. All three fields
// are immutable after construction and safe to share by reference
// across concurrently running searches; Run allocates and owns every
// mutable structure a single search needs and discards them on return.
type Engine struct {
	Graph          *graph.Graph
	Direction      graph.Direction
	TraversalModel traversal.Model
	CostModel      *cost.Model
	StateModel     statemodel.StateModel
}

// Result is what one call to Run produces.
type Result struct {
	Route         []EdgeTraversal
	Tree          map[graph.VertexId]SearchTreeBranch
	SearchRuntime time.Duration
	RouteRuntime  time.Duration
	TotalRuntime  time.Duration
	Summary       map[string]any
	CostSummary   map[string]any
}

// Query names the endpoints of a search. Destination is nil for a
// tree-only search: the heuristic degenerates to zero and the engine
// behaves as Dijkstra, running until the frontier empties.
type Query struct {
	Origin      graph.VertexId
	Destination *graph.VertexId
	ExportTree  bool
}

// Run executes one search. ctx is checked at the top of every
// expansion: a cancelled context yields ErrCancelled, and a context
// with a deadline that has passed yields ErrTimedOut.
func (e *Engine) Run(ctx context.Context, q Query) (*Result, error) {
	start := time.Now()

	if q.Destination != nil && q.Origin == *q.Destination {
		return &Result{
			Route:        nil,
			TotalRuntime: time.Since(start),
		}, nil
	}

	t := newTree(e.Graph.NumVertices())
	settled := make([]bool, e.Graph.NumVertices())
	fr := newFrontier()

	initial := e.TraversalModel.InitialState(e.StateModel)
	fr.push(frontierItem{
		f:      cost.Zero,
		g:      cost.Zero,
		vertex: q.Origin,
		state:  initial,
	})

	searchStart := time.Now()
	var reached bool

	for {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return nil, ErrTimedOut
			}
			return nil, ErrCancelled
		default:
		}

		item, ok := fr.pop()
		if !ok {
			break
		}
		if settled[item.vertex] {
			continue
		}
		if t.has(item.vertex) && item.g > t.costOf(item.vertex) {
			continue // stale lazy-decrease-key entry
		}

		if q.Destination != nil && item.vertex == *q.Destination {
			reached = true
			settled[item.vertex] = true
			break
		}

		triplets, err := e.Graph.IncidentTriplets(item.vertex, e.Direction)
		if err != nil {
			return nil, wrapVertex(item.vertex, err)
		}

		for _, triplet := range triplets {
			delta, err := e.TraversalModel.Traversal(triplet.Src, triplet.Edge, triplet.Dst, item.state, e.StateModel)
			if err != nil {
				return nil, wrapEdge(item.vertex, triplet.Edge.ID, err)
			}

			accessCost, err := e.CostModel.AccessCost(delta.AccessDelta, e.StateModel)
			if err != nil {
				return nil, wrapEdge(item.vertex, triplet.Edge.ID, err)
			}
			edgeCost, err := e.CostModel.TraversalCost(delta.TraversalDelta, e.StateModel)
			if err != nil {
				return nil, wrapEdge(item.vertex, triplet.Edge.ID, err)
			}

			v := triplet.Dst.ID
			if settled[v] {
				continue
			}

			gV := item.g + accessCost + edgeCost
			if t.has(v) && gV >= t.costOf(v) {
				continue
			}

			branch := SearchTreeBranch{
				PrevEdgeTraversal: EdgeTraversal{
					EdgeID:        triplet.Edge.ID,
					AccessCost:    accessCost,
					TraversalCost: edgeCost,
					ResultState:   delta.NewState,
				},
				TerminalVertex: v,
			}
			t.set(v, gV, branch, item.vertex)

			h := cost.Zero
			if q.Destination != nil {
				h, err = e.heuristic(triplet.Dst.ID, *q.Destination, delta.NewState)
				if err != nil {
					return nil, wrapVertex(v, err)
				}
			}

			fr.push(frontierItem{f: gV + h, g: gV, vertex: v, state: delta.NewState})
		}

		settled[item.vertex] = true
	}
	searchRuntime := time.Since(searchStart)

	if q.Destination != nil && !reached {
		return nil, ErrNoPathExists
	}

	routeStart := time.Now()
	var route []EdgeTraversal
	var finalState statemodel.StateVector
	if q.Destination != nil {
		route, finalState = reconstruct(t, q.Origin, *q.Destination)
	}
	routeRuntime := time.Since(routeStart)

	result := &Result{
		Route:         route,
		SearchRuntime: searchRuntime,
		RouteRuntime:  routeRuntime,
	}
	if q.ExportTree {
		result.Tree = t.export()
	}
	if finalState != nil {
		summary, err := e.TraversalModel.Summary(finalState, e.StateModel)
		if err != nil {
			return nil, err
		}
		result.Summary = summary

		zeroState := e.TraversalModel.InitialState(e.StateModel)
		costSummary, err := e.CostModel.SerializeCostFromStates(zeroState, finalState, e.StateModel)
		if err != nil {
			return nil, err
		}
		result.CostSummary = costSummary
	}
	result.TotalRuntime = time.Since(start)
	return result, nil
}

// heuristic computes h(v, state) = cost_model.cost_estimate(traversal_model.cost_estimate(v, destination, state)).
func (e *Engine) heuristic(v, destination graph.VertexId, state statemodel.StateVector) (cost.Cost, error) {
	vVertex, err := e.Graph.VertexAttr(v)
	if err != nil {
		return 0, err
	}
	destVertex, err := e.Graph.VertexAttr(destination)
	if err != nil {
		return 0, err
	}
	lowerBound, err := e.TraversalModel.CostEstimate(vVertex, destVertex, state, e.StateModel)
	if err != nil {
		return 0, err
	}
	return e.CostModel.CostEstimate(lowerBound, e.StateModel)
}

// reconstruct follows back-pointers from destination to origin, producing
// the route in source-to-destination order along with the state the
// route arrives at destination in.
func reconstruct(t *tree, origin, destination graph.VertexId) ([]EdgeTraversal, statemodel.StateVector) {
	var reversed []EdgeTraversal
	v := destination
	var finalState statemodel.StateVector
	for v != origin {
		branch := t.branchOf(v)
		if branch == nil {
			return nil, nil
		}
		if finalState == nil {
			finalState = branch.PrevEdgeTraversal.ResultState
		}
		reversed = append(reversed, branch.PrevEdgeTraversal)
		v = t.predecessorOf(v)
	}
	route := make([]EdgeTraversal, len(reversed))
	for i, et := range reversed {
		route[len(reversed)-1-i] = et
	}
	return route, finalState
}
