package search

import (
	"container/heap"

	"github.com/openrouteengine/compass/cost"
	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/statemodel"
)

// frontierItem is one candidate expansion: the priority f = g + h, the
// accumulated cost g (used as the first tie-break), the vertex, and the
// state carried into it. The engine writes the tree branch when it
// pushes an item and leaves the branch field unset.
type frontierItem struct {
	f      cost.Cost
	g      cost.Cost
	vertex graph.VertexId
	state  statemodel.StateVector
	branch SearchTreeBranch
}

// frontier is a container/heap min-priority queue ordered by (f, g,
// vertex) ascending, which gives the engine's required deterministic
// tie-break for free: two items with equal f resolve by lower g, then
// by lower VertexId.
//
// Pushes use lazy decrease-key: a better path to an already-queued
// vertex is pushed as a new item rather than mutating the old one in
// place. Stale items are recognized and skipped at pop time by
// comparing against the tree's recorded best g, the same pattern the
// teacher's own Dijkstra implementation uses instead of maintaining an
// index for true decrease-key support.
type frontier []frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	if f[i].g != f[j].g {
		return f[i].g < f[j].g
	}
	return f[i].vertex < f[j].vertex
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(frontierItem)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

func newFrontier() *frontier {
	f := &frontier{}
	heap.Init(f)
	return f
}

func (f *frontier) push(item frontierItem) { heap.Push(f, item) }

func (f *frontier) pop() (frontierItem, bool) {
	if f.Len() == 0 {
		return frontierItem{}, false
	}
	return heap.Pop(f).(frontierItem), true
}
