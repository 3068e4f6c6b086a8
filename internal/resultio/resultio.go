package resultio

import (
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/openrouteengine/compass/search"
)

type wireEdgeTraversal struct {
	EdgeID        uint64    `json:"edge_id" yaml:"edge_id"`
	AccessCost    float64   `json:"access_cost" yaml:"access_cost"`
	TraversalCost float64   `json:"traversal_cost" yaml:"traversal_cost"`
	ResultState   []float64 `json:"result_state" yaml:"result_state"`
}

type wireBranch struct {
	PrevEdgeTraversal wireEdgeTraversal `json:"prev_edge_traversal" yaml:"prev_edge_traversal"`
	TerminalVertex    uint64            `json:"terminal_vertex" yaml:"terminal_vertex"`
}

type wireResult struct {
	Route           []wireEdgeTraversal   `json:"route" yaml:"route"`
	Tree            map[string]wireBranch `json:"tree,omitempty" yaml:"tree,omitempty"`
	SearchRuntimeMs float64               `json:"search_runtime_ms" yaml:"search_runtime_ms"`
	RouteRuntimeMs  float64               `json:"route_runtime_ms" yaml:"route_runtime_ms"`
	TotalRuntimeMs  float64               `json:"total_runtime_ms" yaml:"total_runtime_ms"`
	Summary         map[string]any        `json:"summary,omitempty" yaml:"summary,omitempty"`
	CostSummary     map[string]any        `json:"cost_summary,omitempty" yaml:"cost_summary,omitempty"`
}

func toWireEdgeTraversal(et search.EdgeTraversal) wireEdgeTraversal {
	state := make([]float64, len(et.ResultState))
	for i, v := range et.ResultState {
		state[i] = float64(v)
	}
	return wireEdgeTraversal{
		EdgeID:        uint64(et.EdgeID),
		AccessCost:    float64(et.AccessCost),
		TraversalCost: float64(et.TraversalCost),
		ResultState:   state,
	}
}

func toWireResult(r *search.Result) wireResult {
	route := make([]wireEdgeTraversal, len(r.Route))
	for i, et := range r.Route {
		route[i] = toWireEdgeTraversal(et)
	}

	var tree map[string]wireBranch
	if r.Tree != nil {
		tree = make(map[string]wireBranch, len(r.Tree))
		for v, branch := range r.Tree {
			tree[strconv.FormatInt(int64(v), 10)] = wireBranch{
				PrevEdgeTraversal: toWireEdgeTraversal(branch.PrevEdgeTraversal),
				TerminalVertex:    uint64(branch.TerminalVertex),
			}
		}
	}

	return wireResult{
		Route:           route,
		Tree:            tree,
		SearchRuntimeMs: float64(r.SearchRuntime.Microseconds()) / 1000.0,
		RouteRuntimeMs:  float64(r.RouteRuntime.Microseconds()) / 1000.0,
		TotalRuntimeMs:  float64(r.TotalRuntime.Microseconds()) / 1000.0,
		Summary:         r.Summary,
		CostSummary:     r.CostSummary,
	}
}

// MarshalJSON renders r in the wire shape, indented for CLI output.
func MarshalJSON(r *search.Result) ([]byte, error) {
	return json.MarshalIndent(toWireResult(r), "", "  ")
}

// MarshalYAML renders r in the wire shape as YAML.
func MarshalYAML(r *search.Result) ([]byte, error) {
	return yaml.Marshal(toWireResult(r))
}
