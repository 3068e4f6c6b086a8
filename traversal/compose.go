package traversal

import (
	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/statemodel"
)

// composed runs a sequence of Models over the same edge in order, each
// reading state the previous one already wrote. It implements Model
// itself, so a composition is indistinguishable from a single model to
// the search engine.
type composed struct {
	models []Model
}

// Compose chains models so that later models observe state updates
// made by earlier ones. Deltas from every stage are summed feature-wise
// into the composition's own access and traversal deltas.
func Compose(models ...Model) Model {
	if len(models) == 1 {
		return models[0]
	}
	return &composed{models: models}
}

func (c *composed) InitialState(sm statemodel.StateModel) statemodel.StateVector {
	return c.models[0].InitialState(sm)
}

func (c *composed) Traversal(src graph.Vertex, edge graph.Edge, dst graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (Delta, error) {
	access := make(statemodel.StateVector, len(state))
	traversal := make(statemodel.StateVector, len(state))
	current := state

	for _, model := range c.models {
		d, err := model.Traversal(src, edge, dst, current, sm)
		if err != nil {
			return Delta{}, err
		}
		access = sumInto(access, d.AccessDelta)
		traversal = sumInto(traversal, d.TraversalDelta)
		current = d.NewState
	}

	return Delta{AccessDelta: access, TraversalDelta: traversal, NewState: current}, nil
}

func (c *composed) CostEstimate(src, dst graph.Vertex, state statemodel.StateVector, sm statemodel.StateModel) (statemodel.StateVector, error) {
	total := make(statemodel.StateVector, len(state))
	for _, model := range c.models {
		d, err := model.CostEstimate(src, dst, state, sm)
		if err != nil {
			return nil, err
		}
		total = sumInto(total, d)
	}
	return total, nil
}

func (c *composed) Summary(state statemodel.StateVector, sm statemodel.StateModel) (map[string]any, error) {
	out := map[string]any{}
	for _, model := range c.models {
		s, err := model.Summary(state, sm)
		if err != nil {
			return nil, err
		}
		for k, v := range s {
			out[k] = v
		}
	}
	return out, nil
}

func sumInto(acc, delta statemodel.StateVector) statemodel.StateVector {
	out := make(statemodel.StateVector, len(acc))
	copy(out, acc)
	for i, v := range delta {
		out[i] += v
	}
	return out
}
