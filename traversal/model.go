package traversal

import (
	"errors"
	"fmt"
	"math"

	"github.com/openrouteengine/compass/graph"
	"github.com/openrouteengine/compass/statemodel"
)

var (
	// ErrPredictionInvalid is returned when an underlying predictor
	// produces NaN or ±Inf, or is queried outside its bounds.
	ErrPredictionInvalid = errors.New("traversal: prediction invalid")

	// ErrNumericError covers arithmetic failures other than an invalid
	// prediction, e.g. division by a zero duration when deriving speed.
	ErrNumericError = errors.New("traversal: numeric error")

	// ErrFileReadError is returned at model-build time when a backing
	// artifact (e.g. an interpolation grid file) cannot be read.
	ErrFileReadError = errors.New("traversal: file read error")

	// ErrBuildError covers any other invalid model configuration.
	ErrBuildError = errors.New("traversal: build error")
)

// Delta is the result of evolving state across one edge: the deltas
// produced at the access step and at the traversal step, plus the
// fully updated state a later model in the composition will read from.
type Delta struct {
	AccessDelta    statemodel.StateVector
	TraversalDelta statemodel.StateVector
	NewState       statemodel.StateVector
}

// Model is the engine's pluggable per-edge state evolution contract. A
// composed model (see Compose) presents the same interface as any
// single built-in model, so the search engine never distinguishes one
// from the other.
type Model interface {
	// InitialState typically delegates to stateModel.InitialState.
	InitialState(stateModel statemodel.StateModel) statemodel.StateVector

	// Traversal evolves state across edge from src to dst, returning the
	// access-step delta, the traversal-step delta, and the resulting
	// state a subsequent model reads from.
	Traversal(src graph.Vertex, edge graph.Edge, dst graph.Vertex, state statemodel.StateVector, stateModel statemodel.StateModel) (Delta, error)

	// CostEstimate returns a component-wise lower bound on the state
	// delta between src and dst starting in state. It must be
	// admissible: no realized path's actual delta may fall below it.
	CostEstimate(src, dst graph.Vertex, state statemodel.StateVector, stateModel statemodel.StateModel) (statemodel.StateVector, error)

	// Summary renders a final, human-readable rollup of state.
	Summary(state statemodel.StateVector, stateModel statemodel.StateModel) (map[string]any, error)
}

// clampNonNegative returns a copy of delta with every negative entry
// set to zero (delta itself is not modified), implementing the
// engine-wide rule that a traversal model may never hand the search a
// negative incremental cost.
func clampNonNegative(delta statemodel.StateVector) statemodel.StateVector {
	out := make(statemodel.StateVector, len(delta))
	for i, v := range delta {
		if v < 0 {
			v = 0
		}
		out[i] = v
	}
	return out
}

// clampedStateDelta computes end-start, clamps every negative entry to
// zero, and rebuilds the resulting state from the clamped delta rather
// than from end directly. A Traversal implementation must use this
// instead of clamping the returned delta alone: clamping the delta but
// still handing back the unclamped end as NewState would let a
// negative-yielding predictor (a downhill grade, say) silently decrease
// state that every downstream edge and the final summary then inherit.
func clampedStateDelta(start, end statemodel.StateVector) (delta, next statemodel.StateVector, err error) {
	if len(start) != len(end) {
		return nil, nil, fmt.Errorf("%w: state vectors differ in length (%d vs %d)", ErrNumericError, len(start), len(end))
	}
	delta = make(statemodel.StateVector, len(start))
	next = make(statemodel.StateVector, len(start))
	for i := range start {
		d := end[i] - start[i]
		if d < 0 {
			d = 0
		}
		delta[i] = d
		next[i] = start[i] + d
	}
	return delta, next, nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: feature %q produced %v", ErrPredictionInvalid, name, v)
	}
	return nil
}
