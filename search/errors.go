package search

import (
	"errors"
	"fmt"

	"github.com/openrouteengine/compass/graph"
)

var (
	// ErrNoPathExists is returned when the frontier empties without
	// reaching the destination.
	ErrNoPathExists = errors.New("search: no path exists")

	// ErrCancelled is returned when the search's context is cancelled.
	ErrCancelled = errors.New("search: cancelled")

	// ErrTimedOut is returned when the search exceeds its wall-clock
	// budget.
	ErrTimedOut = errors.New("search: timed out")
)

// Error wraps an inner graph, traversal, or cost failure with the
// vertex and edge context in which it occurred, per the engine's
// surface-everything error policy.
type Error struct {
	Vertex graph.VertexId
	Edge   graph.EdgeId
	HasEdge bool
	Err    error
}

func (e *Error) Error() string {
	if e.HasEdge {
		return fmt.Sprintf("search: at vertex %d edge %d: %v", e.Vertex, e.Edge, e.Err)
	}
	return fmt.Sprintf("search: at vertex %d: %v", e.Vertex, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrapVertex(v graph.VertexId, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Vertex: v, Err: err}
}

func wrapEdge(v graph.VertexId, e graph.EdgeId, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Vertex: v, Edge: e, HasEdge: true, Err: err}
}
