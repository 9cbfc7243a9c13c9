package centrality

import "errors"

var (
	// ErrGraphNil is returned when a nil Graph is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrNotConverged is returned when power iteration exhausts MaxIter.
	ErrNotConverged = errors.New("centrality: power iteration did not converge")

	// ErrBadNeighbor is returned when Neighbors yields an index outside the graph
	// or the vertex itself.
	ErrBadNeighbor = errors.New("centrality: neighbor index out of range")
)
