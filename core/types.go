// Package core defines the Graph and Edge types, sentinel errors,
// and the NewGraph constructor.
//
// Errors:
//
//	ErrNilGraph       - graph pointer is nil.
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - requested vertex does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop insertion attempted.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Loops are never modeled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is an undirected, weighted connection between two vertices.
//
// From and To name the two endpoints; for edges produced by Graph.Edges()
// From is the endpoint that was inserted into the graph first.
type Edge struct {
	// From is one endpoint vertex ID.
	From string `json:"from" yaml:"from"`

	// To is the other endpoint vertex ID.
	To string `json:"to" yaml:"to"`

	// Weight is the cost of the edge. Negative values are allowed.
	Weight int64 `json:"weight" yaml:"weight"`
}

// Graph is an undirected, weighted graph stored as a symmetric adjacency map.
//
// mu guards every field. order records vertex IDs by first insertion and
// index maps each ID back to its position in order.
type Graph struct {
	mu sync.RWMutex

	order     []string                    // vertex IDs by first insertion
	index     map[string]int              // vertex ID → position in order
	adjacency map[string]map[string]int64 // adjacency[u][v] = weight, mirrored
	edgeCount int                         // number of distinct undirected edges
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index:     make(map[string]int),
		adjacency: make(map[string]map[string]int64),
	}
}
