// Package prim_kruskal defines the MST result record, configuration options
// and sentinel errors shared by Prim and Kruskal.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/mstkit/core"
)

// ErrInvalidGraph indicates that a nil graph was passed to an MST engine.
var ErrInvalidGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates an MST run on a graph with zero vertices.
// Fatal to that call; callers should check VertexCount before invoking.
var ErrEmptyGraph = errors.New("prim_kruskal: graph is empty")

// ErrEmptyRoot indicates that no start vertex was specified for Prim.
var ErrEmptyRoot = errors.New("prim_kruskal: empty root vertex")

// ErrUnknownMethod indicates MSTOptions.Method names no known algorithm.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Result is the outcome of one MST computation.
//
// Edges are in acceptance order (not re-sorted), TotalWeight is the sum of
// their weights. Order is the vertex selection trace of Prim and is nil for
// Kruskal. On a disconnected graph Prim covers only the root's component and
// Kruskal returns a spanning forest; neither reports this as an error.
type Result struct {
	// Edges lists accepted edges in the order the engine accepted them.
	Edges []core.Edge `json:"edges" yaml:"edges"`

	// TotalWeight is the sum of Edges[i].Weight.
	TotalWeight int64 `json:"total_weight" yaml:"total_weight"`

	// Order lists vertices in the order Prim admitted them to the tree.
	Order []string `json:"order,omitempty" yaml:"order,omitempty"`
}

// MethodPrim selects Prim's algorithm (grow from a root using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run, and for Prim, which starting vertex to use.
// Use DefaultOptions() to get a default setup (Kruskal).
//
// Fields:
//
//	Method string — one of MethodPrim or MethodKruskal.
//	Root   string — start vertex ID for Prim; empty means the first-inserted vertex.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm. Unused by Kruskal.
	Root string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
// Kruskal ignores it.
func WithRoot(root string) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = "" (first-inserted vertex when switched to Prim).
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   "",
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: RunKruskal(graph).
//	– MethodPrim:    Prim(graph, opts.Root), or RunPrim(graph) when Root is empty.
//	– Otherwise:     ErrUnknownMethod.
func Compute(graph *core.Graph, opts MSTOptions) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return RunKruskal(graph)
	case MethodPrim:
		if opts.Root == "" {
			return RunPrim(graph)
		}

		return Prim(graph, opts.Root)
	default:
		return Result{}, ErrUnknownMethod
	}
}
