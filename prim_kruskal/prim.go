// Package prim_kruskal provides an implementation of lazy Prim's Minimum Spanning Tree algorithm.
// It grows a tree from a root vertex using a min-heap of candidate edges.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/mstkit/core"
)

// RunPrim runs Prim from the first-inserted vertex of graph.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrEmptyGraph   : graph has no vertices.
func RunPrim(graph *core.Graph) (Result, error) {
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return Result{}, ErrEmptyGraph
	}

	return Prim(graph, vertices[0])
}

// Prim computes a Minimum Spanning Tree of root's connected component
// by growing outwards from root using a lazy min-heap.
//
// Error Conditions:
//   - ErrInvalidGraph       : graph is nil.
//   - ErrEmptyGraph         : graph has no vertices.
//   - ErrEmptyRoot          : root is "".
//   - core.ErrVertexNotFound: root is not in the graph.
//
// Steps:
//  1. Seed the heap with (0, root, no parent).
//  2. Pop the minimum candidate. If its vertex is already visited, discard it:
//     stale entries stay in the heap instead of being decreased in place.
//  3. Otherwise mark it visited, append it to Order and, if it has a parent,
//     accept (parent, vertex, weight) and add weight to TotalWeight.
//  4. Push (w, n, vertex) for every unvisited neighbor n.
//  5. Stop when the heap is empty.
//
// Ties on weight are broken by vertex ID, then parent ID. A disconnected graph
// yields a tree of root's component only, with no error.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Prim(graph *core.Graph, root string) (Result, error) {
	// 1. Validate input.
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	n := graph.VertexCount()
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}
	if root == "" {
		return Result{}, ErrEmptyRoot
	}
	if !graph.HasVertex(root) {
		return Result{}, fmt.Errorf("prim_kruskal: root %q: %w", root, core.ErrVertexNotFound)
	}

	// 2. Per-run working state.
	visited := make(map[string]bool, n)
	res := Result{
		Edges: make([]core.Edge, 0, n-1),
		Order: make([]string, 0, n),
	}
	pq := &candidatePQ{{vertex: root}}

	// 3. Main loop.
	for pq.Len() > 0 {
		c := heap.Pop(pq).(candidate)
		if visited[c.vertex] {
			continue // stale entry
		}
		visited[c.vertex] = true
		res.Order = append(res.Order, c.vertex)
		if c.hasParent {
			res.Edges = append(res.Edges, core.Edge{From: c.parent, To: c.vertex, Weight: c.weight})
			res.TotalWeight += c.weight
		}

		neighbors, err := graph.Neighbors(c.vertex)
		if err != nil {
			return Result{}, err
		}
		for v, w := range neighbors {
			if !visited[v] {
				heap.Push(pq, candidate{weight: w, vertex: v, parent: c.vertex, hasParent: true})
			}
		}
	}

	return res, nil
}

// candidate is a heap entry: reach vertex from parent at cost weight.
// The seed entry has hasParent == false.
type candidate struct {
	weight    int64
	vertex    string
	parent    string
	hasParent bool
}

// candidatePQ implements heap.Interface as a min-heap of candidates ordered by
// (weight, vertex, parent). The order is total, so pops are deterministic
// regardless of push order.
type candidatePQ []candidate

func (pq candidatePQ) Len() int { return len(pq) }

func (pq candidatePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.vertex != b.vertex {
		return a.vertex < b.vertex
	}
	if a.hasParent != b.hasParent {
		return !a.hasParent
	}

	return a.parent < b.parent
}

func (pq candidatePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a candidate. Called by heap.Push.
func (pq *candidatePQ) Push(x interface{}) { *pq = append(*pq, x.(candidate)) }

// Pop removes the last element after heap adjustments. Called by heap.Pop.
func (pq *candidatePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	c := old[n-1]
	*pq = old[:n-1]

	return c
}
