// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It sorts every edge once and accepts edges that join two different union-find sets.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/disjointset"
)

// RunKruskal is the collaborator-facing entry point for Kruskal.
// Error Conditions: ErrInvalidGraph (nil graph), ErrEmptyGraph (no vertices).
func RunKruskal(graph *core.Graph) (Result, error) {
	return Kruskal(graph)
}

// Kruskal computes a Minimum Spanning Forest of an undirected, weighted graph.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil.
//   - ErrEmptyGraph   : graph has no vertices.
//
// Steps:
//  1. Validate; collect every undirected edge exactly once via graph.Edges().
//  2. Sort ascending by (Weight, From, To) for deterministic tie-breaking.
//  3. Register every vertex (isolated ones included) in a DisjointSet.
//  4. For each edge: if its endpoints have different roots, accept it and
//     merge the sets; otherwise skip it (it would close a cycle).
//  5. Stop after |V|-1 acceptances or when edges run out.
//
// A disconnected graph yields one tree per component and no error; the
// result does not say whether it is a tree or a forest.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph) (Result, error) {
	// 1. Validate.
	if graph == nil {
		return Result{}, ErrInvalidGraph
	}
	vertices := graph.Vertices()
	if len(vertices) == 0 {
		return Result{}, ErrEmptyGraph
	}
	edges := graph.Edges()

	// 2. Global sort.
	sort.Slice(edges, func(i, j int) bool {
		a, b := edges[i], edges[j]
		if a.Weight != b.Weight {
			return a.Weight < b.Weight
		}
		if a.From != b.From {
			return a.From < b.From
		}

		return a.To < b.To
	})

	// 3. One singleton set per vertex.
	ds := disjointset.New(vertices...)

	// 4. Scan.
	res := Result{Edges: make([]core.Edge, 0, len(vertices)-1)}
	for _, e := range edges {
		if !ds.Union(e.From, e.To) {
			continue // same tree: would close a cycle
		}
		res.Edges = append(res.Edges, e)
		res.TotalWeight += e.Weight
		// 5. A spanning tree is complete; nothing later can be accepted.
		if len(res.Edges) == len(vertices)-1 {
			break
		}
	}

	return res, nil
}
