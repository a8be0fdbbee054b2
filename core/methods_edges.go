// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, ordered by endpoint insertion index.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import "sort"

// AddEdge connects u and v with weight w.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Register u and v if absent (insertion order is preserved).
//  3. Set adjacency[u][v] = w and adjacency[v][u] = w.
//
// Re-adding an existing pair overwrites the weight in both directions,
// so the symmetry invariant holds after every call.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w int64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(u)
	g.ensureVertex(v)
	if _, exists := g.adjacency[u][v]; !exists {
		g.edgeCount++
	}
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w

	return nil
}

// HasEdge reports whether u and v are adjacent.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[u][v]

	return ok
}

// Weight returns the weight of edge {u,v}.
// Returns ErrVertexNotFound if either endpoint is missing and
// ErrEdgeNotFound if both exist but are not adjacent.
// Complexity: O(1).
func (g *Graph) Weight(u, v string) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adjacency[u]
	if !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok = g.adjacency[v]; !ok {
		return 0, ErrVertexNotFound
	}
	w, ok := nbrs[v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// EdgeCount returns the number of distinct undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Edges returns every undirected edge exactly once.
//
// Each edge is oriented From the endpoint inserted first. The result is sorted
// by (index(From), index(To)), which makes the output depend only on the
// insertion sequence and never on map iteration order.
//
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		iu := g.index[u]
		for v, w := range nbrs {
			// Emit only the half of the mirror where u precedes v.
			if iu < g.index[v] {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := g.index[out[i].From], g.index[out[j].From]
		if fi != fj {
			return fi < fj
		}

		return g.index[out[i].To] < g.index[out[j].To]
	})

	return out
}
