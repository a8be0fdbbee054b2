// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/NeighborIDs/AdjacencyList.
// Determinism:
//   - NeighborIDs() and AdjacencyList() follow vertex insertion order.
// Concurrency:
//   - Read queries under mu read lock; results are copies.

package core

import "sort"

// Neighbors returns a copy of the neighbor → weight mapping of id.
//
// Returns ErrEmptyVertexID for an empty id and ErrVertexNotFound when the
// vertex is not in the graph. An isolated vertex yields an empty, non-nil map.
//
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) (map[string]int64, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	out := make(map[string]int64, len(nbrs))
	for v, w := range nbrs {
		out[v] = w
	}

	return out, nil
}

// NeighborIDs returns the neighbors of id ordered by their insertion index.
// Complexity: O(d log d), d = deg(id).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return g.sortedNeighbors(nbrs), nil
}

// AdjacencyList returns vertex → ordered neighbor IDs for every vertex.
// Complexity: O(V + E log E).
func (g *Graph) AdjacencyList() map[string][]string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = g.sortedNeighbors(nbrs)
	}

	return out
}

// sortedNeighbors lists keys of nbrs by insertion index. Caller holds mu.
func (g *Graph) sortedNeighbors(nbrs map[string]int64) []string {
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return g.index[ids[i]] < g.index[ids[j]] })

	return ids
}
