// File: methods_clone.go
// Role: Whole-graph operations: Clone/Clear.
// Concurrency:
//   - Clone holds the source read lock; Clear holds the write lock.

package core

// Clone returns a deep copy of g: same vertices in the same order, same edges.
// Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph()
	c.order = make([]string, len(g.order))
	copy(c.order, g.order)
	for id, i := range g.index {
		c.index[id] = i
	}
	for u, nbrs := range g.adjacency {
		inner := make(map[string]int64, len(nbrs))
		for v, w := range nbrs {
			inner[v] = w
		}
		c.adjacency[u] = inner
	}
	c.edgeCount = g.edgeCount

	return c
}

// Clear removes all vertices and edges, leaving an empty graph.
// Used when a caller reloads a graph wholesale.
// Complexity: O(1) (old maps are released to the GC).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.order = nil
	g.index = make(map[string]int)
	g.adjacency = make(map[string]map[string]int64)
	g.edgeCount = 0
}
