// Package core provides the undirected, weighted Graph consumed by the MST engines.
//
// The Graph G = (V,E) is stored as a symmetric map-of-maps:
//
//	adjacency[u][v] = w  and  adjacency[v][u] = w
//
// so every edge is visible from both endpoints with the same weight.
//
// Behavior:
//
//   - AddEdge inserts missing endpoints, then sets both directions.
//     Inserting the same pair again overwrites the weight (no multi-edges).
//   - Self-loops are not modeled: AddEdge(v, v, w) returns ErrLoopNotAllowed.
//   - Weights are int64 and may be negative.
//   - Vertices are ordered by first insertion; Vertices(), NeighborIDs() and
//     Edges() all follow that order, so algorithms built on top are
//     deterministic for a fixed sequence of insertions.
//   - There is no deletion; Clear() empties the graph for a wholesale reload.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error          // O(1)
//	HasVertex(id string) bool           // O(1)
//	Vertices() []string                 // O(V)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w int64) error // O(1)
//	HasEdge(u, v string) bool           // O(1)
//	Weight(u, v string) (int64, error)  // O(1)
//	Edges() []Edge                      // O(E log E)
//
//	// Adjacency
//	Neighbors(id string) (map[string]int64, error) // O(deg)
//	NeighborIDs(id string) ([]string, error)       // O(deg log deg)
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Readers receive copies, never
//	live maps, so a caller may iterate a result without holding any lock.
//	Algorithms still expect the graph not to change while they run.
package core
