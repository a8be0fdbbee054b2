// Package prim_kruskal provides two independent algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted *core.Graph: lazy Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//     The MST weight is unique even when several edge sets reach it.
//
// Algorithms Provided
//
//   - Kruskal(g) / RunKruskal(g) (Result, error)
//
//   - Strategy: enumerate each undirected edge once, sort ascending by (weight, From, To),
//     then accept an edge only if its endpoints lie in different disjoint-set trees.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) space.
//
//   - Output: Edges in acceptance (ascending weight) order and TotalWeight. No Order trace.
//
//   - Prim(g, root) / RunPrim(g) (Result, error)
//
//   - Strategy: lazy Prim. A min-heap holds (weight, vertex, parent) candidates seeded with
//     (0, root, none). Popped entries whose vertex is already in the tree are discarded instead
//     of being removed eagerly on a decrease-key.
//
//   - Complexity: O(E log E) time, O(V + E) space.
//
//   - Output: Edges in admission order, TotalWeight, and Order: the vertices in the order they
//     joined the tree, starting with root. RunPrim starts from the first-inserted vertex.
//
// Tie-breaking
//
//	Prim pops candidates by (weight, vertex ID, parent ID); Kruskal sorts by (weight, From, To),
//	where From is the endpoint inserted first. Both are deterministic; tests should rely on
//	TotalWeight and tree validity rather than a specific choice among equal-weight edges.
//
// Disconnected graphs
//
//	Neither engine reports an error. Prim returns a tree of the root's component only;
//	Kruskal returns a spanning forest with one tree per component. TotalWeight always sums
//	exactly the returned edges.
//
// Error Conditions
//
//	- ErrInvalidGraph        — graph is nil.
//	- ErrEmptyGraph          — graph has no vertices.
//	- ErrEmptyRoot           — Prim called with root == "".
//	- core.ErrVertexNotFound — Prim root is not in the graph.
//	- ErrUnknownMethod       — Compute called with an unknown MSTOptions.Method.
//
// Each call allocates its own heap, visited set and disjoint-set, and discards them on return.
// The graph is read through copies and is never mutated.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
