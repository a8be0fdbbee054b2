// Package disjointset implements a union-find (disjoint-set) structure over
// string element IDs, used by Kruskal to detect would-be cycles.
//
// Operations:
//
//   - Find(x): returns the representative root of x's set. Path compression
//     re-points every node visited on the way to the root directly at the root,
//     so repeated finds on the same nodes are O(1) amortized.
//
//   - Union(x, y): merges the sets of x and y by rank. The lower-rank root is
//     attached under the higher-rank root; on a tie y's root goes under x's root
//     and x's root rank grows by one. Returns false when x and y were already in
//     the same set, which Kruskal reads as "this edge would close a cycle".
//
// Complexity: O(α(n)) amortized per operation, α = inverse Ackermann.
//
// Preconditions:
//
//	Every element must be registered (New or Add) before Find, Union or
//	Connected touch it. Using an unregistered element is a programming error
//	and panics with a message wrapping ErrUnknownElement.
//
// A DisjointSet is not safe for concurrent use; each MST run owns its own.
package disjointset
