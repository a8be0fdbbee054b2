package prim_kruskal_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/disjointset"
	"github.com/katalvlaran/mstkit/prim_kruskal"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs the undirected, weighted triangle graph
//
//	A—B (weight 1), B—C (weight 2), A—C (weight 3).
//
// This graph’s only MST consists of edges A—B and B—C with total weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 3))

	return g
}

// buildMediumGraph creates a connected, weighted graph with n vertices and edgesCount total edges.
//   - First, it ensures connectivity by chaining V0—V1—...—V(n-1) with weights in [1..maxW].
//   - Then it adds random extra edges with weights in [1..maxW]; repeated pairs are skipped.
//
// The random number generator is seeded deterministically for reproducibility.
// A small maxW produces many equal-weight ties.
func buildMediumGraph(t testing.TB, n, edgesCount int, maxW int64, seed int64) *core.Graph {
	g := core.NewGraph()
	r := rand.New(rand.NewSource(seed))

	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(fmt.Sprintf("V%d", i-1), fmt.Sprintf("V%d", i), 1+r.Int63n(maxW)))
	}
	for g.EdgeCount() < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		uID, vID := fmt.Sprintf("V%d", u), fmt.Sprintf("V%d", v)
		if g.HasEdge(uID, vID) {
			continue
		}
		require.NoError(t, g.AddEdge(uID, vID, 1+r.Int63n(maxW)))
	}

	return g
}

// requireConsistent checks the invariants every Result must satisfy against g:
//   - TotalWeight equals the sum of returned edge weights.
//   - Every returned edge exists in g with the reported weight.
//   - No prefix of the edge sequence contains a cycle.
func requireConsistent(t testing.TB, g *core.Graph, res prim_kruskal.Result) {
	var sum int64
	ds := disjointset.New(g.Vertices()...)
	for i, e := range res.Edges {
		sum += e.Weight
		w, err := g.Weight(e.From, e.To)
		require.NoError(t, err, "edge %d (%s-%s) must exist", i, e.From, e.To)
		require.Equal(t, w, e.Weight, "edge %d weight", i)
		require.True(t, ds.Union(e.From, e.To), "edge %d (%s-%s) closes a cycle", i, e.From, e.To)
	}
	require.Equal(t, sum, res.TotalWeight)
}
