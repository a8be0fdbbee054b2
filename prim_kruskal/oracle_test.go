package prim_kruskal_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/prim_kruskal"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// toGonum mirrors g into a gonum weighted undirected graph, mapping each
// vertex to its insertion index.
func toGonum(g *core.Graph) *simple.WeightedUndirectedGraph {
	out := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	ids := make(map[string]int64)
	for i, v := range g.Vertices() {
		ids[v] = int64(i)
		out.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		out.SetWeightedEdge(out.NewWeightedEdge(simple.Node(ids[e.From]), simple.Node(ids[e.To]), float64(e.Weight)))
	}

	return out
}

// TestAgainstGonum cross-checks MST weights with gonum's independent Prim and Kruskal.
func TestAgainstGonum(t *testing.T) {
	for _, seed := range []int64{21, 22, 23, 24} {
		g := buildMediumGraph(t, 60, 300, 50, seed)
		src := toGonum(g)

		wantK := path.Kruskal(simple.NewWeightedUndirectedGraph(0, math.Inf(1)), src)
		wantP := path.Prim(simple.NewWeightedUndirectedGraph(0, math.Inf(1)), src)
		require.Equal(t, wantK, wantP)

		resK, err := prim_kruskal.RunKruskal(g)
		require.NoError(t, err)
		resP, err := prim_kruskal.RunPrim(g)
		require.NoError(t, err)

		require.Equal(t, wantK, float64(resK.TotalWeight), "seed %d", seed)
		require.Equal(t, wantK, float64(resP.TotalWeight), "seed %d", seed)
	}
}
