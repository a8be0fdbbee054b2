package disjointset_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/mstkit/disjointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Singletons verifies every registered element starts as its own root.
func TestNew_Singletons(t *testing.T) {
	d := disjointset.New("A", "B", "C", "A")

	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 3, d.Count())
	for _, id := range []string{"A", "B", "C"} {
		assert.Equal(t, id, d.Find(id))
		assert.Equal(t, 1, d.SizeOf(id))
	}
	assert.False(t, d.Connected("A", "B"))
}

// TestUnion_ReportsCycle verifies Union returns false once both ends share a root.
func TestUnion_ReportsCycle(t *testing.T) {
	d := disjointset.New("A", "B", "C")

	require.True(t, d.Union("A", "B"))
	require.True(t, d.Union("B", "C"))
	assert.False(t, d.Union("A", "C")) // closes A-B-C
	assert.False(t, d.Union("C", "C"))

	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 3, d.SizeOf("B"))
	assert.True(t, d.Connected("A", "C"))
}

// TestUnion_RankTieBreak verifies that on equal rank y's root goes under x's root,
// and that a lower-rank root is attached under a higher-rank root.
func TestUnion_RankTieBreak(t *testing.T) {
	d := disjointset.New("A", "B", "C", "D")

	require.True(t, d.Union("A", "B")) // tie: B under A, rank(A)=1
	assert.Equal(t, "A", d.Find("B"))

	require.True(t, d.Union("C", "A")) // rank(C)=0 < rank(A)=1: C under A
	assert.Equal(t, "A", d.Find("C"))

	require.True(t, d.Union("D", "B")) // D (rank 0) joins A's tree
	assert.Equal(t, "A", d.Find("D"))
}

// TestAdd_Idempotent verifies re-adding an element never splits its set.
func TestAdd_Idempotent(t *testing.T) {
	d := disjointset.New("A", "B")
	require.True(t, d.Union("A", "B"))

	d.Add("B")
	d.Add("C")
	assert.True(t, d.Connected("A", "B"))
	assert.True(t, d.Has("C"))
	assert.False(t, d.Has("Z"))
	assert.Equal(t, 2, d.Count())
}

// TestUnknownElement_Panics verifies precondition violations fail loudly.
func TestUnknownElement_Panics(t *testing.T) {
	d := disjointset.New("A")

	assert.PanicsWithError(t, `disjointset: unknown element: "Z"`, func() { d.Find("Z") })
	assert.Panics(t, func() { d.Union("A", "Z") })
	assert.Panics(t, func() { d.Connected("Z", "A") })
}

// TestSets_Deterministic verifies Sets output ordering.
func TestSets_Deterministic(t *testing.T) {
	d := disjointset.New("E", "D", "C", "B", "A")
	d.Union("E", "A")
	d.Union("D", "C")

	assert.Equal(t, [][]string{{"A", "E"}, {"B"}, {"C", "D"}}, d.Sets())
}

// TestConnected_MatchesUnionClosure checks Find equivalence against a naive
// label-merging model over a random sequence of unions.
func TestConnected_MatchesUnionClosure(t *testing.T) {
	const n = 60
	r := rand.New(rand.NewSource(7))

	ids := make([]string, n)
	label := make(map[string]int, n) // naive model: component label per element
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
		label[ids[i]] = i
	}
	d := disjointset.New(ids...)

	for step := 0; step < 80; step++ {
		x, y := ids[r.Intn(n)], ids[r.Intn(n)]
		merged := d.Union(x, y)
		lx, ly := label[x], label[y]
		assert.Equal(t, lx != ly, merged, "Union(%s,%s) result", x, y)
		if lx != ly {
			for id, l := range label {
				if l == ly {
					label[id] = lx
				}
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a, b := ids[i], ids[j]
				require.Equal(t, label[a] == label[b], d.Connected(a, b), "Connected(%s,%s)", a, b)
			}
		}
	}
}

// BenchmarkUnionFind measures a chain of unions followed by finds.
func BenchmarkUnionFind(b *testing.B) {
	const n = 10000
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := disjointset.New(ids...)
		for j := 1; j < n; j++ {
			d.Union(ids[j-1], ids[j])
		}
		for j := 0; j < n; j++ {
			_ = d.Find(ids[j])
		}
	}
}
