package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFind_PathCompression verifies that every node on the find path is
// re-pointed directly at the root.
func TestFind_PathCompression(t *testing.T) {
	d := New("A", "B", "C", "D")
	// Hand-build a chain D → C → B → A.
	d.parent["B"] = "A"
	d.parent["C"] = "B"
	d.parent["D"] = "C"

	assert.Equal(t, "A", d.Find("D"))
	for _, id := range []string{"B", "C", "D"} {
		assert.Equal(t, "A", d.parent[id], "parent of %s after compression", id)
	}
}
