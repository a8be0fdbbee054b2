package disjointset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownElement is the root cause carried by the panic raised when an
// operation references an element that was never registered.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// DisjointSet is a forest of parent pointers with union by rank.
//
// parent[x] == x marks a root. rank is an upper bound on subtree height and is
// only meaningful for roots. size counts members and is only meaningful for roots.
type DisjointSet struct {
	parent map[string]string
	rank   map[string]int
	size   map[string]int
	count  int // number of disjoint sets
}

// New builds a DisjointSet where every id starts in its own singleton set.
// Duplicate ids are registered once.
// Complexity: O(n).
func New(ids ...string) *DisjointSet {
	d := &DisjointSet{
		parent: make(map[string]string, len(ids)),
		rank:   make(map[string]int, len(ids)),
		size:   make(map[string]int, len(ids)),
	}
	for _, id := range ids {
		d.Add(id)
	}

	return d
}

// Add registers id as a singleton set. Re-adding an existing id is a no-op
// and never splits its current set.
// Complexity: O(1).
func (d *DisjointSet) Add(id string) {
	if _, ok := d.parent[id]; ok {
		return
	}
	d.parent[id] = id
	d.rank[id] = 0
	d.size[id] = 1
	d.count++
}

// Has reports whether id is registered.
func (d *DisjointSet) Has(id string) bool {
	_, ok := d.parent[id]

	return ok
}

// Len returns the number of registered elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of disjoint sets.
func (d *DisjointSet) Count() int { return d.count }

// Find returns the root of x's set with full path compression.
//
// Two passes: walk up to the root, then walk the same path again pointing
// each node at the root. Iterative, so deep forests cannot overflow the stack.
//
// Panics if x is not registered.
func (d *DisjointSet) Find(x string) string {
	d.mustHave(x)

	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for x != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets containing x and y.
//
// Returns false (and changes nothing) if x and y already share a root.
// Panics if either element is not registered.
func (d *DisjointSet) Union(x, y string) bool {
	rootX, rootY := d.Find(x), d.Find(y)
	if rootX == rootY {
		return false
	}

	switch rx, ry := d.rank[rootX], d.rank[rootY]; {
	case rx < ry:
		d.parent[rootX] = rootY
		d.size[rootY] += d.size[rootX]
	case rx > ry:
		d.parent[rootY] = rootX
		d.size[rootX] += d.size[rootY]
	default:
		d.parent[rootY] = rootX
		d.size[rootX] += d.size[rootY]
		d.rank[rootX]++
	}
	d.count--

	return true
}

// Connected reports whether x and y are in the same set.
// Panics if either element is not registered.
func (d *DisjointSet) Connected(x, y string) bool {
	return d.Find(x) == d.Find(y)
}

// SizeOf returns the number of elements in x's set.
// Panics if x is not registered.
func (d *DisjointSet) SizeOf(x string) int {
	return d.size[d.Find(x)]
}

// Sets returns all disjoint sets. Members of each set are sorted and sets are
// ordered by their first member, so output is deterministic.
// Complexity: O(n log n).
func (d *DisjointSet) Sets() [][]string {
	byRoot := make(map[string][]string, d.count)
	for id := range d.parent {
		root := d.Find(id)
		byRoot[root] = append(byRoot[root], id)
	}
	out := make([][]string, 0, len(byRoot))
	for _, set := range byRoot {
		sort.Strings(set)
		out = append(out, set)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out
}

// mustHave panics when x was never registered.
func (d *DisjointSet) mustHave(x string) {
	if _, ok := d.parent[x]; !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownElement, x))
	}
}
