// Package mstkit computes minimum spanning trees of undirected, weighted graphs.
//
// What is in the box?
//
//	core/          — Graph: symmetric weighted adjacency, insertion-ordered, RW-locked
//	disjointset/   — union-find with path compression and union by rank
//	prim_kruskal/  — lazy Prim (with selection trace) and Kruskal
//	edgelist/      — "<from> <to> <weight>" text and YAML loaders, BuildGraph
//	builder/       — deterministic synthetic graphs (path, cycle, star, complete, grid, random)
//	cmd/mst        — command line front end
//
// Quick ASCII example:
//
//	    A──1──B
//	     \    │
//	      3   2
//	       \  │
//	         C
//
// Both engines pick A–B and B–C for a total of 3; Prim reports the
// selection order A, B, C.
//
// Disconnected input is not an error: Prim spans the root's component,
// Kruskal returns a forest.
//
//	go install github.com/katalvlaran/mstkit/cmd/mst@latest
package mstkit
