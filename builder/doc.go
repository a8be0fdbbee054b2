// SPDX-License-Identifier: MIT
// Package builder provides deterministic, composable generators for weighted
// undirected graphs: fixtures for tests, benchmarks and the `mst generate` command.
//
// Usage:
//
//	g, err := builder.Build(
//		[]builder.Option{builder.WithSeed(42), builder.WithWeightFn(builder.UniformWeightFn(1, 9))},
//		builder.Grid(3, 4),
//	)
//
// Constructors:
//
//	Path(n)            P_n, n ≥ 2
//	Cycle(n)           C_n, n ≥ 3
//	Star(n)            center "Center" + n-1 leaves, n ≥ 2
//	Complete(n)        K_n, n ≥ 1
//	Grid(rows, cols)   4-neighborhood lattice with IDs "r,c", rows, cols ≥ 1
//	RandomSparse(n, p) G(n,p) Erdős–Rényi sample, n ≥ 1, p ∈ [0,1]
//
// Determinism: same options, seed and constructor order ⇒ identical graphs,
// including vertex insertion order (which drives MST tie-breaking).
//
// Errors: constructors return sentinel errors wrapped with method context;
// option constructors panic on meaningless input (nil functions, max < min).
package builder
