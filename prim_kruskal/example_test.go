package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// ExampleRunKruskal demonstrates Kruskal’s algorithm on the triangle graph.
// The MST is {A–B, B–C} with total weight = 3; A–C is rejected as a cycle.
func ExampleRunKruskal() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 4)

	res, err := prim_kruskal.RunKruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", res.TotalWeight)
	for _, e := range res.Edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim demonstrates Prim’s algorithm and its selection trace on a 7-vertex graph.
//
//	B—C (1), D—E (1), A—B (2), E—G (2), F—G (3),
//	A—C (3), B—D (4), C—E (5), E—F (6), D—F (7).
func ExamplePrim() {
	g := core.NewGraph()
	for _, v := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		_ = g.AddVertex(v)
	}
	_ = g.AddEdge("A", "B", 2)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("D", "E", 1)
	_ = g.AddEdge("E", "G", 2)
	_ = g.AddEdge("F", "G", 3)
	_ = g.AddEdge("A", "C", 3)
	_ = g.AddEdge("B", "D", 4)
	_ = g.AddEdge("C", "E", 5)
	_ = g.AddEdge("E", "F", 6)
	_ = g.AddEdge("D", "F", 7)

	res, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for step, v := range res.Order {
		fmt.Printf("Step %d: Selected Node -> %s\n", step+1, v)
	}
	fmt.Printf("Total Weight of MST: %d\n", res.TotalWeight)
	// Output:
	// Step 1: Selected Node -> A
	// Step 2: Selected Node -> B
	// Step 3: Selected Node -> C
	// Step 4: Selected Node -> D
	// Step 5: Selected Node -> E
	// Step 6: Selected Node -> G
	// Step 7: Selected Node -> F
	// Total Weight of MST: 13
}

// ExampleKruskal_forest shows the spanning forest returned for a disconnected graph.
func ExampleKruskal_forest() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 5)
	_ = g.AddEdge("C", "D", 7)

	res, _ := prim_kruskal.Kruskal(g)
	fmt.Println(len(res.Edges), res.TotalWeight)
	// Output: 2 12
}

// ExampleRunPrim_emptyGraph shows the error for a graph with no vertices.
func ExampleRunPrim_emptyGraph() {
	g := core.NewGraph()
	_, err := prim_kruskal.RunPrim(g)
	fmt.Println(err)
	// Output: prim_kruskal: graph is empty
}
