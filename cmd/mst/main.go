// Command mst computes minimum spanning trees of weighted edge lists.
//
//	mst prim    graph.txt          # Prim trace and total
//	mst kruskal graph.txt          # Kruskal total
//	mst compare -                  # both, reading stdin
//	mst generate grid 4 | mst prim -
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, describeError(err))
		os.Exit(1)
	}
}
