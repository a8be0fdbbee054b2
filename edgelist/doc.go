// Package edgelist turns edge-list input into a *core.Graph.
//
// Two input formats are supported:
//
//	text — one edge per line: "<from> <to> <weight>", fields separated by
//	       whitespace, weight a base-10 integer (sign allowed). Blank lines
//	       and lines starting with '#' are skipped.
//
//	yaml — a document of the form
//
//	         edges:
//	           - {from: A, to: B, weight: 1}
//
// Any record that does not decompose into two vertex IDs and one integer is
// rejected with an error wrapping ErrInvalidEdgeFormat. For text input the
// error is a *LineError carrying the 1-based line number and the raw text,
// so a caller can surface "Invalid line: <text>" and abort the load.
//
// BuildGraph is the strict boundary: it never returns a partially built graph.
package edgelist
