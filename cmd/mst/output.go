package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstkit/prim_kruskal"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// comparison is the structured output of "mst compare".
type comparison struct {
	Prim       prim_kruskal.Result `json:"prim" yaml:"prim"`
	Kruskal    prim_kruskal.Result `json:"kruskal" yaml:"kruskal"`
	Match      bool                `json:"totals_match" yaml:"totals_match"`
	Components int                 `json:"components" yaml:"components"`
}

// writeStructured encodes v as indented JSON or YAML.
func writeStructured(w io.Writer, format string, v any) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writePrimText prints the selection trace and the total.
func writePrimText(w io.Writer, res prim_kruskal.Result) error {
	if _, err := fmt.Fprintln(w, "Prim's Algorithm Node Selection Order:"); err != nil {
		return err
	}
	for i, v := range res.Order {
		if _, err := fmt.Fprintf(w, "Step %d: Selected Node -> %s\n", i+1, v); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Total Weight of MST: %d\n", res.TotalWeight)

	return err
}

// writeKruskalText prints the accepted edges and the total.
func writeKruskalText(w io.Writer, res prim_kruskal.Result) error {
	for _, e := range res.Edges {
		if _, err := fmt.Fprintf(w, "Edge: %s - %s (%d)\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Kruskal's Algorithm Total Weight: %d\n", res.TotalWeight)

	return err
}
