package edgelist

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/mstkit/core"
	"gopkg.in/yaml.v3"
)

// document is the YAML shape accepted by ParseYAML. Weights are decoded as
// yaml.Node so that non-integer scalars are reported as format errors rather
// than silently truncated.
type document struct {
	Edges []struct {
		From   string    `yaml:"from"`
		To     string    `yaml:"to"`
		Weight yaml.Node `yaml:"weight"`
	} `yaml:"edges"`
}

// ParseYAML reads an "edges:" YAML document. An empty document yields no triples.
func ParseYAML(r io.Reader) ([]Triple, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("edgelist: yaml: %v: %w", err, ErrInvalidEdgeFormat)
	}

	out := make([]Triple, 0, len(doc.Edges))
	for i, e := range doc.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("edgelist: yaml edge %d: missing endpoint: %w", i, ErrInvalidEdgeFormat)
		}
		if e.Weight.Kind != yaml.ScalarNode || e.Weight.ShortTag() != "!!int" {
			return nil, fmt.Errorf("edgelist: yaml edge %d: weight %q is not an integer: %w", i, e.Weight.Value, ErrInvalidEdgeFormat)
		}
		var w int64
		if err := e.Weight.Decode(&w); err != nil {
			return nil, fmt.Errorf("edgelist: yaml edge %d: %v: %w", i, err, ErrInvalidEdgeFormat)
		}
		out = append(out, Triple{From: e.From, To: e.To, Weight: w})
	}

	return out, nil
}

// WriteYAML emits g in the "edges:" shape read by ParseYAML, in
// core.Graph.Edges() order. Isolated vertices are omitted.
func WriteYAML(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	edges := g.Edges()
	doc := struct {
		Edges []Triple `yaml:"edges"`
	}{Edges: make([]Triple, len(edges))}
	for i, e := range edges {
		doc.Edges[i] = Triple{From: e.From, To: e.To, Weight: e.Weight}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("edgelist: write yaml: %w", err)
	}

	return enc.Close()
}
