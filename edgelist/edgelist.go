package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstkit/core"
)

// Format names an input encoding accepted by Load.
type Format string

const (
	// FormatText is the whitespace-separated "<from> <to> <weight>" line format.
	FormatText Format = "text"

	// FormatYAML is the "edges: [{from, to, weight}]" document format.
	FormatYAML Format = "yaml"
)

// commentPrefix marks a text line that is ignored.
const commentPrefix = "#"

// MaxLineLength is the longest text line Parse accepts, in bytes. A longer
// line is reported as a *LineError wrapping ErrInvalidEdgeFormat.
const MaxLineLength = 1 << 20

// Triple is one parsed edge record.
type Triple struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight"`
}

// ParseLine parses a single "<from> <to> <weight>" line.
// Exactly three fields are required and the weight must be an integer.
func ParseLine(line string) (Triple, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Triple{}, fmt.Errorf("want 3 fields, got %d: %w", len(fields), ErrInvalidEdgeFormat)
	}
	w, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Triple{}, fmt.Errorf("weight %q is not an integer: %w", fields[2], ErrInvalidEdgeFormat)
	}

	return Triple{From: fields[0], To: fields[1], Weight: w}, nil
}

// Parse reads a text edge list. The first malformed line aborts parsing and is
// returned as a *LineError; no triples are returned in that case.
func Parse(r io.Reader) ([]Triple, error) {
	var (
		out  []Triple
		line int
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineLength)
	for sc.Scan() {
		line++
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
			continue
		}
		t, err := ParseLine(trimmed)
		if err != nil {
			return nil, &LineError{Line: line, Text: raw, Err: err}
		}
		out = append(out, t)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &LineError{
				Line: line + 1,
				Text: fmt.Sprintf("<line longer than %d bytes>", MaxLineLength),
				Err:  fmt.Errorf("%w: %w", ErrInvalidEdgeFormat, err),
			}
		}
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return out, nil
}

// BuildGraph inserts every triple into a fresh graph, in order.
//
// A later triple for an already-seen pair overwrites its weight. Empty vertex
// IDs and self-loops are rejected with ErrInvalidEdgeFormat; the returned error
// names the offending record index and also wraps the core sentinel.
func BuildGraph(triples []Triple) (*core.Graph, error) {
	g := core.NewGraph()
	for i, t := range triples {
		if err := g.AddEdge(t.From, t.To, t.Weight); err != nil {
			return nil, fmt.Errorf("%w: record %d (%s %s %d): %w", ErrInvalidEdgeFormat, i, t.From, t.To, t.Weight, err)
		}
	}

	return g, nil
}

// Load parses r in the given format and builds the graph.
func Load(r io.Reader, format Format) (*core.Graph, error) {
	var (
		triples []Triple
		err     error
	)
	switch format {
	case FormatText, "":
		triples, err = Parse(r)
	case FormatYAML:
		triples, err = ParseYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return BuildGraph(triples)
}

// Reload replaces the contents of g with the edge list read from r, keeping
// the input's vertex order. Input is fully parsed and validated first, so on
// error g is left as it was. Readers running concurrently may observe g empty
// between the reset and the refill.
func Reload(g *core.Graph, r io.Reader, format Format) error {
	if g == nil {
		return core.ErrNilGraph
	}
	fresh, err := Load(r, format)
	if err != nil {
		return err
	}

	g.Clear()
	for _, v := range fresh.Vertices() {
		if err := g.AddVertex(v); err != nil {
			return err
		}
	}
	for _, e := range fresh.Edges() {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// Write emits g as a text edge list, one "<from> <to> <weight>" line per edge,
// in core.Graph.Edges() order. Isolated vertices cannot be expressed and are omitted.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return core.ErrNilGraph
	}
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%s %s %d\n", e.From, e.To, e.Weight); err != nil {
			return fmt.Errorf("edgelist: write: %w", err)
		}
	}

	return bw.Flush()
}
