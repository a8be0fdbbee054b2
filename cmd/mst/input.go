package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/edgelist"
	"github.com/katalvlaran/mstkit/prim_kruskal"
)

// stdinPath selects the command's standard input as the edge list.
const stdinPath = "-"

// loadGraph reads the edge list named by path ("-" for stdin) in the
// configured input format.
func (a *app) loadGraph(cmd *cobra.Command, path string) (*core.Graph, error) {
	var r io.Reader
	if path == stdinPath {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open graph %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	g, err := edgelist.Load(r, edgelist.Format(a.cfg.Input.Format))
	if err != nil {
		return nil, err
	}
	a.log.Debug("graph loaded",
		"source", path,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	return g, nil
}

// describeError renders err as the single line printed before a non-zero exit.
func describeError(err error) string {
	var lineErr *edgelist.LineError
	switch {
	case errors.As(err, &lineErr):
		return fmt.Sprintf("Invalid line: %s", lineErr.Text)
	case errors.Is(err, prim_kruskal.ErrEmptyGraph):
		return "Error: graph is empty, please load a graph first"
	default:
		return "Error: " + err.Error()
	}
}
