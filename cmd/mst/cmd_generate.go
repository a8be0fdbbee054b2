package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstkit/builder"
	"github.com/katalvlaran/mstkit/edgelist"
)

func newGenerateCmd(a *app) *cobra.Command {
	kinds := make([]string, 0, len(builder.Kinds()))
	for _, k := range builder.Kinds() {
		kinds = append(kinds, string(k))
	}

	cmd := &cobra.Command{
		Use:   "generate KIND N",
		Short: "Write a synthetic weighted graph as an edge list",
		Long: "Write a synthetic weighted graph as an edge list.\n\nKIND is one of: " +
			strings.Join(kinds, ", ") + ". For grid, N is the side length.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid size %q: %w", args[1], err)
			}
			gc := a.cfg.Generate
			cons, err := builder.ByName(builder.Kind(args[0]), n, gc.Probability)
			if err != nil {
				return err
			}
			g, err := builder.Build([]builder.Option{
				builder.WithSeed(gc.Seed),
				builder.WithWeightFn(builder.UniformWeightFn(gc.MinWeight, gc.MaxWeight)),
			}, cons)
			if err != nil {
				return err
			}
			a.log.Debug("graph generated",
				"kind", args[0],
				"vertices", g.VertexCount(),
				"edges", g.EdgeCount(),
				"seed", gc.Seed,
			)

			switch a.cfg.Output.Format {
			case outputYAML:
				return edgelist.WriteYAML(cmd.OutOrStdout(), g)
			case outputJSON:
				return writeStructured(cmd.OutOrStdout(), outputJSON, map[string]any{"edges": g.Edges()})
			default:
				return edgelist.Write(cmd.OutOrStdout(), g)
			}
		},
	}
	f := cmd.Flags()
	f.Int64Var(&a.seed, "seed", 1, "random seed")
	f.Int64Var(&a.minWeight, "min-weight", 1, "smallest edge weight (inclusive)")
	f.Int64Var(&a.maxWeight, "max-weight", 100, "largest edge weight (inclusive)")
	f.Float64Var(&a.probability, "probability", 0.3, "edge probability for the random kind")

	return cmd
}
