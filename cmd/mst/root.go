package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mstkit/internal/config"
	"github.com/katalvlaran/mstkit/internal/logging"
)

// app carries the flag values and the state resolved from them before a
// subcommand runs.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	inFormat   string
	outFormat  string
	root       string

	seed        int64
	minWeight   int64
	maxWeight   int64
	probability float64

	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logging.Discard()}

	rootCmd := &cobra.Command{
		Use:           "mst",
		Short:         "Minimum spanning trees with Prim's and Kruskal's algorithms",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&a.inFormat, "format", "text", "input format: text or yaml")
	pf.StringVarP(&a.outFormat, "output", "o", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(
		newPrimCmd(a),
		newKruskalCmd(a),
		newCompareCmd(a),
		newGenerateCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup loads the config file, lets explicitly set flags override it and
// builds the logger on the command's stderr.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if flags.Changed("format") {
		cfg.Input.Format = a.inFormat
	}
	if flags.Changed("output") {
		cfg.Output.Format = a.outFormat
	}
	if flags.Changed("root") {
		cfg.Prim.Root = a.root
	}
	if flags.Changed("seed") {
		cfg.Generate.Seed = a.seed
	}
	if flags.Changed("min-weight") {
		cfg.Generate.MinWeight = a.minWeight
	}
	if flags.Changed("max-weight") {
		cfg.Generate.MaxWeight = a.maxWeight
	}
	if flags.Changed("probability") {
		cfg.Generate.Probability = a.probability
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger.With("command", cmd.Name())
	if a.configPath != "" {
		a.log.Debug("configuration loaded", "path", a.configPath)
	}

	return nil
}

func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.cfg.Marshal()
			if err != nil {
				return fmt.Errorf("failed to render config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)

			return err
		},
	}
}
