// Package config holds the YAML configuration of the mst command.
package config

// Config is the root of mst.yaml. Every field has a default from Default();
// command-line flags override file values.
type Config struct {
	Log      LogConfig      `yaml:"log"`
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Prim     PrimConfig     `yaml:"prim"`
	Generate GenerateConfig `yaml:"generate"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

type InputConfig struct {
	Format string `yaml:"format"` // text or yaml
}

type OutputConfig struct {
	Format string `yaml:"format"` // text, json or yaml
}

type PrimConfig struct {
	// Root is the start vertex; empty means the first vertex of the input.
	Root string `yaml:"root,omitempty"`
}

type GenerateConfig struct {
	Seed        int64   `yaml:"seed"`
	MinWeight   int64   `yaml:"min_weight"`
	MaxWeight   int64   `yaml:"max_weight"`
	Probability float64 `yaml:"probability"` // edge probability for "random"
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info", Format: "text"},
		Input:  InputConfig{Format: "text"},
		Output: OutputConfig{Format: "text"},
		Generate: GenerateConfig{
			Seed:        1,
			MinWeight:   1,
			MaxWeight:   100,
			Probability: 0.3,
		},
	}
}
