package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration that parsed but holds unusable values.
var ErrInvalid = errors.New("config: invalid value")

// Load reads path over Default(). An empty path returns the defaults; a
// missing file is an error because the caller asked for it explicitly.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses YAML from r over Default() and validates the result.
// Unknown keys are rejected so typos surface early.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerations and numeric ranges.
func (c Config) Validate() error {
	if !oneOf(c.Log.Level, "debug", "info", "warn", "error") {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if !oneOf(c.Log.Format, "text", "json") {
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if !oneOf(c.Input.Format, "text", "yaml") {
		return fmt.Errorf("%w: input.format %q", ErrInvalid, c.Input.Format)
	}
	if !oneOf(c.Output.Format, "text", "json", "yaml") {
		return fmt.Errorf("%w: output.format %q", ErrInvalid, c.Output.Format)
	}
	if c.Generate.MaxWeight < c.Generate.MinWeight {
		return fmt.Errorf("%w: generate.max_weight %d < min_weight %d", ErrInvalid, c.Generate.MaxWeight, c.Generate.MinWeight)
	}
	if c.Generate.Probability < 0 || c.Generate.Probability > 1 {
		return fmt.Errorf("%w: generate.probability %g not in [0,1]", ErrInvalid, c.Generate.Probability)
	}

	return nil
}

// Marshal renders c as YAML, e.g. for `mst config` output.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}

	return false
}
