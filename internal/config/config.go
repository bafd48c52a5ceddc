// Package config loads the CLI's optional YAML configuration file: the
// non-semantic knobs described in SPEC_FULL.md §10 that sit outside the
// analyzer's own input (an AST document) and output (an instruction
// stream plus accumulated errors).
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// OutputFormat selects how the CLI renders an emitted instruction stream.
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// Config holds the knobs a `--config` file may override.
type Config struct {
	// MaxPriorityLevel overrides ast.MaxPriorityLevel for experimenting
	// with the operator-precedence folding algorithm without a rebuild.
	MaxPriorityLevel int `yaml:"max_priority_level"`

	// ContinuePastDeclarationErrors, when true, runs Pass C even after
	// Pass A/B recorded errors. When false, Pass A and Pass B still check
	// every declaration and record all their errors, and Pass C is then
	// skipped. The analyzer itself never aborts early (spec §7); this
	// only controls whether the CLI still attempts Pass C on a program
	// whose declarations didn't all resolve.
	ContinuePastDeclarationErrors bool `yaml:"continue_past_declaration_errors"`

	// Format selects the default `disassemble` rendering.
	Format OutputFormat `yaml:"format"`
}

// Default returns the configuration used when no --config file is given.
func Default(maxPriorityLevel int) Config {
	return Config{
		MaxPriorityLevel:              maxPriorityLevel,
		ContinuePastDeclarationErrors: true,
		Format:                        FormatText,
	}
}

// rawConfig mirrors Config but leaves ContinuePastDeclarationErrors a
// pointer, so Load can tell "absent from the file" apart from "set to
// false" — a plain bool can't carry that distinction.
type rawConfig struct {
	MaxPriorityLevel              int          `yaml:"max_priority_level"`
	ContinuePastDeclarationErrors *bool        `yaml:"continue_past_declaration_errors"`
	Format                        OutputFormat `yaml:"format"`
}

// Load reads and parses a YAML config file, filling in any field left
// absent with the corresponding Default field.
func Load(path string, defaultMaxPriorityLevel int) (Config, error) {
	cfg := Default(defaultMaxPriorityLevel)
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var overrides rawConfig
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if overrides.MaxPriorityLevel != 0 {
		cfg.MaxPriorityLevel = overrides.MaxPriorityLevel
	}
	if overrides.Format != "" {
		cfg.Format = overrides.Format
	}
	if overrides.ContinuePastDeclarationErrors != nil {
		cfg.ContinuePastDeclarationErrors = *overrides.ContinuePastDeclarationErrors
	}

	return cfg, nil
}
