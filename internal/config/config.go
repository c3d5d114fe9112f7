// ==============================================================================================
// FILE: internal/config/config.go
// ==============================================================================================
// PACKAGE: config
// PURPOSE: Driver/REPL configuration, loaded from YAML (SPEC_FULL.md §4.5) the way
//          theRebelliousNerd-codenerd's internal/config package loads its per-concern config
//          structs — a plain tagged struct plus a loader, no framework.
// ==============================================================================================

package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls the ambient, non-semantic behavior of the driver and CLI.
// A zero Config behaves exactly per spec.md: unbounded answers, no tracing.
type Config struct {
	// MaxSolutions caps how many answers AnswerQuery collects per query.
	// 0 (the default) means unbounded.
	MaxSolutions int `yaml:"max_solutions"`

	// Trace enables structured zap trace events during resolution.
	Trace bool `yaml:"trace"`

	// Prompt is loaded from the file and defaults to ">- ". The REPL does not
	// read it: repl.Start always prints its own PROMPT constant.
	Prompt string `yaml:"prompt"`

	// Color toggles ANSI-colored REPL output.
	Color bool `yaml:"color"`
}

// Default returns the baseline configuration: unbounded solutions, no
// tracing, the conventional ">- " prompt, color on.
func Default() *Config {
	return &Config{Prompt: ">- ", Color: true}
}

// Load reads a YAML config file. A missing file is not an error — it
// simply yields Default(), so a bare `prolog repl` works with no setup.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
