// Package config loads benchmark workloads for setbench.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/adm87/hashset/hash"
	"gopkg.in/yaml.v3"
)

const (
	HasherRandom = "random"
	HasherFixed  = "fixed"

	DefaultSize   = 1024
	DefaultRounds = 10
)

// Workload describes one benchmark run.
type Workload struct {
	Name   string `yaml:"name"`
	Size   int    `yaml:"size"`
	Rounds int    `yaml:"rounds"`
	Hasher string `yaml:"hasher"`
	Seed   uint64 `yaml:"seed"`
}

// UnmarshalYAML fills in defaults for absent fields only, so an explicit zero is kept
// and checked by Validate.
func (w *Workload) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Name   string `yaml:"name"`
		Size   *int   `yaml:"size"`
		Rounds *int   `yaml:"rounds"`
		Hasher string `yaml:"hasher"`
		Seed   uint64 `yaml:"seed"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	*w = Workload{Name: raw.Name, Size: DefaultSize, Rounds: DefaultRounds, Hasher: raw.Hasher, Seed: raw.Seed}
	if raw.Size != nil {
		w.Size = *raw.Size
	}
	if raw.Rounds != nil {
		w.Rounds = *raw.Rounds
	}
	return nil
}

type Config struct {
	Workloads []Workload `yaml:"workloads"`
}

// Default returns a single workload inserting DefaultSize elements.
func Default() *Config {
	return &Config{Workloads: []Workload{{
		Name:   "default",
		Size:   DefaultSize,
		Rounds: DefaultRounds,
		Hasher: HasherRandom,
	}}}
}

// Load reads a YAML config file. Environment variables in the file are expanded.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse([]byte(os.ExpandEnv(string(data))))
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if len(cfg.Workloads) == 0 {
		return Default(), nil
	}
	for i := range cfg.Workloads {
		applyDefaults(&cfg.Workloads[i], i)
		if err := cfg.Workloads[i].Validate(); err != nil {
			return nil, fmt.Errorf("workload %q: %w", cfg.Workloads[i].Name, err)
		}
	}
	return &cfg, nil
}

func applyDefaults(w *Workload, i int) {
	if w.Name == "" {
		w.Name = fmt.Sprintf("workload-%d", i+1)
	}
	w.Hasher = strings.ToLower(strings.TrimSpace(w.Hasher))
	if w.Hasher == "" {
		w.Hasher = HasherRandom
	}
}

func (w Workload) Validate() error {
	if w.Size < 0 {
		return fmt.Errorf("size must not be negative, got %d", w.Size)
	}
	if w.Rounds < 1 {
		return fmt.Errorf("rounds must be positive, got %d", w.Rounds)
	}
	if _, err := w.Builder(); err != nil {
		return err
	}
	return nil
}

// Builder returns the hasher factory selected by the workload.
func (w Workload) Builder() (hash.Builder, error) {
	switch w.Hasher {
	case HasherRandom, "":
		return hash.NewRandomState(), nil
	case HasherFixed:
		return hash.FixedState{Seed: w.Seed}, nil
	}
	return nil, fmt.Errorf("unknown hasher %q (expected %s or %s)", w.Hasher, HasherRandom, HasherFixed)
}
