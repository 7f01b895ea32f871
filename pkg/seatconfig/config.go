package seatconfig

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/immortalitybytes/seatyr1016-sub001/pkg/scoring"
	"github.com/immortalitybytes/seatyr1016-sub001/pkg/solver"
)

// Config is the YAML-decodable mirror of solver.Options. ToOptions passes
// zero fields through unchanged and solver.GeneratePlans fills them from
// solver.DefaultOptions, so a config file only needs to set what it wants
// to override.
type Config struct {
	// Seed is the master RNG seed. Use 0 to auto-generate from the clock.
	Seed uint32 `yaml:"seed" json:"seed"`

	// TimeBudgetMs bounds the whole search; 0 uses the solver default.
	TimeBudgetMs int `yaml:"timeBudgetMs" json:"timeBudgetMs"`

	// TargetPlans is how many distinct plans the search aims to collect.
	TargetPlans int `yaml:"targetPlans" json:"targetPlans"`

	// MaxAttemptsPerRun caps backtracking attempts within a single run.
	MaxAttemptsPerRun int `yaml:"maxAttemptsPerRun" json:"maxAttemptsPerRun"`

	// RunsMultiplier sets how many search runs are attempted per target plan.
	RunsMultiplier int `yaml:"runsMultiplier" json:"runsMultiplier"`

	// Weights overrides the scoring weights. Zero-value uses the default.
	Weights WeightsCfg `yaml:"weights" json:"weights"`
}

// WeightsCfg mirrors scoring.Weights for YAML decoding.
type WeightsCfg struct {
	Adjacency   float64 `yaml:"adjacency" json:"adjacency"`
	Utilization float64 `yaml:"utilization" json:"utilization"`
	Balance     float64 `yaml:"balance" json:"balance"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfigFromBytes(data)
}

// LoadConfigFromBytes parses YAML configuration from a byte slice.
func LoadConfigFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if cfg.Seed == 0 {
		cfg.Seed = generateSeed()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks all configuration constraints. A zero field is treated
// as "use the default" and never fails validation; only an explicitly set,
// out-of-range value does.
func (c *Config) Validate() error {
	if c.TimeBudgetMs < 0 {
		return fmt.Errorf("timeBudgetMs must be >= 0, got %d", c.TimeBudgetMs)
	}
	if c.TargetPlans < 0 {
		return fmt.Errorf("targetPlans must be >= 0, got %d", c.TargetPlans)
	}
	if c.MaxAttemptsPerRun < 0 {
		return fmt.Errorf("maxAttemptsPerRun must be >= 0, got %d", c.MaxAttemptsPerRun)
	}
	if c.RunsMultiplier < 0 {
		return fmt.Errorf("runsMultiplier must be >= 0, got %d", c.RunsMultiplier)
	}
	if err := c.Weights.Validate(); err != nil {
		return fmt.Errorf("weights: %w", err)
	}
	return nil
}

// Validate checks WeightsCfg constraints. A zero-valued WeightsCfg (the
// "use defaults" sentinel) is always valid.
func (w *WeightsCfg) Validate() error {
	if *w == (WeightsCfg{}) {
		return nil
	}
	if w.Adjacency < 0 || w.Utilization < 0 || w.Balance < 0 {
		return errors.New("weights must be non-negative")
	}
	sum := w.Adjacency + w.Utilization + w.Balance
	if sum <= 0 {
		return errors.New("weights must sum to a positive value")
	}
	return nil
}

// ToOptions converts a Config into solver.Options. Zero fields, including
// a zero-valued Weights, are resolved to solver.DefaultOptions by
// solver.GeneratePlans itself.
func (c *Config) ToOptions() solver.Options {
	return solver.Options{
		Seed:              c.Seed,
		TimeBudgetMs:      c.TimeBudgetMs,
		TargetPlans:       c.TargetPlans,
		MaxAttemptsPerRun: c.MaxAttemptsPerRun,
		RunsMultiplier:    c.RunsMultiplier,
		Weights: scoring.Weights{
			Adjacency:   c.Weights.Adjacency,
			Utilization: c.Weights.Utilization,
			Balance:     c.Weights.Balance,
		},
	}
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// generateSeed derives a seed from the current time when none is supplied.
func generateSeed() uint32 {
	now := time.Now().UnixNano()
	if now < 0 {
		now = -now
	}
	seed := uint32(now)
	if seed == 0 {
		seed = 1
	}
	return seed
}
