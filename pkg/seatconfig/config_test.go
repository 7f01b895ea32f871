package seatconfig

import (
	"strings"
	"testing"
)

func TestLoadConfigFromBytes_DefaultsAndOverrides(t *testing.T) {
	data := []byte(`
seed: 42
targetPlans: 5
weights:
  adjacency: 0.5
  utilization: 0.4
  balance: 0.1
`)
	cfg, err := LoadConfigFromBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.TargetPlans != 5 {
		t.Fatalf("expected targetPlans 5, got %d", cfg.TargetPlans)
	}
	if cfg.TimeBudgetMs != 0 {
		t.Fatalf("expected unset timeBudgetMs to stay zero, got %d", cfg.TimeBudgetMs)
	}

	opts := cfg.ToOptions()
	if opts.Seed != 42 || opts.TargetPlans != 5 {
		t.Fatalf("expected ToOptions to carry seed/targetPlans through, got %+v", opts)
	}
	if opts.Weights.Adjacency != 0.5 {
		t.Fatalf("expected weights to carry through, got %+v", opts.Weights)
	}
}

func TestLoadConfigFromBytes_SeedAutoGeneratedWhenZero(t *testing.T) {
	cfg, err := LoadConfigFromBytes([]byte(`targetPlans: 3`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed == 0 {
		t.Fatalf("expected a non-zero auto-generated seed")
	}
}

func TestValidate_RejectsNegativeFields(t *testing.T) {
	cfg := &Config{TimeBudgetMs: -1}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for negative timeBudgetMs")
	}
}

func TestValidate_RejectsNegativeWeights(t *testing.T) {
	cfg := &Config{Weights: WeightsCfg{Adjacency: -0.1, Utilization: 0.5, Balance: 0.6}}
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for negative weight")
	}
}

func TestValidate_AcceptsZeroWeightsAsDefaultSentinel(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected zero-valued config to validate, got %v", err)
	}
}

func TestToYAML_RoundTrips(t *testing.T) {
	cfg := &Config{Seed: 7, TargetPlans: 12}
	out, err := cfg.ToYAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(out), "seed: 7") {
		t.Fatalf("expected seed in YAML output, got:\n%s", out)
	}

	roundTripped, err := LoadConfigFromBytes(out)
	if err != nil {
		t.Fatalf("unexpected error round-tripping: %v", err)
	}
	if roundTripped.TargetPlans != 12 {
		t.Fatalf("expected targetPlans to round-trip, got %d", roundTripped.TargetPlans)
	}
}

func TestLoadConfig_MissingFileReturnsError(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/path/seatyr.yaml"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
