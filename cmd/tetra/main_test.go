package main

import (
	"testing"

	"github.com/samdwyer/tetra/internal/game"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("TETRA_SEED", "42")
	t.Setenv("TETRA_GENERATOR", game.GeneratorBSP)
	t.Setenv("TETRA_MAX_MONSTERS", "2")
	t.Setenv("TETRA_MAX_ITEMS", "0")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv() error = %v", err)
	}
	if cfg.Seed != 42 || cfg.Generator != game.GeneratorBSP {
		t.Errorf("seed/generator = %d/%q", cfg.Seed, cfg.Generator)
	}
	if cfg.MaxMonsters != 2 || cfg.MaxItems != 0 {
		t.Errorf("spawn caps = %d/%d, want 2/0", cfg.MaxMonsters, cfg.MaxItems)
	}
	if cfg.Width != game.DefaultConfig().Width {
		t.Errorf("width = %d, want default", cfg.Width)
	}
}

func TestConfigFromEnvRejects(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad seed", "TETRA_SEED", "forty"},
		{"bad count", "TETRA_MAX_ITEMS", "many"},
		{"negative count", "TETRA_MAX_MONSTERS", "-1"},
		{"unknown generator", "TETRA_GENERATOR", "caves"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := configFromEnv(); err == nil {
				t.Errorf("configFromEnv() with %s=%q succeeded", tt.key, tt.value)
			}
		})
	}
}
