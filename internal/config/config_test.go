package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultLifeConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	loaded, err := LoadLife("")
	if err != nil {
		t.Fatalf("LoadLife() failed: %v", err)
	}
	// The embedded YAML and the hardcoded fallback must agree; loader
	// search may also pick up a user config, in which case only
	// validity is checked.
	if err := loaded.Validate(); err != nil {
		t.Errorf("Loaded config should validate, got: %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LifeConfig)
	}{
		{"zero width", func(c *LifeConfig) { c.Grid.Width = 0 }},
		{"negative height", func(c *LifeConfig) { c.Grid.Height = -5 }},
		{"zero cell width", func(c *LifeConfig) { c.Grid.CellWidth = 0 }},
		{"zero tick rate", func(c *LifeConfig) { c.Clock.TickRate = 0 }},
		{"zero update interval", func(c *LifeConfig) { c.Clock.UpdateEvery = 0 }},
		{"seed max below min", func(c *LifeConfig) { c.Seed.MaxFactor = c.Seed.MinFactor }},
		{"seed min zero", func(c *LifeConfig) { c.Seed.MinFactor = 0 }},
		{"unknown color", func(c *LifeConfig) { c.Colors.Cells = "chartreuse" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLifeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}
}

func TestLoadCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "life.yaml")
	content := []byte(`
grid:
  width: 25
  height: 15
  cell_width: 1
  cell_height: 1
clock:
  tick_rate: 30
  update_every: 10
colors:
  background: default
  grid: blue
  cells: bright-yellow
seed:
  min_factor: 2
  max_factor: 5
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadLife(path)
	if err != nil {
		t.Fatalf("LoadLife(%s) failed: %v", path, err)
	}

	if cfg.Grid.Width != 25 || cfg.Grid.Height != 15 {
		t.Errorf("Grid = %dx%d, expected 25x15", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Clock.UpdateEvery != 10 {
		t.Errorf("UpdateEvery = %d, expected 10", cfg.Clock.UpdateEvery)
	}
	if cfg.Colors.Cells != "bright-yellow" {
		t.Errorf("Cells color = %q, expected bright-yellow", cfg.Colors.Cells)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Custom config should validate, got: %v", err)
	}
}

func TestLoadMissingCustomConfigFails(t *testing.T) {
	if _, err := LoadLife(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Explicit missing config path should be an error")
	}
}

func TestSpeedPresets(t *testing.T) {
	tests := []struct {
		preset   SpeedPreset
		expected int
	}{
		{SpeedSlow, 120},
		{SpeedNormal, 30},
		{SpeedFast, 6},
	}

	for _, tc := range tests {
		cfg := DefaultLifeConfig()
		cfg.Clock.UpdateEvery = 77
		ApplySpeedPreset(&cfg, tc.preset)
		if cfg.Clock.UpdateEvery != tc.expected {
			t.Errorf("Preset %q: UpdateEvery = %d, expected %d", tc.preset, cfg.Clock.UpdateEvery, tc.expected)
		}
	}

	// Fixed and empty presets keep the configured cadence
	for _, preset := range []SpeedPreset{SpeedFixed, ""} {
		cfg := DefaultLifeConfig()
		cfg.Clock.UpdateEvery = 77
		ApplySpeedPreset(&cfg, preset)
		if cfg.Clock.UpdateEvery != 77 {
			t.Errorf("Preset %q should keep the configured cadence, got %d", preset, cfg.Clock.UpdateEvery)
		}
	}
}
