// Package config provides YAML-based session configuration loading and
// speed-preset management for the simulator.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-life/internal/core"
)

// LifeConfig contains all configuration for a simulation session.
type LifeConfig struct {
	Grid   GridConfig  `yaml:"grid"`
	Clock  ClockConfig `yaml:"clock"`
	Colors ColorConfig `yaml:"colors"`
	Seed   SeedConfig  `yaml:"seed"`
}

// GridConfig defines the board dimensions and how large each cell renders.
type GridConfig struct {
	Width      int `yaml:"width"`       // Board width in cells
	Height     int `yaml:"height"`      // Board height in cells
	CellWidth  int `yaml:"cell_width"`  // Screen columns per cell
	CellHeight int `yaml:"cell_height"` // Screen rows per cell
}

// ClockConfig defines the frame rate and generation cadence.
type ClockConfig struct {
	TickRate    int `yaml:"tick_rate"`    // Frame ticks per second
	UpdateEvery int `yaml:"update_every"` // Frame ticks per generation advance
}

// ColorConfig holds color names resolved through core.ParseColor.
type ColorConfig struct {
	Background string `yaml:"background"`
	Grid       string `yaml:"grid"`
	Cells      string `yaml:"cells"`
}

// SeedConfig controls the randomize operation: the draw count is a factor
// in [min_factor, max_factor) multiplied by the grid width.
type SeedConfig struct {
	MinFactor int `yaml:"min_factor"`
	MaxFactor int `yaml:"max_factor"`
}

// Validate rejects configurations the simulation core may not assume.
func (c LifeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0 {
		return fmt.Errorf("config: cell size must be positive, got %dx%d", c.Grid.CellWidth, c.Grid.CellHeight)
	}
	if c.Clock.TickRate <= 0 {
		return fmt.Errorf("config: tick_rate must be positive, got %d", c.Clock.TickRate)
	}
	if c.Clock.UpdateEvery <= 0 {
		return fmt.Errorf("config: update_every must be positive, got %d", c.Clock.UpdateEvery)
	}
	if c.Seed.MinFactor < 1 || c.Seed.MaxFactor <= c.Seed.MinFactor {
		return fmt.Errorf("config: seed factors must satisfy 1 <= min < max, got [%d, %d)", c.Seed.MinFactor, c.Seed.MaxFactor)
	}
	for _, name := range []string{c.Colors.Background, c.Colors.Grid, c.Colors.Cells} {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown color %q", name)
		}
	}
	return nil
}

// SpeedPreset represents a named generation cadence.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedFixed  SpeedPreset = "fixed"
)

// UpdateEveryForPreset returns the update interval, in frame ticks, for a
// speed preset. Slow matches the reference cadence of 120 ticks per
// generation at 60 FPS.
func UpdateEveryForPreset(preset SpeedPreset) int {
	switch preset {
	case SpeedSlow:
		return 120
	case SpeedNormal:
		return 30
	case SpeedFast:
		return 6
	default:
		return 0
	}
}

// ApplySpeedPreset overrides the configured cadence with a preset.
// The fixed preset keeps the config's own update_every.
func ApplySpeedPreset(cfg *LifeConfig, preset SpeedPreset) {
	if preset == SpeedFixed || preset == "" {
		return
	}
	if every := UpdateEveryForPreset(preset); every > 0 {
		cfg.Clock.UpdateEvery = every
	}
}
