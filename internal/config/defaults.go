package config

import (
	_ "embed"
)

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultLifeConfig returns the default session configuration.
// Cadence matches the reference behavior: 60 ticks per second with a
// generation advance every 120 ticks.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Grid: GridConfig{
			Width:      40,
			Height:     20,
			CellWidth:  2,
			CellHeight: 1,
		},
		Clock: ClockConfig{
			TickRate:    60,
			UpdateEvery: 120,
		},
		Colors: ColorConfig{
			Background: "default",
			Grid:       "gray",
			Cells:      "green",
		},
		Seed: SeedConfig{
			MinFactor: 4,
			MaxFactor: 10,
		},
	}
}
