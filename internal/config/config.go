// Package config provides YAML-based configuration loading for blockfall.
package config

import "fmt"

// BlockfallConfig contains all configuration for the game.
type BlockfallConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the well dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity clock, in milliseconds.
type TimingConfig struct {
	FallInterval int `yaml:"fall_interval"` // Accumulated time per gravity step
	FallResidual int `yaml:"fall_residual"` // Accumulator value after a step
}

// DisplayConfig defines presentation options.
type DisplayConfig struct {
	GridDots bool `yaml:"grid_dots"` // Draw empty cells as dim dots
}

// Validate checks that the configuration can build a playable well.
func (c BlockfallConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("config: board size must be positive, got %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Width < 5 {
		return fmt.Errorf("config: board width %d is below 5", c.Board.Width)
	}
	if c.Board.Height < 2 {
		return fmt.Errorf("config: board height %d is below 2", c.Board.Height)
	}
	if c.Timing.FallInterval <= 0 {
		return fmt.Errorf("config: fall_interval must be positive, got %d", c.Timing.FallInterval)
	}
	if c.Timing.FallResidual < 0 || c.Timing.FallResidual >= c.Timing.FallInterval {
		return fmt.Errorf("config: fall_residual %d outside [0, %d)", c.Timing.FallResidual, c.Timing.FallInterval)
	}
	return nil
}
