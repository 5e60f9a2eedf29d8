// Package config provides YAML-based configuration loading for the
// pathfinding visualizer: grid geometry, maze generator tuning and
// visualization speed presets.
package config

import "time"

// Config contains all configuration for the visualizer.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Maze  MazeConfig  `yaml:"maze"`
	Speed SpeedConfig `yaml:"speed"`
}

// GridConfig defines board geometry.
type GridConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	CellWidth  int `yaml:"cell_width"`
	CellHeight int `yaml:"cell_height"`
}

// MazeConfig defines obstacle generator tuning.
type MazeConfig struct {
	WallChance     float64 `yaml:"wall_chance"`     // random scatter density, 0..1
	MinOpenings    int     `yaml:"min_openings"`    // floor on extra passages punched into a maze
	OpeningDivisor int     `yaml:"opening_divisor"` // openings scale as rows*cols/divisor
}

// SpeedConfig defines visualization pacing.
type SpeedConfig struct {
	Preset    SpeedPreset `yaml:"preset"`
	BatchSize int         `yaml:"batch_size"` // cells processed between pacing sleeps
}

// SpeedPreset represents a named visualization speed.
type SpeedPreset string

const (
	SpeedInstant SpeedPreset = "instant"
	SpeedFast    SpeedPreset = "fast"
	SpeedNormal  SpeedPreset = "normal"
	SpeedSlow    SpeedPreset = "slow"
)

// StepDelayForPreset returns the per-batch pacing delay for a preset.
func StepDelayForPreset(preset SpeedPreset) time.Duration {
	switch preset {
	case SpeedInstant:
		return 0
	case SpeedFast:
		return 2 * time.Millisecond
	case SpeedSlow:
		return 40 * time.Millisecond
	default:
		return 10 * time.Millisecond
	}
}

// NextPreset returns the next faster or slower preset.
func NextPreset(preset SpeedPreset, faster bool) SpeedPreset {
	order := []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedInstant}
	for i, p := range order {
		if p != preset {
			continue
		}
		if faster && i < len(order)-1 {
			return order[i+1]
		}
		if !faster && i > 0 {
			return order[i-1]
		}
		return preset
	}
	return SpeedNormal
}

// Normalize clamps out-of-range values to usable ones.
func (c *Config) Normalize() {
	if c.Grid.Rows < 2 {
		c.Grid.Rows = 2
	}
	if c.Grid.Cols < 2 {
		c.Grid.Cols = 2
	}
	if c.Grid.CellWidth < 1 {
		c.Grid.CellWidth = 1
	}
	if c.Grid.CellHeight < 1 {
		c.Grid.CellHeight = 1
	}
	if c.Maze.WallChance < 0 {
		c.Maze.WallChance = 0
	}
	if c.Maze.WallChance > 1 {
		c.Maze.WallChance = 1
	}
	if c.Maze.MinOpenings < 0 {
		c.Maze.MinOpenings = 0
	}
	if c.Maze.OpeningDivisor < 1 {
		c.Maze.OpeningDivisor = 1
	}
	if c.Speed.BatchSize < 1 {
		c.Speed.BatchSize = 1
	}
	switch c.Speed.Preset {
	case SpeedInstant, SpeedFast, SpeedNormal, SpeedSlow:
	default:
		c.Speed.Preset = SpeedNormal
	}
}
