package config

import (
	_ "embed"
)

//go:embed defaults/pathviz.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:       21,
			Cols:       41,
			CellWidth:  2,
			CellHeight: 1,
		},
		Maze: MazeConfig{
			WallChance:     0.30,
			MinOpenings:    20,
			OpeningDivisor: 4,
		},
		Speed: SpeedConfig{
			Preset:    SpeedNormal,
			BatchSize: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultYAML
}
