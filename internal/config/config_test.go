package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	doc := []byte("grid:\n  rows: 15\n  cols: 25\n  cell_width: 2\n  cell_height: 1\nspeed:\n  preset: fast\n  batch_size: 4\n")
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Rows != 15 || cfg.Grid.Cols != 25 {
		t.Errorf("grid = %+v, expected 15x25", cfg.Grid)
	}
	if cfg.Speed.Preset != SpeedFast || cfg.Speed.BatchSize != 4 {
		t.Errorf("speed = %+v", cfg.Speed)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing explicit config path should be an error")
	}
}

func TestNormalizeClamps(t *testing.T) {
	cfg := Config{
		Grid: GridConfig{Rows: 0, Cols: -3},
		Maze: MazeConfig{WallChance: 1.5, MinOpenings: -1, OpeningDivisor: 0},
	}
	cfg.Normalize()

	if cfg.Grid.Rows != 2 || cfg.Grid.Cols != 2 {
		t.Errorf("grid clamp = %+v", cfg.Grid)
	}
	if cfg.Grid.CellWidth != 1 || cfg.Grid.CellHeight != 1 {
		t.Errorf("cell size clamp = %+v", cfg.Grid)
	}
	if cfg.Maze.WallChance != 1 || cfg.Maze.MinOpenings != 0 || cfg.Maze.OpeningDivisor != 1 {
		t.Errorf("maze clamp = %+v", cfg.Maze)
	}
	if cfg.Speed.Preset != SpeedNormal || cfg.Speed.BatchSize != 1 {
		t.Errorf("speed clamp = %+v", cfg.Speed)
	}
}

func TestStepDelayForPreset(t *testing.T) {
	tests := []struct {
		preset SpeedPreset
		want   time.Duration
	}{
		{SpeedInstant, 0},
		{SpeedFast, 2 * time.Millisecond},
		{SpeedNormal, 10 * time.Millisecond},
		{SpeedSlow, 40 * time.Millisecond},
		{SpeedPreset("bogus"), 10 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := StepDelayForPreset(tt.preset); got != tt.want {
			t.Errorf("StepDelayForPreset(%q) = %v, want %v", tt.preset, got, tt.want)
		}
	}
}

func TestNextPreset(t *testing.T) {
	tests := []struct {
		preset SpeedPreset
		faster bool
		want   SpeedPreset
	}{
		{SpeedSlow, true, SpeedNormal},
		{SpeedNormal, true, SpeedFast},
		{SpeedFast, true, SpeedInstant},
		{SpeedInstant, true, SpeedInstant},
		{SpeedInstant, false, SpeedFast},
		{SpeedSlow, false, SpeedSlow},
		{SpeedPreset(""), true, SpeedNormal},
	}
	for _, tt := range tests {
		if got := NextPreset(tt.preset, tt.faster); got != tt.want {
			t.Errorf("NextPreset(%q, %v) = %q, want %q", tt.preset, tt.faster, got, tt.want)
		}
	}
}
