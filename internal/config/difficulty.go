package config

import (
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
)

// DefaultDifficulty parses the configured default preset.
func (c ZipConfig) DefaultDifficulty() (core.Difficulty, error) {
	return core.ParseDifficulty(c.Difficulty.Default)
}

// Preset returns the tuning for a difficulty.
// Unknown difficulties get the medium preset.
func (c ZipConfig) Preset(d core.Difficulty) core.DifficultyParams {
	var p PresetConfig
	switch d {
	case core.Easy:
		p = c.Difficulty.Easy
	case core.Hard:
		p = c.Difficulty.Hard
	default:
		p = c.Difficulty.Medium
	}
	return core.DifficultyParams{
		MinGap:      p.MinGap,
		MaxGap:      p.MaxGap,
		WallDensity: p.WallDensity,
	}
}

// BuildParams returns the builder parameters for a difficulty.
func (c ZipConfig) BuildParams(d core.Difficulty) core.BuildParams {
	return core.BuildParams{
		Difficulty:   c.Preset(d),
		MaxAttempts:  c.Generation.MaxAttempts,
		MaxSteps:     c.Generation.MaxSteps,
		FallbackRows: c.Grid.FallbackRows,
		FallbackCols: c.Grid.FallbackCols,
	}
}

// Fits reports whether a requested grid is within the accepted limits.
func (c ZipConfig) Fits(rows, cols int) bool {
	return rows >= 1 && cols >= 1 && rows <= c.Grid.MaxRows && cols <= c.Grid.MaxCols
}
