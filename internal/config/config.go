// Package config provides YAML-based configuration loading for the Zip
// generator, its share servers and the CLI.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ZipConfig contains all configuration for the Zip puzzle service.
type ZipConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Generation GenerationConfig `yaml:"generation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Share      ShareConfig      `yaml:"share"`
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
}

// GridConfig defines the default and accepted grid sizes.
type GridConfig struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	FallbackRows int `yaml:"fallback_rows"` // Grid used when the requested size keeps failing
	FallbackCols int `yaml:"fallback_cols"`
	MaxRows      int `yaml:"max_rows"` // Largest grid accepted from users
	MaxCols      int `yaml:"max_cols"`
}

// GenerationConfig bounds the path search.
type GenerationConfig struct {
	MaxAttempts int `yaml:"max_attempts"` // Attempts per grid size
	MaxSteps    int `yaml:"max_steps"`    // Search steps per attempt
}

// DifficultyConfig holds the default preset and the tuning of each preset.
type DifficultyConfig struct {
	Default string       `yaml:"default"` // "easy", "medium" or "hard"
	Easy    PresetConfig `yaml:"easy"`
	Medium  PresetConfig `yaml:"medium"`
	Hard    PresetConfig `yaml:"hard"`
}

// PresetConfig tunes checkpoint spacing and wall density for one difficulty.
type PresetConfig struct {
	MinGap      int     `yaml:"min_gap"`
	MaxGap      int     `yaml:"max_gap"`
	WallDensity float64 `yaml:"wall_density"` // 0.0 = no walls, 1.0 = every candidate
}

// ShareConfig configures share links.
type ShareConfig struct {
	BaseURL string `yaml:"base_url"`
}

// ServerConfig groups the HTTP and SSH share servers.
type ServerConfig struct {
	HTTP HTTPConfig `yaml:"http"`
	SSH  SSHConfig  `yaml:"ssh"`
}

// HTTPConfig configures the HTTP share server.
type HTTPConfig struct {
	Address     string          `yaml:"address"`
	CORSOrigins []string        `yaml:"cors_origins"`
	RateLimit   RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig configures the per-client rate limiter.
type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
	TrustProxy        bool    `yaml:"trust_proxy"` // Read the client IP from X-Forwarded-For
}

// SSHConfig configures the SSH share server.
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Validate reports the first unusable setting.
func (c ZipConfig) Validate() error {
	if c.Grid.Rows < 1 || c.Grid.Cols < 1 {
		return fmt.Errorf("grid: size %dx%d must be positive", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.FallbackRows < 1 || c.Grid.FallbackCols < 1 {
		return fmt.Errorf("grid: fallback size %dx%d must be positive", c.Grid.FallbackRows, c.Grid.FallbackCols)
	}
	if c.Grid.MaxRows < c.Grid.Rows || c.Grid.MaxCols < c.Grid.Cols {
		return fmt.Errorf("grid: max size %dx%d is smaller than default %dx%d",
			c.Grid.MaxRows, c.Grid.MaxCols, c.Grid.Rows, c.Grid.Cols)
	}
	if c.Generation.MaxAttempts < 1 {
		return errors.New("generation: max_attempts must be at least 1")
	}
	if c.Generation.MaxSteps < 1 {
		return errors.New("generation: max_steps must be at least 1")
	}
	if _, err := c.DefaultDifficulty(); err != nil {
		return fmt.Errorf("difficulty: %w", err)
	}
	for name, p := range map[string]PresetConfig{
		"easy":   c.Difficulty.Easy,
		"medium": c.Difficulty.Medium,
		"hard":   c.Difficulty.Hard,
	} {
		if err := p.validate(); err != nil {
			return fmt.Errorf("difficulty.%s: %w", name, err)
		}
	}
	if rl := c.Server.HTTP.RateLimit; rl.Enabled && (rl.RequestsPerSecond <= 0 || rl.Burst < 1) {
		return errors.New("server.http.rate_limit: requests_per_second and burst must be positive")
	}
	return nil
}

func (p PresetConfig) validate() error {
	if p.MinGap < 1 {
		return fmt.Errorf("min_gap %d must be at least 1", p.MinGap)
	}
	if p.MaxGap < p.MinGap {
		return fmt.Errorf("max_gap %d is below min_gap %d", p.MaxGap, p.MinGap)
	}
	if p.WallDensity < 0 || p.WallDensity > 1 {
		return fmt.Errorf("wall_density %g outside [0, 1]", p.WallDensity)
	}
	return nil
}
