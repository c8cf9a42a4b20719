package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/zip.yaml
var defaultZipYAML []byte

// DefaultZipConfig returns the default Zip configuration.
func DefaultZipConfig() ZipConfig {
	return ZipConfig{
		Grid: GridConfig{
			Rows:         6,
			Cols:         6,
			FallbackRows: 4,
			FallbackCols: 4,
			MaxRows:      12,
			MaxCols:      12,
		},
		Generation: GenerationConfig{
			MaxAttempts: 20,
			MaxSteps:    500000,
		},
		Difficulty: DifficultyConfig{
			Default: "medium",
			Easy:    PresetConfig{MinGap: 3, MaxGap: 5, WallDensity: 0.10},
			Medium:  PresetConfig{MinGap: 5, MaxGap: 9, WallDensity: 0.30},
			Hard:    PresetConfig{MinGap: 8, MaxGap: 15, WallDensity: 0.60},
		},
		Share: ShareConfig{
			BaseURL: "http://localhost:8080/play",
		},
		Server: ServerConfig{
			HTTP: HTTPConfig{
				Address:     ":8080",
				CORSOrigins: []string{"*"},
				RateLimit: RateLimitConfig{
					Enabled:           true,
					RequestsPerSecond: 5,
					Burst:             10,
				},
			},
			SSH: SSHConfig{
				Address:     ":2222",
				HostKey:     ".ssh/zip_ed25519",
				IdleTimeout: 2 * time.Minute,
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultZipYAML
}
