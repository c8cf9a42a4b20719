package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvHTTPAddr    = "ZIP_HTTP_ADDR"
	EnvSSHAddr     = "ZIP_SSH_ADDR"
	EnvShareURL    = "ZIP_SHARE_URL"
	EnvLogLevel    = "ZIP_LOG_LEVEL"
	EnvCORSOrigins = "ZIP_CORS_ORIGINS" // Comma-separated
)

// LoadDotEnv loads variables from the given .env files (default ./.env)
// without overriding the real environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	err := godotenv.Load(files...)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from the process environment.
func ApplyEnv(cfg *ZipConfig) {
	applyEnv(cfg, os.LookupEnv)
}

func applyEnv(cfg *ZipConfig, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvHTTPAddr); ok && v != "" {
		cfg.Server.HTTP.Address = v
	}
	if v, ok := lookup(EnvSSHAddr); ok && v != "" {
		cfg.Server.SSH.Address = v
	}
	if v, ok := lookup(EnvShareURL); ok && v != "" {
		cfg.Share.BaseURL = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvCORSOrigins); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Server.HTTP.CORSOrigins = origins
	}
}
