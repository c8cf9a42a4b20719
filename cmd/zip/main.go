// zip generates, shares and serves Zip puzzle levels.
//
// Usage:
//
//	zip generate [--difficulty d] [--rows n] [--cols n]  - Generate a level
//	zip decode <token|url>                               - Show a shared level
//	zip stats                                            - Generation statistics per difficulty
//	zip browse                                           - Browse levels interactively
//	zip serve                                            - Start the HTTP share server
//	zip ssh                                              - Start the SSH server
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.zip-arcade/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible levels
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zip-arcade/internal/config"
	"github.com/vovakirdan/zip-arcade/internal/games/zip"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zip",
	Short: "Zip - generate and share Hamiltonian path puzzles",
	Long: `Zip builds grid puzzles with a single hidden solution path that visits
every cell, numbered checkpoints along the way and walls that block shortcuts.
Levels are shared as compact URL-safe tokens.

Available commands:
  generate - Generate a level and print its share token
  decode   - Show a level from a token or share URL
  stats    - Generation statistics per difficulty
  browse   - Browse levels interactively
  serve    - Start the HTTP share server
  ssh      - Start the SSH server

Examples:
  zip generate --difficulty hard --rows 7 --cols 7
  zip decode 'http://localhost:8080/play?level=...'
  zip serve --addr :8080
  zip ssh --addr :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
}

// setup loads configuration and builds the engine shared by all commands.
// Errors are fatal.
func setup() (*zip.Engine, config.ZipConfig, *log.Logger) {
	if err := config.LoadDotEnv(); err != nil {
		fatalf("Error loading .env: %v", err)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}
	config.ApplyEnv(&cfg)
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		fatalf("Error: invalid config: %v", err)
	}

	logger := newLogger(cfg.Log.Level)
	return zip.NewEngine(cfg, logger), cfg, logger
}

func newLogger(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "zip",
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		logger.Warn("Unknown log level, using info", "level", level)
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
