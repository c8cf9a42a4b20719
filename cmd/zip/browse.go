package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zip-arcade/internal/games/zip"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse generated levels interactively",
	Long: `Open a terminal browser that generates levels on demand.

Controls:
  n/space   - New level
  left/h    - Easier
  right/l   - Harder
  +/-       - Grow or shrink the grid
  s         - Toggle the solution path
  q/esc     - Quit`,
	Args: cobra.NoArgs,
	Run:  runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Starting difficulty (default from config)")
}

func runBrowse(_ *cobra.Command, _ []string) {
	engine, _, _ := setup()

	req := zip.GenerateRequest{Seed: flagSeed}
	if flagDifficulty != "" {
		d, err := core.ParseDifficulty(flagDifficulty)
		if err != nil {
			fatalf("Error: %v", err)
		}
		req.Difficulty = d
	}

	if err := tui.RunBrowser(engine, req); err != nil {
		fatalf("Error running browser: %v", err)
	}
}
