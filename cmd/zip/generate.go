package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zip-arcade/internal/core"
	"github.com/vovakirdan/zip-arcade/internal/games/zip"
	zipcore "github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/platform/render"
	"github.com/vovakirdan/zip-arcade/internal/platform/web"
)

var (
	flagDifficulty string
	flagRows       int
	flagCols       int
	flagFormat     string
	flagSolution   bool
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen", "new"},
	Short:   "Generate a level",
	Long: `Generate a level and print it with its share token.

Formats:
  board  - Draw the grid followed by the token and share URL (default)
  token  - Print only the token
  json   - Print the level, token and share URL as JSON

Examples:
  zip generate
  zip generate --difficulty easy --rows 5 --cols 5
  zip generate --seed 42 --solution
  zip generate --format token`,
	Args: cobra.NoArgs,
	Run:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&flagDifficulty, "difficulty", "d", "", "Difficulty: easy, medium or hard (default from config)")
	generateCmd.Flags().IntVar(&flagRows, "rows", 0, "Grid rows (default from config)")
	generateCmd.Flags().IntVar(&flagCols, "cols", 0, "Grid columns (default from config)")
	generateCmd.Flags().StringVarP(&flagFormat, "format", "f", "board", "Output format: board, token or json")
	generateCmd.Flags().BoolVar(&flagSolution, "solution", false, "Overlay the solution path on the board")
}

func runGenerate(_ *cobra.Command, _ []string) {
	engine, _, logger := setup()

	req := zip.GenerateRequest{Rows: flagRows, Cols: flagCols, Seed: flagSeed}
	if flagDifficulty != "" {
		d, err := zipcore.ParseDifficulty(flagDifficulty)
		if err != nil {
			fatalf("Error: %v", err)
		}
		req.Difficulty = d
	}
	req = engine.Resolve(req)
	if err := engine.CheckSize(req.Rows, req.Cols); err != nil {
		fatalf("Error: %v", err)
	}

	res := engine.Generate(req)
	token, url := engine.Share(res.Level)

	switch flagFormat {
	case "token":
		fmt.Println(token)
	case "json":
		printJSON(web.LevelResponse{
			Level:      web.NewLevelJSON(res.Level),
			Token:      token,
			URL:        url,
			Downgraded: res.Downgraded,
		})
	case "board":
		var canvas *core.Canvas
		if flagSolution {
			canvas = render.DrawSolution(res.Level, res.Path)
		} else {
			canvas = render.DrawLevel(res.Level)
		}
		fmt.Println(boardString(canvas))
		fmt.Println()
		fmt.Printf("Difficulty: %s\n", req.Difficulty)
		if res.Downgraded {
			logger.Warn("Requested grid could not be generated",
				"requested", res.Requested.String(), "used", res.Level.Size().String())
		}
		fmt.Printf("Token:      %s\n", token)
		if url != "" {
			fmt.Printf("Share:      %s\n", url)
		}
	default:
		fatalf("Error: unknown format %q (expected board, token or json)", flagFormat)
	}
}

// boardString styles the board only when stdout is a terminal.
func boardString(c *core.Canvas) string {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return render.Styled(c, render.DefaultTheme(nil))
	}
	return render.Plain(c)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatalf("Error: %v", err)
	}
}
