package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zip-arcade/internal/platform/render"
	"github.com/vovakirdan/zip-arcade/internal/platform/web"
)

var flagDecodeFormat string

var decodeCmd = &cobra.Command{
	Use:     "decode <token|url>",
	Aliases: []string{"show"},
	Short:   "Show a level from a token or share URL",
	Long: `Decode a share token, or a share URL carrying one, and draw the level.

Examples:
  zip decode <token>
  zip decode 'http://localhost:8080/play?level=...' --format json`,
	Args: cobra.ExactArgs(1),
	Run:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVarP(&flagDecodeFormat, "format", "f", "board", "Output format: board or json")
}

func runDecode(_ *cobra.Command, args []string) {
	engine, _, _ := setup()

	l, err := engine.Load(args[0])
	if err != nil {
		fatalf("Error: %v", err)
	}

	switch flagDecodeFormat {
	case "json":
		token, url := engine.Share(l)
		printJSON(web.LevelResponse{Level: web.NewLevelJSON(l), Token: token, URL: url})
	case "board":
		fmt.Println(boardString(render.DrawLevel(l)))
	default:
		fatalf("Error: unknown format %q (expected board or json)", flagDecodeFormat)
	}
}
