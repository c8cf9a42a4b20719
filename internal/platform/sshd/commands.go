package sshd

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zip-arcade/internal/games/zip"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/platform/render"
)

// Usage is printed for help and unknown commands.
const Usage = `Zip level server

Commands:
  generate [difficulty] [rows] [cols]   Generate a level (difficulty: easy, medium, hard)
  decode <token|url>                    Show a shared level
  help                                  Show this message

Connect without a command from a terminal to browse levels interactively.
`

// errUsage marks a malformed command line.
var errUsage = errors.New("usage")

// Commands runs the non-interactive session commands.
type Commands struct {
	engine *zip.Engine
}

// NewCommands creates a command runner backed by engine.
func NewCommands(engine *zip.Engine) *Commands {
	return &Commands{engine: engine}
}

// Run executes args, writing results to out and problems to errOut.
// It returns the exit status for the session.
func (c *Commands) Run(args []string, out, errOut io.Writer, r *lipgloss.Renderer) int {
	if len(args) == 0 {
		fmt.Fprint(out, Usage)
		return 0
	}

	var err error
	switch args[0] {
	case "generate", "gen", "new":
		err = c.generate(args[1:], out, r)
	case "decode", "show":
		err = c.decode(args[1:], out, r)
	case "help", "-h", "--help":
		fmt.Fprint(out, Usage)
		return 0
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}

	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		if errors.Is(err, errUsage) {
			fmt.Fprint(errOut, "\n"+Usage)
		}
		return 1
	}
	return 0
}

// ParseGenerateArgs parses [difficulty] [rows] [cols]. A single number sets
// both sides of a square grid.
func ParseGenerateArgs(args []string) (zip.GenerateRequest, error) {
	var req zip.GenerateRequest
	if len(args) > 3 {
		return req, fmt.Errorf("%w: generate takes at most 3 arguments", errUsage)
	}

	if len(args) > 0 {
		if _, err := strconv.Atoi(args[0]); err != nil {
			d, err := core.ParseDifficulty(args[0])
			if err != nil {
				return req, err
			}
			req.Difficulty = d
			args = args[1:]
		}
	}

	nums := make([]int, 0, 2)
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return req, fmt.Errorf("%w: %q is not a grid size", errUsage, a)
		}
		nums = append(nums, n)
	}
	switch len(nums) {
	case 1:
		req.Rows, req.Cols = nums[0], nums[0]
	case 2:
		req.Rows, req.Cols = nums[0], nums[1]
	}
	return req, nil
}

func (c *Commands) generate(args []string, out io.Writer, r *lipgloss.Renderer) error {
	req, err := ParseGenerateArgs(args)
	if err != nil {
		return err
	}
	req = c.engine.Resolve(req)
	if err := c.engine.CheckSize(req.Rows, req.Cols); err != nil {
		return err
	}

	res := c.engine.Generate(req)
	token, url := c.engine.Share(res.Level)

	fmt.Fprintln(out, render.Styled(render.DrawLevel(res.Level), render.DefaultTheme(r)))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Difficulty: %s\n", req.Difficulty)
	if res.Downgraded {
		fmt.Fprintf(out, "Warning:    requested %s could not be generated; using %s\n",
			res.Requested, res.Level.Size())
	}
	fmt.Fprintf(out, "Token:      %s\n", token)
	if url != "" {
		fmt.Fprintf(out, "Share:      %s\n", url)
	}
	return nil
}

func (c *Commands) decode(args []string, out io.Writer, r *lipgloss.Renderer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: decode takes exactly one token", errUsage)
	}
	l, err := c.engine.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(out, render.Styled(render.DrawLevel(l), render.DefaultTheme(r)))
	return nil
}
