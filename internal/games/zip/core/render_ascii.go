package core

import (
	"fmt"
	"strings"
)

// RenderASCII creates a plain-text picture of a level.
// This is used for debugging, testing (golden outputs), and simple visualization.
//
// Format:
//   - Each cell is three characters: the label right-aligned, or " . "
//   - '|' between two cells is a vertical wall
//   - "---" under a cell is a horizontal wall below it
//   - Trailing spaces are trimmed from every line
func RenderASCII(l LevelData) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Zip %dx%d | Checkpoints: %d | Walls: %d\n",
		l.Rows, l.Cols, l.MaxNumber, len(l.Walls)))

	walls := make(map[Wall]bool, len(l.Walls))
	for _, w := range l.Walls {
		walls[w] = true
	}

	for r := 0; r < l.Rows; r++ {
		var line strings.Builder
		for c := 0; c < l.Cols; c++ {
			line.WriteString(cellText(l, P(r, c)))
			if c < l.Cols-1 {
				if walls[Wall{At: P(r, c), Orientation: Vertical}] {
					line.WriteByte('|')
				} else {
					line.WriteByte(' ')
				}
			}
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")

		if r == l.Rows-1 {
			break
		}

		var under strings.Builder
		for c := 0; c < l.Cols; c++ {
			if walls[Wall{At: P(r, c), Orientation: Horizontal}] {
				under.WriteString("---")
			} else {
				under.WriteString("   ")
			}
			if c < l.Cols-1 {
				under.WriteByte(' ')
			}
		}
		if trimmed := strings.TrimRight(under.String(), " "); trimmed != "" {
			sb.WriteString(trimmed)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

func cellText(l LevelData, p Point) string {
	if n, ok := l.Checkpoints[p]; ok {
		return fmt.Sprintf("%2d ", n)
	}
	return " . "
}

// RenderPath renders a path as a compact list of points, for debugging.
func RenderPath(path []Point) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
