package render

import (
	"fmt"

	"github.com/vovakirdan/zip-arcade/internal/core"
	zipcore "github.com/vovakirdan/zip-arcade/internal/games/zip/core"
)

// Board layout. Each grid cell is cellW characters wide and one line high,
// with a one-character separator column and row between cells.
const (
	cellW   = 3
	strideX = cellW + 1
	strideY = 2
	headerH = 1
)

// BoardSize returns the canvas size needed to draw a rows x cols level.
func BoardSize(rows, cols int) (width, height int) {
	return cols*strideX + 1, rows*strideY + 1 + headerH
}

// cellOrigin returns the canvas position of the first character of cell p.
func cellOrigin(p zipcore.Point) (x, y int) {
	return p.C*strideX + 1, headerH + p.R*strideY + 1
}

// DrawLevel draws a level: a header line, the grid frame, walls as heavy
// lines and the numbered checkpoints.
func DrawLevel(l zipcore.LevelData) *core.Canvas {
	return DrawSolution(l, nil)
}

// DrawSolution draws a level with path overlaid on its empty cells and
// the separators it crosses. A nil path draws the bare level.
func DrawSolution(l zipcore.LevelData, path []zipcore.Point) *core.Canvas {
	header := fmt.Sprintf("Zip %s · %d checkpoints · %d walls", l.Size(), l.MaxNumber, len(l.Walls))

	w, h := BoardSize(l.Rows, l.Cols)
	c := core.NewCanvas(core.Max(w, len([]rune(header))), h)
	c.DrawText(0, 0, header, core.ColorTitle)

	frame := core.NewRect(0, headerH, w, h-headerH)
	drawGrid(c, frame, l.Rows, l.Cols)
	drawPath(c, path)

	for _, wall := range l.Walls {
		drawWall(c, wall)
	}
	for p, n := range l.Checkpoints {
		drawCheckpoint(c, l, p, n)
	}
	return c
}

func drawGrid(c *core.Canvas, frame core.Rect, rows, cols int) {
	c.DrawBox(frame, core.ColorGrid)
	for r := 1; r < rows; r++ {
		for col := 1; col < cols; col++ {
			c.Set(col*strideX, headerH+r*strideY, '·', core.ColorDim)
		}
	}
}

func drawWall(c *core.Canvas, w zipcore.Wall) {
	x, y := cellOrigin(w.At)
	switch w.Orientation {
	case zipcore.Vertical:
		c.Set(x+cellW, y, '┃', core.ColorWall)
	case zipcore.Horizontal:
		c.DrawHLine(x, y+1, cellW, '━', core.ColorWall)
	}
}

func drawCheckpoint(c *core.Canvas, l zipcore.LevelData, p zipcore.Point, n int) {
	color := core.ColorCheckpoint
	switch {
	case p == l.StartPoint:
		color = core.ColorStart
	case n == l.MaxNumber:
		color = core.ColorEnd
	}
	label := fmt.Sprintf("%d", n)
	x, y := cellOrigin(p)
	c.DrawText(x+(cellW-len(label))/2, y, label, color)
}

func drawPath(c *core.Canvas, path []zipcore.Point) {
	for i, p := range path {
		x, y := cellOrigin(p)
		c.Set(x+cellW/2, y, '•', core.ColorPath)
		if i == 0 {
			continue
		}
		prev := path[i-1]
		px, py := cellOrigin(prev)
		switch {
		case prev.R == p.R:
			c.Set(core.Max(x, px)-1, y, '─', core.ColorPath)
			c.DrawHLine(core.Min(x, px)+cellW/2+1, y, cellW/2, '─', core.ColorPath)
			c.DrawHLine(core.Max(x, px), y, cellW/2, '─', core.ColorPath)
		case prev.C == p.C:
			c.Set(x+cellW/2, core.Max(y, py)-1, '│', core.ColorPath)
		}
	}
}
