package core

import (
	"strings"
)

// Cell is one character of the canvas with its color role.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Canvas is a 2D buffer of colored runes.
// Drawing is clipped to the canvas bounds; out-of-range writes are ignored.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a blank canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		width:  Max(width, 0),
		height: Max(height, 0),
	}
	c.cells = make([][]Cell, c.height)
	for y := range c.cells {
		c.cells[y] = make([]Cell, c.width)
	}
	c.Clear()
	return c
}

// Width returns the canvas width in characters.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in characters.
func (c *Canvas) Height() int {
	return c.height
}

// Bounds returns the canvas area.
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Clear fills the canvas with uncolored spaces.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = blank
		}
	}
}

// Set places a rune at the given position.
func (c *Canvas) Set(x, y int, r rune, color Color) {
	if !c.Bounds().Contains(x, y) {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Color: color}
}

// Get returns the cell at the given position, or a blank cell when out of bounds.
func (c *Canvas) Get(x, y int) Cell {
	if !c.Bounds().Contains(x, y) {
		return blank
	}
	return c.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
func (c *Canvas) DrawText(x, y int, text string, color Color) {
	i := 0
	for _, r := range text {
		c.Set(x+i, y, r, color)
		i++
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (c *Canvas) DrawHLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x+i, y, r, color)
	}
}

// DrawVLine draws a vertical line from (x, y) with the given length.
func (c *Canvas) DrawVLine(x, y, length int, r rune, color Color) {
	for i := 0; i < length; i++ {
		c.Set(x, y+i, r, color)
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (c *Canvas) DrawBox(r Rect, color Color) {
	if r.W < 2 || r.H < 2 {
		return
	}

	c.Set(r.X, r.Y, '┌', color)
	c.Set(r.Right()-1, r.Y, '┐', color)
	c.Set(r.X, r.Bottom()-1, '└', color)
	c.Set(r.Right()-1, r.Bottom()-1, '┘', color)

	c.DrawHLine(r.X+1, r.Y, r.W-2, '─', color)
	c.DrawHLine(r.X+1, r.Bottom()-1, r.W-2, '─', color)
	c.DrawVLine(r.X, r.Y+1, r.H-2, '│', color)
	c.DrawVLine(r.Right()-1, r.Y+1, r.H-2, '│', color)
}

// Row returns the runes of row y as a string, without colors.
func (c *Canvas) Row(y int) string {
	if y < 0 || y >= c.height {
		return strings.Repeat(" ", c.width)
	}
	var sb strings.Builder
	for _, cell := range c.cells[y] {
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// Span is a run of adjacent cells sharing a color.
type Span struct {
	Text  string
	Color Color
}

// Spans splits row y into runs of equal color, for styled output.
func (c *Canvas) Spans(y int) []Span {
	if c.Bounds().Empty() || !c.Bounds().Contains(0, y) {
		return nil
	}

	var spans []Span
	var sb strings.Builder
	cur := c.cells[y][0].Color
	for _, cell := range c.cells[y] {
		if cell.Color != cur {
			spans = append(spans, Span{Text: sb.String(), Color: cur})
			sb.Reset()
			cur = cell.Color
		}
		sb.WriteRune(cell.Rune)
	}
	return append(spans, Span{Text: sb.String(), Color: cur})
}

// String converts the canvas to plain text, one line per row.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height + c.height)

	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(c.Row(y))
	}
	return sb.String()
}
