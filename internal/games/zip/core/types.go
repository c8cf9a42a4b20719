// Package core provides the level engine for the Zip path puzzle.
// This package is UI-agnostic; all randomness comes from an injected Source.
package core

import (
	"fmt"
	"strings"
)

// Point is a (row, column) cell coordinate, 0-indexed.
type Point struct {
	R int
	C int
}

// P is a convenience constructor for Point.
func P(r, c int) Point {
	return Point{R: r, C: c}
}

// String returns the point as "(r,c)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.R, p.C)
}

// Add returns a new Point offset by (dr, dc).
func (p Point) Add(dr, dc int) Point {
	return Point{R: p.R + dr, C: p.C + dc}
}

// InBounds reports whether the point lies on a rows x cols grid.
func (p Point) InBounds(rows, cols int) bool {
	return p.R >= 0 && p.R < rows && p.C >= 0 && p.C < cols
}

// Adjacent reports whether two points share an edge (4-directional).
func (p Point) Adjacent(other Point) bool {
	dr := p.R - other.R
	dc := p.C - other.C
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr+dc == 1
}

// neighborOffsets lists the 4-directional moves: up, down, left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Orientation tells which edge of a cell a wall sits on.
type Orientation uint8

const (
	// Horizontal blocks movement from (r,c) down to (r+1,c).
	Horizontal Orientation = iota
	// Vertical blocks movement from (r,c) right to (r,c+1).
	Vertical
)

// String returns the lowercase name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Wall is a barrier between a cell and its right or lower neighbour.
type Wall struct {
	At          Point
	Orientation Orientation
}

// Other returns the cell on the far side of the wall.
func (w Wall) Other() Point {
	if w.Orientation == Vertical {
		return w.At.Add(0, 1)
	}
	return w.At.Add(1, 0)
}

// Blocks reports whether the wall separates a and b, in either direction.
func (w Wall) Blocks(a, b Point) bool {
	o := w.Other()
	return (a == w.At && b == o) || (b == w.At && a == o)
}

// InBounds reports whether both sides of the wall lie on the grid.
func (w Wall) InBounds(rows, cols int) bool {
	return w.At.InBounds(rows, cols) && w.Other().InBounds(rows, cols)
}

// String returns the wall as "(r,c)|" for vertical or "(r,c)_" for horizontal.
func (w Wall) String() string {
	if w.Orientation == Vertical {
		return w.At.String() + "|"
	}
	return w.At.String() + "_"
}

// WallBetween returns the canonical wall separating two adjacent cells.
// The second result is false if the cells are not adjacent.
func WallBetween(a, b Point) (Wall, bool) {
	if !a.Adjacent(b) {
		return Wall{}, false
	}
	if b.R < a.R || b.C < a.C {
		a, b = b, a
	}
	if a.R == b.R {
		return Wall{At: a, Orientation: Vertical}, true
	}
	return Wall{At: a, Orientation: Horizontal}, true
}

// Difficulty is a named level configuration.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// AllDifficulties returns the difficulties from easiest to hardest.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// ParseDifficulty converts a name into a Difficulty, ignoring case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case Easy:
		return Easy, nil
	case Medium:
		return Medium, nil
	case Hard:
		return Hard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Size is a grid size in cells.
type Size struct {
	Rows int
	Cols int
}

// String returns the size as "RxC".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Cells returns the number of cells in the grid.
func (s Size) Cells() int {
	return s.Rows * s.Cols
}

// LevelData is a complete puzzle definition.
// Values are never mutated after construction; a new game gets a new LevelData.
type LevelData struct {
	Rows        int
	Cols        int
	Checkpoints map[Point]int // Label per cell, dense 1..MaxNumber
	MaxNumber   int
	StartPoint  Point
	Walls       []Wall
}

// Size returns the grid dimensions of the level.
func (l LevelData) Size() Size {
	return Size{Rows: l.Rows, Cols: l.Cols}
}

// Checkpoint returns the label at p, if any.
func (l LevelData) Checkpoint(p Point) (int, bool) {
	n, ok := l.Checkpoints[p]
	return n, ok
}

// Blocked reports whether a wall separates a and b.
func (l LevelData) Blocked(a, b Point) bool {
	for _, w := range l.Walls {
		if w.Blocks(a, b) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the level.
func (l LevelData) Clone() LevelData {
	out := l
	out.Checkpoints = make(map[Point]int, len(l.Checkpoints))
	for p, n := range l.Checkpoints {
		out.Checkpoints[p] = n
	}
	out.Walls = append([]Wall(nil), l.Walls...)
	return out
}

// Equal reports whether two levels describe the same puzzle.
// Walls are compared as a set and checkpoints as a map.
func (l LevelData) Equal(other LevelData) bool {
	if l.Rows != other.Rows || l.Cols != other.Cols ||
		l.MaxNumber != other.MaxNumber || l.StartPoint != other.StartPoint {
		return false
	}

	if len(l.Checkpoints) != len(other.Checkpoints) {
		return false
	}
	for p, n := range l.Checkpoints {
		if m, ok := other.Checkpoints[p]; !ok || m != n {
			return false
		}
	}

	return sameWallSet(l.Walls, other.Walls)
}

func sameWallSet(a, b []Wall) bool {
	setA := make(map[Wall]struct{}, len(a))
	for _, w := range a {
		setA[w] = struct{}{}
	}
	setB := make(map[Wall]struct{}, len(b))
	for _, w := range b {
		if _, ok := setA[w]; !ok {
			return false
		}
		setB[w] = struct{}{}
	}
	return len(setA) == len(setB)
}
