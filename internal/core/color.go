package core

// Color is the role of a canvas cell. Renderers map roles to real
// terminal styles, so drawing code never deals with escape codes.
type Color uint8

// Cell roles used by the board preview.
const (
	ColorDefault Color = iota
	ColorGrid
	ColorWall
	ColorCheckpoint
	ColorStart
	ColorEnd
	ColorPath
	ColorDim
	ColorTitle
)

var colorNames = [...]string{
	ColorDefault:    "default",
	ColorGrid:       "grid",
	ColorWall:       "wall",
	ColorCheckpoint: "checkpoint",
	ColorStart:      "start",
	ColorEnd:        "end",
	ColorPath:       "path",
	ColorDim:        "dim",
	ColorTitle:      "title",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
