// Package render draws Zip levels onto a canvas and turns the canvas into
// plain or lipgloss-styled terminal text.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/zip-arcade/internal/core"
)

// Theme contains the visual styles of the board preview.
type Theme struct {
	Default    lipgloss.Style
	Grid       lipgloss.Style
	Wall       lipgloss.Style
	Checkpoint lipgloss.Style
	Start      lipgloss.Style
	End        lipgloss.Style
	Path       lipgloss.Style
	Dim        lipgloss.Style
	Title      lipgloss.Style
}

// DefaultTheme returns the default theme bound to a renderer.
// A nil renderer uses the lipgloss default (stdout).
func DefaultTheme(r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Theme{
		Default:    r.NewStyle(),
		Grid:       r.NewStyle().Foreground(lipgloss.Color("240")),           // Dim gray
		Wall:       r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true), // Orange
		Checkpoint: r.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Start:      r.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),  // Lime green
		End:        r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true), // Hot pink
		Path:       r.NewStyle().Foreground(lipgloss.Color("51")),             // Bright cyan
		Dim:        r.NewStyle().Foreground(lipgloss.Color("238")),
		Title:      r.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	}
}

// Style returns the style for a cell role.
func (t Theme) Style(c core.Color) lipgloss.Style {
	switch c {
	case core.ColorGrid:
		return t.Grid
	case core.ColorWall:
		return t.Wall
	case core.ColorCheckpoint:
		return t.Checkpoint
	case core.ColorStart:
		return t.Start
	case core.ColorEnd:
		return t.End
	case core.ColorPath:
		return t.Path
	case core.ColorDim:
		return t.Dim
	case core.ColorTitle:
		return t.Title
	default:
		return t.Default
	}
}
