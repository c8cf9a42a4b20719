package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	canvas "github.com/vovakirdan/zip-arcade/internal/core"
	"github.com/vovakirdan/zip-arcade/internal/games/zip"
	"github.com/vovakirdan/zip-arcade/internal/games/zip/core"
	"github.com/vovakirdan/zip-arcade/internal/platform/render"
)

// minGridSide is the smallest grid the browser offers.
const minGridSide = 2

// BrowserModel is the Bubble Tea model that shows generated levels one at
// a time. It previews levels and their share links; it does not play them.
type BrowserModel struct {
	engine   *zip.Engine
	req      zip.GenerateRequest
	result   core.Result
	token    string
	url      string
	solution bool

	theme  render.Theme
	styles browserStyles
	keys   BrowserKeyMap
	help   help.Model
	width  int
	height int

	quitting bool
}

type browserStyles struct {
	label lipgloss.Style
	value lipgloss.Style
	warn  lipgloss.Style
	help  lipgloss.Style
}

// NewBrowserModel creates a browser and generates its first level.
// The renderer decides the color profile; pass the session renderer for SSH.
func NewBrowserModel(engine *zip.Engine, r *lipgloss.Renderer, req zip.GenerateRequest) BrowserModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	h := help.New()
	h.ShowAll = false

	m := BrowserModel{
		engine: engine,
		req:    engine.Resolve(req),
		theme:  render.DefaultTheme(r),
		styles: browserStyles{
			label: r.NewStyle().Foreground(lipgloss.Color("245")),
			value: r.NewStyle().Foreground(lipgloss.Color("255")),
			warn:  r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
			help:  r.NewStyle().Foreground(lipgloss.Color("241")),
		},
		keys: DefaultBrowserKeyMap(),
		help: h,
	}
	m.generate()
	// Only the first level honors a fixed seed.
	m.req.Seed = 0
	return m
}

// Level returns the level on screen.
func (m BrowserModel) Level() core.LevelData {
	return m.result.Level
}

// Request returns the parameters used for the next level.
func (m BrowserModel) Request() zip.GenerateRequest {
	return m.req
}

// Token returns the share token of the level on screen.
func (m BrowserModel) Token() string {
	return m.token
}

func (m *BrowserModel) generate() {
	m.result = m.engine.Generate(m.req)
	m.token, m.url = m.engine.Share(m.result.Level)
}

// Init initializes the browser model.
func (m BrowserModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the browser.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			m.generate()

		case key.Matches(msg, m.keys.Harder):
			m.req.Difficulty = stepDifficulty(m.req.Difficulty, 1)
			m.generate()

		case key.Matches(msg, m.keys.Easier):
			m.req.Difficulty = stepDifficulty(m.req.Difficulty, -1)
			m.generate()

		case key.Matches(msg, m.keys.Bigger):
			if m.resize(1) {
				m.generate()
			}

		case key.Matches(msg, m.keys.Smaller):
			if m.resize(-1) {
				m.generate()
			}

		case key.Matches(msg, m.keys.Solution):
			m.solution = !m.solution
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// resize grows or shrinks the grid by delta on both sides, clamped to the
// configured range. Returns false when the size did not change.
func (m *BrowserModel) resize(delta int) bool {
	grid := m.engine.Config().Grid
	rows := canvas.Clamp(m.req.Rows+delta, minGridSide, grid.MaxRows)
	cols := canvas.Clamp(m.req.Cols+delta, minGridSide, grid.MaxCols)
	if rows == m.req.Rows && cols == m.req.Cols {
		return false
	}
	m.req.Rows, m.req.Cols = rows, cols
	return true
}

// stepDifficulty moves through easy, medium and hard, wrapping around.
func stepDifficulty(d core.Difficulty, step int) core.Difficulty {
	all := core.AllDifficulties()
	i := 0
	for j, x := range all {
		if x == d {
			i = j
		}
	}
	i = (i + step + len(all)) % len(all)
	return all[i]
}

// View renders the browser.
func (m BrowserModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(render.Styled(m.board(), m.theme))
	b.WriteString("\n\n")

	b.WriteString(m.field("Difficulty", string(m.req.Difficulty)))
	b.WriteString(m.field("Size", m.result.Level.Size().String()))
	if m.result.Downgraded {
		b.WriteString(m.styles.warn.Render(fmt.Sprintf("Requested %s could not be generated; showing %s",
			m.result.Requested, m.result.Level.Size())))
		b.WriteString("\n")
	}
	b.WriteString(m.field("Token", m.token))
	if m.url != "" {
		b.WriteString(m.field("Share", m.url))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	return b.String()
}

// board draws the current level, with the solution path when toggled on.
func (m BrowserModel) board() *canvas.Canvas {
	var path []core.Point
	if m.solution {
		path = m.result.Path
	}
	return render.DrawSolution(m.result.Level, path)
}

func (m BrowserModel) field(label, value string) string {
	return m.styles.label.Render(fmt.Sprintf("%-11s", label+":")) + m.styles.value.Render(value) + "\n"
}

// RunBrowser runs the browser in the current terminal until the user quits.
func RunBrowser(engine *zip.Engine, req zip.GenerateRequest) error {
	p := tea.NewProgram(NewBrowserModel(engine, nil, req), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
