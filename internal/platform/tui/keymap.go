package tui

import "github.com/charmbracelet/bubbles/key"

// BrowserKeyMap defines the key bindings for the level browser.
type BrowserKeyMap struct {
	Next     key.Binding
	Harder   key.Binding
	Easier   key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Solution key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Harder, k.Easier, k.Bigger, k.Smaller, k.Solution, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Solution},
		{k.Harder, k.Easier},
		{k.Bigger, k.Smaller},
		{k.Quit},
	}
}

// DefaultBrowserKeyMap returns default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", " ", "enter"),
			key.WithHelp("n/space", "new level"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("right/l", "harder"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("left/h", "easier"),
		),
		Bigger: key.NewBinding(
			key.WithKeys("+", "=", "up", "k"),
			key.WithHelp("+/up", "bigger"),
		),
		Smaller: key.NewBinding(
			key.WithKeys("-", "_", "down", "j"),
			key.WithHelp("-/down", "smaller"),
		),
		Solution: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "solution"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
