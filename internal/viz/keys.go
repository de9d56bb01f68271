package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start     key.Binding
	Pause     key.Binding
	Stop      key.Binding
	Generate  key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Faster    key.Binding
	Slower    key.Binding
	Algorithm key.Binding
	Theme     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Start:     key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "sort")),
	Pause:     key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "pause")),
	Stop:      key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "stop")),
	Generate:  key.NewBinding(key.WithKeys("g", "r"), key.WithHelp("g", "new array")),
	Grow:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "size")),
	Shrink:    key.NewBinding(key.WithKeys("-", "_")),
	Faster:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("←/→", "speed")),
	Slower:    key.NewBinding(key.WithKeys("left", "h")),
	Algorithm: key.NewBinding(key.WithKeys("tab", "a"), key.WithHelp("tab", "algorithm")),
	Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Generate, k.Algorithm, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Stop},
		{k.Generate, k.Grow, k.Faster},
		{k.Algorithm, k.Theme, k.Help, k.Quit},
	}
}
