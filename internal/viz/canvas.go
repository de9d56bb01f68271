package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/seq"
	"github.com/san-kum/sortviz/internal/step"
)

// Eighth-block glyphs give each row eight levels of vertical resolution.
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// BarState is how a single bar is drawn in a frame.
type BarState int

const (
	BarDefault BarState = iota
	BarComparing
	BarSwapping
	BarPivot
	BarSorted
)

// StateOf classifies index i of f. Sorted wins over pivot, pivot over
// highlights.
func StateOf(f step.Frame, i int) BarState {
	switch {
	case f.IsSorted(i):
		return BarSorted
	case i == f.Pivot:
		return BarPivot
	case f.Swapping && f.IsHighlighted(i):
		return BarSwapping
	case f.IsHighlighted(i):
		return BarComparing
	default:
		return BarDefault
	}
}

// BarCanvas lays out one column group per element.
type BarCanvas struct {
	Width, Height int
	Grid          [][]rune
	states        []BarState
	barWidth, gap int
}

func NewBarCanvas(w, h int) *BarCanvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &BarCanvas{Width: w, Height: h}
}

// Layout returns the bar width and gap for n bars. Bars never get narrower
// than one cell; when n exceeds Width the canvas grows to fit.
func (c *BarCanvas) Layout(n int) (barWidth, gap int) {
	if n <= 0 {
		return 1, 0
	}
	per := c.Width / n
	switch {
	case per >= 3:
		return per - 1, 1
	case per >= 1:
		return per, 0
	default:
		return 1, 0
	}
}

// Draw fills the grid from the frame's values.
func (c *BarCanvas) Draw(f step.Frame) {
	n := len(f.Values)
	c.barWidth, c.gap = c.Layout(n)
	cols := n * (c.barWidth + c.gap)
	if cols < c.Width {
		cols = c.Width
	}

	c.Grid = make([][]rune, c.Height)
	for r := range c.Grid {
		c.Grid[r] = []rune(strings.Repeat(" ", cols))
	}
	c.states = make([]BarState, n)

	for i, v := range f.Values {
		c.states[i] = StateOf(f, i)
		units := v * c.Height * 8 / seq.MaxValue
		if units < 1 && v > 0 {
			units = 1
		}
		x := i * (c.barWidth + c.gap)
		for r := 0; r < c.Height; r++ {
			fill := units - (c.Height-1-r)*8
			if fill <= 0 {
				continue
			}
			if fill > 8 {
				fill = 8
			}
			for dx := 0; dx < c.barWidth; dx++ {
				c.Grid[r][x+dx] = blocks[fill]
			}
		}
	}
}

// String renders the grid without color.
func (c *BarCanvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(strings.TrimRight(string(row), " ") + "\n")
	}
	return b.String()
}

// Render renders the grid with each bar colored by its state.
func (c *BarCanvas) Render(th Theme) string {
	styles := map[BarState]lipgloss.Style{
		BarDefault:   lipgloss.NewStyle().Foreground(th.Bar),
		BarComparing: lipgloss.NewStyle().Foreground(th.Compare),
		BarSwapping:  lipgloss.NewStyle().Foreground(th.Swap),
		BarPivot:     lipgloss.NewStyle().Foreground(th.Pivot),
		BarSorted:    lipgloss.NewStyle().Foreground(th.Sorted),
	}

	var b strings.Builder
	span := c.barWidth + c.gap
	for _, row := range c.Grid {
		for i, st := range c.states {
			x := i * span
			b.WriteString(styles[st].Render(string(row[x : x+c.barWidth])))
			if c.gap > 0 {
				b.WriteString(string(row[x+c.barWidth : x+span]))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
