package tui

import "github.com/charmbracelet/lipgloss"

// tileColors maps tile values to ANSI colors. Values beyond 2048 share
// one color.
var tileColors = map[int]lipgloss.Color{
	0:    lipgloss.Color("245"), // gray for empty cell borders
	2:    lipgloss.Color("2"),   // green
	4:    lipgloss.Color("3"),   // yellow
	8:    lipgloss.Color("4"),   // blue
	16:   lipgloss.Color("5"),   // magenta
	32:   lipgloss.Color("1"),   // red
	64:   lipgloss.Color("6"),   // cyan
	128:  lipgloss.Color("10"),  // bright green
	256:  lipgloss.Color("11"),  // bright yellow
	512:  lipgloss.Color("12"),  // bright blue
	1024: lipgloss.Color("13"),  // bright magenta
	2048: lipgloss.Color("9"),   // bright red
}

var overflowTileColor = lipgloss.Color("14") // bright cyan for anything larger

// Theme holds the styles used to paint the game screen.
type Theme struct {
	Title   lipgloss.Style
	Score   lipgloss.Style
	Status  lipgloss.Style
	Overlay lipgloss.Style
	Help    lipgloss.Style

	colored bool
}

// NewTheme creates a theme. With colored=false every style is a no-op,
// for terminals with limited color support.
func NewTheme(colored bool) Theme {
	if !colored {
		plain := lipgloss.NewStyle()
		return Theme{
			Title:   plain,
			Score:   plain,
			Status:  plain,
			Overlay: plain,
			Help:    plain,
		}
	}

	return Theme{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Score:   lipgloss.NewStyle().Bold(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Overlay: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		colored: true,
	}
}

// Tile returns the style for a tile of the given value.
func (t Theme) Tile(value int) lipgloss.Style {
	if !t.colored {
		return lipgloss.NewStyle()
	}

	color, ok := tileColors[value]
	if !ok {
		color = overflowTileColor
	}
	return lipgloss.NewStyle().Foreground(color)
}
