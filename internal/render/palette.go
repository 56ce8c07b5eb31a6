// Package render turns dashboard state into terminal text with lipgloss.
// Every function here is pure: it reads the values it is given and returns
// a string, so the TUI and the CLI share one look.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

// darkColors replaces the light surface colors when the dark theme is on.
// Custom colors still win over these.
var darkColors = types.Colors{
	Primary: types.DefaultColors.Primary,
	Bg:      "#1a1a1a",
	CardBg:  "#242424",
	Text:    "#f5f5f5",
}

// Palette holds the resolved colors and the styles built from them.
type Palette struct {
	Colors types.Colors
	Dark   bool

	Title  lipgloss.Style
	Accent lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Done   lipgloss.Style
	Cursor lipgloss.Style
	Badge  lipgloss.Style
	Card   lipgloss.Style
	Notice lipgloss.Style
}

// NewPalette builds a palette for theme with the custom overrides in custom.
func NewPalette(theme string, custom types.Colors) Palette {
	base := types.DefaultColors
	dark := theme == types.ThemeDark
	if dark {
		base = darkColors
	}
	c := overlay(base, custom)

	primary := lipgloss.Color(c.Primary)
	text := lipgloss.Color(c.Text)
	muted := lipgloss.Color("#8a8a8a")
	if dark {
		muted = lipgloss.Color("#9e9e9e")
	}

	return Palette{
		Colors: c,
		Dark:   dark,
		Title:  lipgloss.NewStyle().Foreground(text).Bold(true),
		Accent: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Text:   lipgloss.NewStyle().Foreground(text),
		Muted:  lipgloss.NewStyle().Foreground(muted),
		Done:   lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		Cursor: lipgloss.NewStyle().Foreground(primary).Bold(true),
		Badge:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.CardBg)).Background(primary).Padding(0, 1),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Notice: lipgloss.NewStyle().Foreground(primary).Italic(true),
	}
}

func overlay(base, custom types.Colors) types.Colors {
	if custom.Primary != "" {
		base.Primary = custom.Primary
	}
	if custom.Bg != "" {
		base.Bg = custom.Bg
	}
	if custom.CardBg != "" {
		base.CardBg = custom.CardBg
	}
	if custom.Text != "" {
		base.Text = custom.Text
	}
	return base
}

// cursorMark returns the gutter marker for row i.
func (p Palette) cursorMark(i, cursor int) string {
	if i == cursor {
		return p.Cursor.Render(">") + " "
	}
	return "  "
}

// Section renders a titled block.
func (p Palette) Section(title, body string) string {
	return p.Card.Render(p.Accent.Render(title) + "\n" + body)
}
