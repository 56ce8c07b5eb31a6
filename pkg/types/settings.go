package types

// Theme values stored under KeyTheme.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Colors holds user color overrides. Empty fields fall back to DefaultColors.
type Colors struct {
	Primary string `json:"primary,omitempty"`
	Bg      string `json:"bg,omitempty"`
	CardBg  string `json:"cardBg,omitempty"`
	Text    string `json:"text,omitempty"`
}

// DefaultColors is the palette restored by a color reset.
var DefaultColors = Colors{
	Primary: "#ff3500",
	Bg:      "#fffbfa",
	CardBg:  "#ffffff",
	Text:    "#212121",
}

// Resolve returns c with every empty field taken from DefaultColors.
func (c Colors) Resolve() Colors {
	if c.Primary == "" {
		c.Primary = DefaultColors.Primary
	}
	if c.Bg == "" {
		c.Bg = DefaultColors.Bg
	}
	if c.CardBg == "" {
		c.CardBg = DefaultColors.CardBg
	}
	if c.Text == "" {
		c.Text = DefaultColors.Text
	}
	return c
}

// IsZero reports whether no override is set.
func (c Colors) IsZero() bool {
	return c == Colors{}
}
