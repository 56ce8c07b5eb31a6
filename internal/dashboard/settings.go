package dashboard

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mesh-intelligence/flowtask/pkg/types"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ToggleTheme switches between light and dark and returns the new theme.
func (a *App) ToggleTheme() (string, error) {
	next := types.ThemeDark
	if a.Theme == types.ThemeDark {
		next = types.ThemeLight
	}
	return next, a.SetTheme(next)
}

// SetTheme stores an explicit theme.
func (a *App) SetTheme(theme string) error {
	if theme != types.ThemeLight && theme != types.ThemeDark {
		return fmt.Errorf("%w: theme %q", types.ErrInvalidField, theme)
	}
	a.Theme = theme
	return a.save(types.KeyTheme, theme)
}

// SetColors overrides the non-empty fields of c. Each value must be a
// #rrggbb hex color.
func (a *App) SetColors(c types.Colors) error {
	merged := a.Colors
	for _, f := range []struct {
		name string
		in   string
		dst  *string
	}{
		{"primary", c.Primary, &merged.Primary},
		{"bg", c.Bg, &merged.Bg},
		{"cardBg", c.CardBg, &merged.CardBg},
		{"text", c.Text, &merged.Text},
	} {
		v := strings.TrimSpace(f.in)
		if v == "" {
			continue
		}
		if !hexColor.MatchString(v) {
			return fmt.Errorf("%w: %s color %q", types.ErrInvalidField, f.name, v)
		}
		*f.dst = strings.ToLower(v)
	}
	a.Colors = merged
	return a.save(types.KeyColors, a.Colors)
}

// ResetColors drops every custom color.
func (a *App) ResetColors() error {
	a.Colors = types.Colors{}
	return a.store.Remove(types.KeyColors)
}

// ResolvedColors returns the custom colors with defaults filled in.
func (a *App) ResolvedColors() types.Colors {
	return a.Colors.Resolve()
}

// MarkActive records the current time as the last activity.
func (a *App) MarkActive() error {
	a.LastActive = a.now().UnixMilli()
	return a.save(types.KeyLastActive, a.LastActive)
}

func (a *App) bumpStreak() error {
	a.Streak++
	return a.save(types.KeyStreak, a.Streak)
}
