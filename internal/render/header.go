package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/mesh-intelligence/flowtask/internal/dashboard"
)

// Header is the data shown above the panes.
type Header struct {
	Now      time.Time
	Streak   int
	Progress float64
	Open     int
	Done     int
}

// HeaderFor collects header data from a loaded App.
func HeaderFor(a *dashboard.App) Header {
	return Header{
		Now:      a.Now(),
		Streak:   a.Streak,
		Progress: a.Progress(),
		Open:     a.OpenCount(),
		Done:     a.CompletedCount(),
	}
}

// RenderHeader renders greeting, clock, date, streak and the progress bar.
func (p Palette) RenderHeader(h Header, width int) string {
	greeting := p.Title.Render(dashboard.Greeting(h.Now))
	clock := p.Accent.Render(h.Now.Format("15:04"))
	date := p.Muted.Render(h.Now.Format("Monday, January 2, 2006"))
	streak := p.Text.Render(fmt.Sprintf("streak %d", h.Streak))

	barWidth := max(10, min(width-24, 40))
	progress := fmt.Sprintf("%s %3.0f%%  %d open, %d done",
		p.ProgressBar(h.Progress, barWidth), h.Progress, h.Open, h.Done)

	return strings.Join([]string{
		greeting + "  " + clock + "  " + date,
		streak,
		progress,
	}, "\n")
}

// ProgressBar draws pct (0..100) as a bar width cells wide.
func (p Palette) ProgressBar(pct float64, width int) string {
	if width <= 0 {
		return ""
	}
	pct = max(0, min(pct, 100))
	filled := int(pct / 100 * float64(width))
	return p.Accent.Render(strings.Repeat("█", filled)) + p.Muted.Render(strings.Repeat("░", width-filled))
}
