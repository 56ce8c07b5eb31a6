package dashboard

import (
	"fmt"
	"time"
)

// FormatAgo renders the age of a millisecond timestamp relative to now.
func FormatAgo(ts int64, now time.Time) string {
	diff := time.Duration(now.UnixMilli()-ts) * time.Millisecond
	switch {
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff/time.Minute))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff/time.Hour))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff/(24*time.Hour)))
	}
	return time.UnixMilli(ts).In(now.Location()).Format("1/2/2006")
}

// Greeting returns the salutation for the hour of day.
func Greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	}
	return "Good evening"
}
