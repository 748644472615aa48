// Package display provides shared formatting helpers for terminal output.
package display

import (
	"fmt"
	"math"
	"strings"
)

// TruncateText truncates text to maxLen characters, replacing newlines with spaces.
// If truncated, adds "..." suffix.
func TruncateText(s string, maxLen int) string {
	text := strings.Join(strings.Fields(s), " ")

	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// Subject returns the first line of a commit message
func Subject(message string) string {
	subject, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	return strings.TrimSpace(subject)
}

// FormatMinutes renders a minute estimate as "1h10m" or "45m"
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes))
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dm", h, m)
	}
}

// Pluralize returns "1 commit" / "2 commits"
func Pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
