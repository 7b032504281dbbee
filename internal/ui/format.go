package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/davidpaquet/archive-browser/internal/search"
)

const refreshedLayout = "Jan 2, 2006 15:04"

// formatRefreshed renders the catalog timestamp in local time. A missing
// value reads "Unknown" and an unparseable one is shown as is.
func formatRefreshed(generatedAt *string, now time.Time) string {
	if generatedAt == nil || strings.TrimSpace(*generatedAt) == "" {
		return "Unknown"
	}
	ms, ok := search.ParseDate(generatedAt)
	if !ok {
		return *generatedAt
	}
	t := time.UnixMilli(ms).In(now.Location())
	return fmt.Sprintf("%s (%s)", t.Format(refreshedLayout), getRelativeTime(t, now))
}

// cell fits s into exactly width terminal columns
func cell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

func wrapText(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{}
	}

	lines := []string{}
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if runewidth.StringWidth(currentLine+" "+word) <= width {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return lines
}

func getRelativeTime(t, now time.Time) string {
	diff := now.Sub(t)

	if diff < 0 {
		return "in the future"
	} else if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		return plural(int(diff.Minutes()), "minute")
	} else if diff < 24*time.Hour {
		return plural(int(diff.Hours()), "hour")
	} else if diff < 7*24*time.Hour {
		return plural(int(diff.Hours()/24), "day")
	} else if diff < 30*24*time.Hour {
		return plural(int(diff.Hours()/(24*7)), "week")
	} else if diff < 365*24*time.Hour {
		return plural(int(diff.Hours()/(24*30)), "month")
	}
	return plural(int(diff.Hours()/(24*365)), "year")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit + " ago"
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
