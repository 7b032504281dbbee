package search

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// DefaultSnippetRadius is the snippet width used by the work logs view
	DefaultSnippetRadius = 160
	// PresentationSnippetRadius is the wider window used for slide text
	PresentationSnippetRadius = 220

	ellipsis = "…"
)

// Run is one piece of a rendered snippet
type Run struct {
	Text      string
	Highlight bool
}

// BuildSnippet extracts a window of about radius runes around the first
// case-insensitive occurrence of term in text. Without a hit the head of the
// text is returned. Ellipses mark each side that was cut.
func BuildSnippet(text, term string, radius int) string {
	trimmed := strings.TrimSpace(term)
	if text == "" || trimmed == "" {
		return ""
	}
	if radius < 0 {
		radius = 0
	}

	runes := []rune(text)
	needle := lowerRunes([]rune(trimmed))
	i := indexRunes(lowerRunes(runes), needle)

	if i < 0 {
		if len(runes) > radius {
			return string(runes[:radius]) + ellipsis
		}
		return text
	}

	half := radius / 2
	start := max(0, i-half)
	end := min(len(runes), i+len(needle)+half)

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(string(runes[start:end]))
	if end < len(runes) {
		b.WriteString(ellipsis)
	}
	return b.String()
}

// HighlightRuns splits snippet into alternating plain and highlighted runs,
// one highlighted run per case-insensitive literal occurrence of term.
// Matched text keeps its original case.
func HighlightRuns(snippet, term string) []Run {
	if snippet == "" {
		return nil
	}
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return []Run{{Text: snippet}}
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(trimmed))

	var runs []Run
	last := 0
	for _, loc := range pattern.FindAllStringIndex(snippet, -1) {
		if loc[0] > last {
			runs = append(runs, Run{Text: snippet[last:loc[0]]})
		}
		runs = append(runs, Run{Text: snippet[loc[0]:loc[1]], Highlight: true})
		last = loc[1]
	}
	if last < len(snippet) {
		runs = append(runs, Run{Text: snippet[last:]})
	}
	return runs
}

// BuildSnippetTokens builds a snippet and splits it into highlight runs
func BuildSnippetTokens(text, term string, radius int) []Run {
	return HighlightRuns(BuildSnippet(text, term, radius), term)
}

// lowerRunes lowercases rune by rune so indexes line up with the source
func lowerRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[i] = unicode.ToLower(r)
	}
	return out
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return 0
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j, r := range needle {
			if haystack[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
