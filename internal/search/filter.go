package search

import (
	"strings"

	"github.com/davidpaquet/archive-browser/internal/model"
)

// FilterEngine decides metadata matches
type FilterEngine interface {
	Match(q Query, entries model.Collection) []bool
}

type filterEngine struct{}

func NewFilterEngine() FilterEngine {
	return &filterEngine{}
}

func (f *filterEngine) Match(q Query, entries model.Collection) []bool {
	matched := make([]bool, len(entries))
	for i, entry := range entries {
		matched[i] = MatchesMetadata(entry, q)
	}
	return matched
}

// haystack combines the searchable metadata fields of an entry
func haystack(entry model.Entry) string {
	return strings.ToLower(entry.Title + " " + entry.FileName + " " + entry.Date())
}

// MatchesMetadata reports whether title, fileName or createdDate contain the term
func MatchesMetadata(entry model.Entry, q Query) bool {
	if !q.Active() {
		return true
	}
	return strings.Contains(haystack(entry), q.Term)
}

// MatchesText reports whether the body text contains the term
func MatchesText(text string, q Query) bool {
	if !q.Active() {
		return true
	}
	return strings.Contains(strings.ToLower(text), q.Term)
}

// Filter keeps the entries that match raw by metadata or body text, in their
// original order. The input is never modified.
func Filter(entries model.Collection, texts model.TextMap, raw string) model.Collection {
	q := Normalize(raw)
	result := make(model.Collection, 0, len(entries))
	for _, entry := range entries {
		if MatchesMetadata(entry, q) || MatchesText(texts.Lookup(entry.FileName), q) {
			result = append(result, entry)
		}
	}
	return result
}
