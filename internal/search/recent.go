package search

import (
	"sort"

	"github.com/davidpaquet/archive-browser/internal/model"
)

// Recent returns the n entries with the latest createdDate, newest first.
// Missing dates rank last and ties keep input order. The input is not modified.
func Recent(entries model.Collection, n int) model.Collection {
	if n <= 0 || len(entries) == 0 {
		return model.Collection{}
	}

	sorted := append(model.Collection{}, entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dateKey(sorted[i]) > dateKey(sorted[j])
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Latest returns the most recently created entry, or false for an empty collection
func Latest(entries model.Collection) (model.Entry, bool) {
	recent := Recent(entries, 1)
	if len(recent) == 0 {
		return model.Entry{}, false
	}
	return recent[0], true
}
