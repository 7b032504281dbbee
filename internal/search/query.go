package search

import "strings"

// Query is a canonicalized filter term
type Query struct {
	Raw  string
	Term string
}

// Normalize trims and lowercases a raw filter string
func Normalize(raw string) Query {
	return Query{
		Raw:  raw,
		Term: strings.ToLower(strings.TrimSpace(raw)),
	}
}

// Active reports whether the query restricts anything. An inactive query
// matches every entry.
func (q Query) Active() bool {
	return q.Term != ""
}
