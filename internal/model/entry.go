package model

import "strconv"

// Kind identifies which collection a document belongs to
type Kind string

const (
	KindWorkLog      Kind = "work-log"
	KindPresentation Kind = "presentation"
)

// Valid reports whether k is one of the two known collections
func (k Kind) Valid() bool {
	return k == KindWorkLog || k == KindPresentation
}

// Entry represents one catalog row. Slides is only set for presentations.
type Entry struct {
	FileName    string  `json:"fileName"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	CreatedDate *string `json:"createdDate"`
	Slides      *int    `json:"slides,omitempty"`
}

// Date returns the created date or "" when it is absent
func (e Entry) Date() string {
	if e.CreatedDate == nil {
		return ""
	}
	return *e.CreatedDate
}

// DisplayDate returns the created date or "Unknown"
func (e Entry) DisplayDate() string {
	if e.CreatedDate == nil {
		return "Unknown"
	}
	return *e.CreatedDate
}

// DisplaySlides returns the slide count or an em dash when unknown
func (e Entry) DisplaySlides() string {
	if e.Slides == nil {
		return "—"
	}
	return strconv.Itoa(*e.Slides)
}

// Collection is an ordered sequence of entries. Order on disk carries no meaning.
type Collection []Entry

// ContentPayload mirrors content.json
type ContentPayload struct {
	GeneratedAt   *string    `json:"generatedAt"`
	WorkLogs      Collection `json:"workLogs"`
	Presentations Collection `json:"presentations"`
}

// SearchIndexEntry mirrors one record of search-index.json
type SearchIndexEntry struct {
	Kind        Kind    `json:"kind"`
	FileName    string  `json:"fileName"`
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	CreatedDate *string `json:"createdDate"`
	Text        string  `json:"text"`
	TextLength  int     `json:"textLength"`
}

// TextMap maps a fileName to the extracted body text of that document
type TextMap map[string]string

// Lookup returns the text for fileName, or "" when the document has none
func (t TextMap) Lookup(fileName string) string {
	if t == nil {
		return ""
	}
	return t[fileName]
}

// StringPtr is a small helper for building optional fields
func StringPtr(s string) *string {
	return &s
}

// IntPtr is a small helper for building optional fields
func IntPtr(n int) *int {
	return &n
}
