// Package catalog loads content.json and search-index.json into memory.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/davidpaquet/archive-browser/internal/logging"
	"github.com/davidpaquet/archive-browser/internal/model"
)

// ErrMalformedCatalog is returned when a payload's top-level shape is unusable
var ErrMalformedCatalog = errors.New("malformed catalog")

// Catalog is the immutable in-memory archive built once at startup
type Catalog struct {
	GeneratedAt       *string
	WorkLogs          model.Collection
	Presentations     model.Collection
	WorkLogTexts      model.TextMap
	PresentationTexts model.TextMap
}

// Collection returns the entries of the given kind
func (c *Catalog) Collection(kind model.Kind) model.Collection {
	if kind == model.KindPresentation {
		return c.Presentations
	}
	return c.WorkLogs
}

// Texts returns the body-text map of the given kind
func (c *Catalog) Texts(kind model.Kind) model.TextMap {
	if kind == model.KindPresentation {
		return c.PresentationTexts
	}
	return c.WorkLogTexts
}

// Loader reads catalog files from disk
type Loader struct{}

// NewLoader creates a new loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads both payloads. A missing index file is not an error; the catalog
// is simply left without body text.
func (l *Loader) Load(contentPath, indexPath string) (*Catalog, error) {
	content, err := os.ReadFile(contentPath)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	index, err := os.ReadFile(indexPath)
	if os.IsNotExist(err) {
		logging.Warn("Search index not found, body text search disabled", "path", indexPath)
		index = nil
	} else if err != nil {
		return nil, fmt.Errorf("read search index: %w", err)
	}

	cat, err := Parse(content, index)
	if err != nil {
		return nil, err
	}

	logging.Info("Catalog loaded",
		"workLogs", len(cat.WorkLogs),
		"presentations", len(cat.Presentations),
		"workLogTexts", len(cat.WorkLogTexts),
		"presentationTexts", len(cat.PresentationTexts),
	)
	return cat, nil
}

// Parse builds a catalog from the raw content payload and search index.
// An empty index yields empty text maps.
func Parse(content, index []byte) (*Catalog, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(content, &top); err != nil || top == nil {
		return nil, fmt.Errorf("%w: content payload is not a JSON object", ErrMalformedCatalog)
	}

	rawLogs, hasLogs := top["workLogs"]
	rawDecks, hasDecks := top["presentations"]
	if !hasLogs && !hasDecks {
		return nil, fmt.Errorf("%w: content payload has neither workLogs nor presentations", ErrMalformedCatalog)
	}

	cat := &Catalog{
		GeneratedAt:       decodeOptionalString(top["generatedAt"]),
		WorkLogs:          decodeCollection("workLogs", rawLogs, false),
		Presentations:     decodeCollection("presentations", rawDecks, true),
		WorkLogTexts:      model.TextMap{},
		PresentationTexts: model.TextMap{},
	}

	if len(bytes.TrimSpace(index)) > 0 {
		var records []json.RawMessage
		if err := json.Unmarshal(index, &records); err != nil {
			return nil, fmt.Errorf("%w: search index is not a JSON array", ErrMalformedCatalog)
		}
		for i, raw := range records {
			var rec model.SearchIndexEntry
			if err := json.Unmarshal(raw, &rec); err != nil {
				logging.Warn("Skipping unreadable search index record", "position", i, "error", err)
				continue
			}
			switch rec.Kind {
			case model.KindWorkLog:
				cat.WorkLogTexts[rec.FileName] = rec.Text
			case model.KindPresentation:
				cat.PresentationTexts[rec.FileName] = rec.Text
			default:
				logging.Debug("Skipping search index record of unknown kind", "kind", rec.Kind, "fileName", rec.FileName)
			}
		}
	}

	return cat, nil
}

func decodeCollection(name string, raw json.RawMessage, withSlides bool) model.Collection {
	if len(raw) == 0 {
		return model.Collection{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		logging.Warn("Collection is not an array, treating as empty", "collection", name)
		return model.Collection{}
	}

	entries := make(model.Collection, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			logging.Warn("Skipping collection element that is not an object", "collection", name, "position", i)
			continue
		}

		entry := model.Entry{
			FileName:    decodeString(fields["fileName"]),
			Title:       decodeString(fields["title"]),
			URL:         decodeString(fields["url"]),
			CreatedDate: decodeOptionalString(fields["createdDate"]),
		}
		if withSlides {
			entry.Slides = decodeSlides(fields["slides"])
		}

		if entry.FileName != "" {
			if seen[entry.FileName] {
				logging.Warn("Duplicate fileName in collection", "collection", name, "fileName", entry.FileName)
			}
			seen[entry.FileName] = true
		}
		entries = append(entries, entry)
	}
	return entries
}

func decodeString(raw json.RawMessage) string {
	s := decodeOptionalString(raw)
	if s == nil {
		return ""
	}
	return *s
}

// decodeOptionalString returns nil for absent, null, or non-string values
func decodeOptionalString(raw json.RawMessage) *string {
	if len(raw) == 0 {
		return nil
	}
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	return s
}

// decodeSlides keeps only non-negative integral counts
func decodeSlides(raw json.RawMessage) *int {
	if len(raw) == 0 {
		return nil
	}
	var f *float64
	if err := json.Unmarshal(raw, &f); err != nil || f == nil {
		return nil
	}
	if *f < 0 || *f != math.Trunc(*f) || *f > math.MaxInt32 {
		return nil
	}
	n := int(*f)
	return &n
}
