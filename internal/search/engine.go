package search

import (
	"context"

	"github.com/davidpaquet/archive-browser/internal/model"
)

// Engine filters one collection against its body-text map
type Engine interface {
	Search(ctx context.Context, raw string) (model.Collection, error)
	Update(entries model.Collection, texts model.TextMap)
}

type engine struct {
	entries       model.Collection
	texts         model.TextMap
	filterEngine  FilterEngine
	contentEngine ContentEngine
}

func NewEngine(entries model.Collection, texts model.TextMap) Engine {
	return &engine{
		entries:       entries,
		texts:         texts,
		filterEngine:  NewFilterEngine(),
		contentEngine: NewContentEngine(),
	}
}

// Search returns the matching entries in their original order. An inactive
// query returns a copy of the whole collection.
func (e *engine) Search(ctx context.Context, raw string) (model.Collection, error) {
	q := Normalize(raw)
	if !q.Active() {
		return append(model.Collection{}, e.entries...), nil
	}

	byMeta := e.filterEngine.Match(q, e.entries)
	byText, err := e.contentEngine.MatchContent(ctx, q, e.entries, e.texts, byMeta)
	if err != nil {
		return nil, err
	}

	result := make(model.Collection, 0, len(e.entries))
	for i, entry := range e.entries {
		if byMeta[i] || byText[i] {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (e *engine) Update(entries model.Collection, texts model.TextMap) {
	e.entries = entries
	e.texts = texts
}
