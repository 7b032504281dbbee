// Package view holds the per-view filter and sort state and derives the
// displayed rows from it.
package view

import (
	"context"
	"fmt"

	"github.com/davidpaquet/archive-browser/internal/export"
	"github.com/davidpaquet/archive-browser/internal/model"
	"github.com/davidpaquet/archive-browser/internal/search"
)

// State is the user-editable part of a view
type State struct {
	FilterText string
	Sort       search.SortConfig
}

// FilterAndSort derives the displayed rows for state without any caching
func FilterAndSort(entries model.Collection, texts model.TextMap, state State) model.Collection {
	return search.Sort(search.Filter(entries, texts, state.FilterText), state.Sort)
}

// maxCachedFilters bounds how many filter texts keep cached results. Live
// filtering produces one key per keystroke.
const maxCachedFilters = 8

type sortKey struct {
	filterText string
	sort       search.SortConfig
}

// Controller owns the state of one view over one collection
type Controller struct {
	kind     model.Kind
	entries  model.Collection
	texts    model.TextMap
	columns  []search.Column
	radius   int
	filename string
	engine   search.Engine

	state State

	filterCache map[string]model.Collection
	sortCache   map[sortKey]model.Collection
	// filterOrder lists cached filter texts, least recently used first
	filterOrder []string

	filterRuns int
	sortRuns   int
}

// NewWorkLogs creates the controller of the work logs view
func NewWorkLogs(entries model.Collection, texts model.TextMap) *Controller {
	return newController(model.KindWorkLog, entries, texts,
		[]search.Column{search.ColumnTitle, search.ColumnCreatedDate},
		search.DefaultSnippetRadius, export.WorkLogsFilename)
}

// NewPresentations creates the controller of the presentations view
func NewPresentations(entries model.Collection, texts model.TextMap) *Controller {
	return newController(model.KindPresentation, entries, texts,
		[]search.Column{search.ColumnTitle, search.ColumnSlides, search.ColumnCreatedDate},
		search.PresentationSnippetRadius, export.PresentationsFilename)
}

// New creates the controller for kind
func New(kind model.Kind, entries model.Collection, texts model.TextMap) *Controller {
	if kind == model.KindPresentation {
		return NewPresentations(entries, texts)
	}
	return NewWorkLogs(entries, texts)
}

func newController(kind model.Kind, entries model.Collection, texts model.TextMap, columns []search.Column, radius int, filename string) *Controller {
	return &Controller{
		kind:        kind,
		entries:     entries,
		texts:       texts,
		columns:     columns,
		radius:      radius,
		filename:    filename,
		engine:      search.NewEngine(entries, texts),
		state:       State{Sort: search.DefaultSortConfig},
		filterCache: make(map[string]model.Collection),
		sortCache:   make(map[sortKey]model.Collection),
	}
}

// Kind is the collection this view shows
func (c *Controller) Kind() model.Kind {
	return c.kind
}

func (c *Controller) State() State {
	return c.state
}

// Columns lists the sortable columns of this view
func (c *Controller) Columns() []search.Column {
	return c.columns
}

// Filename is the name offered for exports
func (c *Controller) Filename() string {
	return c.filename
}

// Total is the size of the unfiltered collection
func (c *Controller) Total() int {
	return len(c.entries)
}

// SetFilter stores the raw filter text
func (c *Controller) SetFilter(text string) {
	c.state.FilterText = text
}

// Clear empties the filter
func (c *Controller) Clear() {
	c.state.FilterText = ""
}

// Allows reports whether col is sortable in this view
func (c *Controller) Allows(col search.Column) bool {
	for _, allowed := range c.columns {
		if allowed == col {
			return true
		}
	}
	return false
}

// ClickSort applies the toggle rule for a click on col
func (c *Controller) ClickSort(col search.Column) error {
	if !c.Allows(col) {
		return fmt.Errorf("column %s is not sortable in the %s view", col, c.kind)
	}
	c.state.Sort = c.state.Sort.Toggle(col)
	return nil
}

// SetSort replaces the sort configuration outright
func (c *Controller) SetSort(cfg search.SortConfig) error {
	if !c.Allows(cfg.Column) {
		return fmt.Errorf("column %s is not sortable in the %s view", cfg.Column, c.kind)
	}
	c.state.Sort = cfg
	return nil
}

// Rows returns the displayed rows. Filtering is cached per filter text and
// sorting per filter text and sort config, so switching sort never filters
// again and revisiting a recent state costs nothing.
func (c *Controller) Rows() model.Collection {
	key := sortKey{filterText: c.state.FilterText, sort: c.state.Sort}
	if rows, ok := c.sortCache[key]; ok {
		c.touch(key.filterText)
		return rows
	}

	rows := search.Sort(c.filtered(), c.state.Sort)
	c.sortRuns++
	c.sortCache[key] = rows
	return rows
}

func (c *Controller) filtered() model.Collection {
	text := c.state.FilterText
	if rows, ok := c.filterCache[text]; ok {
		c.touch(text)
		return rows
	}

	rows, err := c.engine.Search(context.Background(), text)
	if err != nil {
		// a background context is never cancelled
		rows = search.Filter(c.entries, c.texts, text)
	}
	c.filterRuns++
	c.filterCache[text] = rows
	c.touch(text)
	c.evict()
	return rows
}

// touch marks text as the most recently used filter
func (c *Controller) touch(text string) {
	for i, t := range c.filterOrder {
		if t == text {
			c.filterOrder = append(c.filterOrder[:i], c.filterOrder[i+1:]...)
			break
		}
	}
	c.filterOrder = append(c.filterOrder, text)
}

// evict drops the oldest filter texts and every sorted result built on them
func (c *Controller) evict() {
	for len(c.filterOrder) > maxCachedFilters {
		oldest := c.filterOrder[0]
		c.filterOrder = c.filterOrder[1:]
		delete(c.filterCache, oldest)
		for key := range c.sortCache {
			if key.filterText == oldest {
				delete(c.sortCache, key)
			}
		}
	}
}

// Replace swaps in a reloaded collection, keeping filter and sort state
func (c *Controller) Replace(entries model.Collection, texts model.TextMap) {
	c.entries = entries
	c.texts = texts
	c.engine.Update(entries, texts)
	c.filterCache = make(map[string]model.Collection)
	c.sortCache = make(map[sortKey]model.Collection)
	c.filterOrder = nil
}

// Snippet returns the body-text excerpt of entry for the current filter
func (c *Controller) Snippet(entry model.Entry) string {
	return search.BuildSnippet(c.texts.Lookup(entry.FileName), c.state.FilterText, c.radius)
}

// SnippetTokens returns the excerpt of entry split into highlight runs
func (c *Controller) SnippetTokens(entry model.Entry) []search.Run {
	return search.BuildSnippetTokens(c.texts.Lookup(entry.FileName), c.state.FilterText, c.radius)
}

// CSV serializes the displayed rows
func (c *Controller) CSV() string {
	if c.kind == model.KindPresentation {
		return export.PresentationsCSV(c.Rows())
	}
	return export.WorkLogsCSV(c.Rows())
}

// Export serializes the displayed rows and hands them to target
func (c *Controller) Export(target export.Target) error {
	if target == nil {
		return export.ErrDownloadUnavailable
	}
	return target.Save(c.filename, c.CSV())
}

// ResultLabel describes how many rows are shown
func (c *Controller) ResultLabel() string {
	return PluralizeEntries(len(c.Rows()))
}

// PluralizeEntries formats a row count
func PluralizeEntries(n int) string {
	if n == 1 {
		return "1 entry"
	}
	return fmt.Sprintf("%d entries", n)
}
