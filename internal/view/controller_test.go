package view

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/davidpaquet/archive-browser/internal/export"
	"github.com/davidpaquet/archive-browser/internal/model"
	"github.com/davidpaquet/archive-browser/internal/search"
)

func decks() model.Collection {
	return model.Collection{
		{FileName: "a.pdf", Title: "Alpha", URL: "resources/presentations/a.pdf", CreatedDate: model.StringPtr("2024-01-02"), Slides: model.IntPtr(5)},
		{FileName: "b.pdf", Title: "beta", URL: "resources/presentations/b.pdf", Slides: model.IntPtr(20)},
		{FileName: "c.pdf", Title: "Gamma, final", URL: "resources/presentations/c.pdf", CreatedDate: model.StringPtr("2023-07-08")},
	}
}

func names(entries model.Collection) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.FileName
	}
	return strings.Join(parts, ",")
}

func TestDefaultStateIsNewestFirst(t *testing.T) {
	c := NewPresentations(decks(), nil)
	if c.State().Sort != search.DefaultSortConfig {
		t.Errorf("unexpected default sort %v", c.State().Sort)
	}
	if got := names(c.Rows()); got != "a.pdf,c.pdf,b.pdf" {
		t.Errorf("Rows() = %s", got)
	}
	if c.ResultLabel() != "3 entries" {
		t.Errorf("ResultLabel() = %q", c.ResultLabel())
	}
}

func TestClickSortFollowsToggleRules(t *testing.T) {
	c := NewPresentations(decks(), nil)

	if err := c.ClickSort(search.ColumnSlides); err != nil {
		t.Fatalf("ClickSort failed: %v", err)
	}
	if got := names(c.Rows()); got != "b.pdf,a.pdf,c.pdf" {
		t.Errorf("slides desc = %s", got)
	}

	c.ClickSort(search.ColumnSlides)
	if got := names(c.Rows()); got != "c.pdf,a.pdf,b.pdf" {
		t.Errorf("slides asc = %s", got)
	}

	c.ClickSort(search.ColumnTitle)
	if c.State().Sort != (search.SortConfig{Column: search.ColumnTitle, Direction: search.Asc}) {
		t.Errorf("new column should start asc for title, got %v", c.State().Sort)
	}
	if got := names(c.Rows()); got != "a.pdf,b.pdf,c.pdf" {
		t.Errorf("title asc = %s", got)
	}
}

func TestWorkLogsRejectSlides(t *testing.T) {
	c := NewWorkLogs(decks(), nil)
	if err := c.ClickSort(search.ColumnSlides); err == nil {
		t.Error("work logs should not sort by slides")
	}
	if err := c.SetSort(search.SortConfig{Column: search.ColumnSlides}); err == nil {
		t.Error("SetSort should reject slides for work logs")
	}
	if c.State().Sort != search.DefaultSortConfig {
		t.Error("rejected click must not change the sort")
	}
}

func TestFilterAndClear(t *testing.T) {
	texts := model.TextMap{"b.pdf": "Quarterly roadmap and hiring plan"}
	c := NewPresentations(decks(), texts)

	c.SetFilter("ROADMAP")
	if got := names(c.Rows()); got != "b.pdf" {
		t.Errorf("filtered rows = %s", got)
	}
	if c.ResultLabel() != "1 entry" {
		t.Errorf("ResultLabel() = %q", c.ResultLabel())
	}

	runs := c.SnippetTokens(c.Rows()[0])
	var hit string
	for _, r := range runs {
		if r.Highlight {
			hit = r.Text
		}
	}
	if hit != "roadmap" {
		t.Errorf("expected highlighted %q, got runs %+v", "roadmap", runs)
	}
	if c.Snippet(decks()[0]) != "" {
		t.Error("entry without text should have an empty snippet")
	}

	c.Clear()
	if c.State().FilterText != "" || len(c.Rows()) != 3 {
		t.Errorf("Clear() left %q / %d rows", c.State().FilterText, len(c.Rows()))
	}
}

func TestMemoization(t *testing.T) {
	c := NewPresentations(decks(), nil)

	c.Rows()
	c.Rows()
	if c.filterRuns != 1 || c.sortRuns != 1 {
		t.Fatalf("repeat Rows() should be cached: filter=%d sort=%d", c.filterRuns, c.sortRuns)
	}

	c.ClickSort(search.ColumnTitle)
	c.Rows()
	if c.filterRuns != 1 || c.sortRuns != 2 {
		t.Errorf("re-sort must not re-filter: filter=%d sort=%d", c.filterRuns, c.sortRuns)
	}

	c.SetFilter("alpha")
	c.Rows()
	if c.filterRuns != 2 || c.sortRuns != 3 {
		t.Errorf("filter change should filter and sort once: filter=%d sort=%d", c.filterRuns, c.sortRuns)
	}

	c.Clear()
	c.Rows()
	if c.filterRuns != 2 || c.sortRuns != 3 {
		t.Errorf("returning to a seen state should hit the cache: filter=%d sort=%d", c.filterRuns, c.sortRuns)
	}
}

func TestExport(t *testing.T) {
	c := NewPresentations(decks(), nil)
	c.SetFilter("a")
	c.ClickSort(search.ColumnTitle)

	var buf bytes.Buffer
	if err := c.Export(export.WriterTarget{W: &buf}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	want := "File Name,Slides,Creation Date,Link\n" +
		"Alpha,5,2024-01-02,resources/presentations/a.pdf\n" +
		"beta,20,Unknown,resources/presentations/b.pdf\n" +
		"\"Gamma, final\",,2023-07-08,resources/presentations/c.pdf\n"
	if buf.String() != want {
		t.Errorf("export =\n%s\nwant\n%s", buf.String(), want)
	}

	if err := c.Export(nil); !errors.Is(err, export.ErrDownloadUnavailable) {
		t.Errorf("nil target should be unavailable, got %v", err)
	}
}

func TestWorkLogsExportUsesWorkLogColumns(t *testing.T) {
	c := NewWorkLogs(model.Collection{{FileName: "x.html", Title: "x.html", URL: "u"}}, nil)
	if c.Filename() != export.WorkLogsFilename {
		t.Errorf("Filename() = %q", c.Filename())
	}
	if got := c.CSV(); got != "File Name,Creation Date,Link\nx.html,Unknown,u" {
		t.Errorf("CSV() = %q", got)
	}
}

func TestFilterAndSortMatchesController(t *testing.T) {
	texts := model.TextMap{"c.pdf": "alpha release notes"}
	state := State{FilterText: "alpha", Sort: search.SortConfig{Column: search.ColumnCreatedDate, Direction: search.Asc}}

	c := NewPresentations(decks(), texts)
	c.SetFilter(state.FilterText)
	c.SetSort(state.Sort)

	if got, want := names(FilterAndSort(decks(), texts, state)), names(c.Rows()); got != want {
		t.Errorf("FilterAndSort = %s, controller = %s", got, want)
	}
}

func TestCacheIsBounded(t *testing.T) {
	c := NewPresentations(decks(), nil)
	c.Rows()

	typed := "quarterly planning review"
	for i := 1; i <= len(typed); i++ {
		c.SetFilter(typed[:i])
		c.Rows()
	}

	if len(c.filterCache) > maxCachedFilters {
		t.Errorf("filter cache grew to %d entries", len(c.filterCache))
	}
	for key := range c.sortCache {
		if _, ok := c.filterCache[key.filterText]; !ok {
			t.Errorf("sorted rows kept for evicted filter %q", key.filterText)
		}
	}

	before := c.filterRuns
	c.Rows()
	c.SetFilter(typed[:len(typed)-1])
	c.Rows()
	if c.filterRuns != before {
		t.Error("a recent filter should still be cached")
	}

	c.Clear()
	c.Rows()
	if c.filterRuns != before+1 {
		t.Errorf("an evicted filter should be recomputed, runs %d -> %d", before, c.filterRuns)
	}
}

func TestReplaceKeepsState(t *testing.T) {
	c := NewPresentations(decks(), nil)
	c.SetFilter("budget")
	c.ClickSort(search.ColumnTitle)
	if len(c.Rows()) != 0 {
		t.Fatal("nothing should match before the reload")
	}

	c.Replace(decks(), model.TextMap{"c.pdf": "Budget for next year"})
	if c.State().FilterText != "budget" || c.State().Sort.Column != search.ColumnTitle {
		t.Errorf("Replace lost state %+v", c.State())
	}
	if got := names(c.Rows()); got != "c.pdf" {
		t.Errorf("rows after reload = %s", got)
	}
}
