package search

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/davidpaquet/archive-browser/internal/model"
)

func sampleCollection() model.Collection {
	return model.Collection{
		{FileName: "a", Title: "Alpha", CreatedDate: model.StringPtr("2024-01-02")},
		{FileName: "b", Title: "beta", CreatedDate: nil},
	}
}

func fileNames(entries model.Collection) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.FileName
	}
	return names
}

func assertOrder(t *testing.T, got model.Collection, want ...string) {
	t.Helper()
	names := fileNames(got)
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Expected order %v, got %v", want, names)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		raw    string
		term   string
		active bool
	}{
		{"", "", false},
		{"   \t", "", false},
		{"  ALPHA ", "alpha", true},
		{".*", ".*", true},
	}
	for _, tt := range tests {
		q := Normalize(tt.raw)
		if q.Term != tt.term || q.Active() != tt.active {
			t.Errorf("Normalize(%q) = %q active=%v, want %q active=%v", tt.raw, q.Term, q.Active(), tt.term, tt.active)
		}
	}
}

func TestFilterMatches(t *testing.T) {
	entries := sampleCollection()

	t.Run("metadata match is case-insensitive", func(t *testing.T) {
		assertOrder(t, Filter(entries, nil, "ALPHA"), "a")
	})

	t.Run("body text match", func(t *testing.T) {
		texts := model.TextMap{"b": "The quick brown fox"}
		got := Filter(entries, texts, "quick")
		assertOrder(t, got, "b")
		if MatchesMetadata(entries[1], Normalize("quick")) {
			t.Error("Metadata predicate should be false for body-only hits")
		}
	})

	t.Run("date is part of the haystack", func(t *testing.T) {
		assertOrder(t, Filter(entries, nil, "2024-01"), "a")
	})

	t.Run("missing text is treated as empty", func(t *testing.T) {
		if got := Filter(entries, model.TextMap{}, "fox"); len(got) != 0 {
			t.Errorf("Expected no matches, got %v", fileNames(got))
		}
	})
}

func TestFilterProperties(t *testing.T) {
	entries := model.Collection{
		{FileName: "one.html", Title: "Sprint review"},
		{FileName: "two.html", Title: "Budget (draft)"},
		{FileName: "three.html", Title: "a.b.c"},
		{FileName: "four.html", Title: "Retro [team]"},
	}
	texts := model.TextMap{
		"one.html":  "Velocity went up? Yes.",
		"four.html": "what is .* anyway",
	}

	t.Run("empty query keeps everything in order", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			assertOrder(t, Filter(entries, texts, raw), "one.html", "two.html", "three.html", "four.html")
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		once := Filter(entries, texts, "re")
		twice := Filter(once, texts, "re")
		assertOrder(t, twice, fileNames(once)...)
	})

	t.Run("case variants agree", func(t *testing.T) {
		for _, raw := range []string{"sprint", "SPRINT", "SpRiNt"} {
			assertOrder(t, Filter(entries, texts, raw), "one.html")
		}
	})

	t.Run("metacharacters match literally", func(t *testing.T) {
		cases := map[string][]string{
			".*":  {"four.html"},
			"[":   {"four.html"},
			"?":   {"one.html"},
			"a.b": {"three.html"},
			"(":   {"two.html"},
			"a*b": nil,
		}
		for raw, want := range cases {
			got := fileNames(Filter(entries, texts, raw))
			if strings.Join(got, ",") != strings.Join(want, ",") {
				t.Errorf("Filter(%q) = %v, want %v", raw, got, want)
			}
		}
	})

	t.Run("input is not mutated", func(t *testing.T) {
		before := fileNames(entries)
		_ = Filter(entries, texts, "budget")
		assertOrder(t, entries, before...)
	})
}

func TestEngineMatchesFilter(t *testing.T) {
	entries := make(model.Collection, 5000)
	texts := model.TextMap{}
	for i := range entries {
		name := fmt.Sprintf("log-%04d.html", i)
		entries[i] = model.Entry{FileName: name, Title: name}
		if i%7 == 0 {
			texts[name] = "contains the needle somewhere"
		}
	}

	engine := NewEngine(entries, texts)
	for _, raw := range []string{"", "needle", "log-00", "NEEDLE", "absent"} {
		got, err := engine.Search(context.Background(), raw)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", raw, err)
		}
		want := Filter(entries, texts, raw)
		if strings.Join(fileNames(got), ",") != strings.Join(fileNames(want), ",") {
			t.Errorf("Search(%q) returned %d entries, Filter returned %d", raw, len(got), len(want))
		}
	}
}

func TestEngineCancelled(t *testing.T) {
	entries := make(model.Collection, 5000)
	for i := range entries {
		entries[i] = model.Entry{FileName: fmt.Sprintf("f%d", i)}
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	engine := NewEngine(entries, model.TextMap{})
	if _, err := engine.Search(ctx, "zzz"); err == nil {
		t.Error("Expected a cancellation error")
	}
}

func TestEngineUpdate(t *testing.T) {
	engine := NewEngine(sampleCollection(), nil)
	engine.Update(model.Collection{{FileName: "c", Title: "Gamma"}}, nil)

	got, err := engine.Search(context.Background(), "gamma")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	assertOrder(t, got, "c")
}
