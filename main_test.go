package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/davidpaquet/archive-browser/internal/config"
	"github.com/davidpaquet/archive-browser/internal/search"
)

func TestRunExport(t *testing.T) {
	dir := t.TempDir()
	content := `{"generatedAt": null, "workLogs": [
  {"fileName": "a.html", "title": "a.html", "url": "resources/work_logs/a.html", "createdDate": "2024-01-01"},
  {"fileName": "b.html", "title": "b.html", "url": "resources/work_logs/b.html", "createdDate": "2024-02-01"}
], "presentations": []}`
	index := `[{"kind": "work-log", "fileName": "a.html", "text": "budget notes"}]`
	if err := os.WriteFile(filepath.Join(dir, "content.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "search-index.json"), []byte(index), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("all rows newest first", func(t *testing.T) {
		var out bytes.Buffer
		cfg := &config.Config{DataDir: dir, Export: "work-logs", Sort: search.DefaultSortConfig}
		if err := runExport(cfg, &out); err != nil {
			t.Fatalf("runExport failed: %v", err)
		}
		want := "File Name,Creation Date,Link\n" +
			"b.html,2024-02-01,resources/work_logs/b.html\n" +
			"a.html,2024-01-01,resources/work_logs/a.html\n"
		if out.String() != want {
			t.Errorf("got\n%s\nwant\n%s", out.String(), want)
		}
	})

	t.Run("query matches body text", func(t *testing.T) {
		var out bytes.Buffer
		cfg := &config.Config{DataDir: dir, Export: "work-logs", Query: "BUDGET", Sort: search.DefaultSortConfig}
		if err := runExport(cfg, &out); err != nil {
			t.Fatalf("runExport failed: %v", err)
		}
		want := "File Name,Creation Date,Link\na.html,2024-01-01,resources/work_logs/a.html\n"
		if out.String() != want {
			t.Errorf("got %q", out.String())
		}
	})

	t.Run("missing catalog", func(t *testing.T) {
		cfg := &config.Config{DataDir: t.TempDir(), Export: "presentations", Sort: search.DefaultSortConfig}
		if err := runExport(cfg, &bytes.Buffer{}); err == nil {
			t.Error("expected an error for a missing content.json")
		}
	})
}
