package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davidpaquet/archive-browser/internal/model"
)

func TestBuildCSVQuotesAndBlanks(t *testing.T) {
	got := BuildCSV([]string{"A", "B"}, [][]any{
		{`he said "hi"`, "x,y"},
		{1, nil},
	})
	want := "A,B\n\"he said \"\"hi\"\"\",\"x,y\"\n1,"
	if got != want {
		t.Errorf("BuildCSV() = %q, want %q", got, want)
	}
}

func TestBuildCSVQuoting(t *testing.T) {
	tests := []struct {
		name string
		cell any
		want string
	}{
		{name: "plain", cell: "plain text", want: "plain text"},
		{name: "leading space untouched", cell: " padded ", want: " padded "},
		{name: "newline", cell: "two\nlines", want: "\"two\nlines\""},
		{name: "carriage return alone", cell: "a\rb", want: "a\rb"},
		{name: "quote", cell: `5" disk`, want: `"5"" disk"`},
		{name: "comma", cell: "a,b", want: `"a,b"`},
		{name: "int", cell: 42, want: "42"},
		{name: "float", cell: 2.5, want: "2.5"},
		{name: "nil", cell: nil, want: ""},
		{name: "nil string pointer", cell: (*string)(nil), want: ""},
		{name: "int pointer", cell: model.IntPtr(7), want: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCSV([]string{"h"}, [][]any{{tt.cell}})
			if got != "h\n"+tt.want {
				t.Errorf("cell %v serialized to %q, want %q", tt.cell, strings.TrimPrefix(got, "h\n"), tt.want)
			}
		})
	}
}

func TestBuildCSVNoRows(t *testing.T) {
	if got := BuildCSV([]string{"File Name", "Link"}, nil); got != "File Name,Link" {
		t.Errorf("header-only export = %q", got)
	}
}

func TestWorkLogsCSV(t *testing.T) {
	entries := model.Collection{
		{FileName: "a.html", Title: "Log, part 1", URL: "resources/work_logs/a.html", CreatedDate: model.StringPtr("2024-01-02")},
		{FileName: "b.html", Title: "b.html", URL: "resources/work_logs/b.html"},
	}
	want := "File Name,Creation Date,Link\n" +
		"\"Log, part 1\",2024-01-02,resources/work_logs/a.html\n" +
		"b.html,Unknown,resources/work_logs/b.html"
	if got := WorkLogsCSV(entries); got != want {
		t.Errorf("WorkLogsCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestPresentationsCSV(t *testing.T) {
	entries := model.Collection{
		{FileName: "d.pdf", Title: "Deck", URL: "u1", CreatedDate: model.StringPtr("2024-03-04"), Slides: model.IntPtr(12)},
		{FileName: "e.pdf", Title: "Other", URL: "u2"},
	}
	want := "File Name,Slides,Creation Date,Link\nDeck,12,2024-03-04,u1\nOther,,Unknown,u2"
	if got := PresentationsCSV(entries); got != want {
		t.Errorf("PresentationsCSV() = %q, want %q", got, want)
	}
}

func TestFileTarget(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	target := NewFileTarget(dir)

	if err := target.Save(WorkLogsFilename, "A,B\n1,2"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(target.Path(WorkLogsFilename))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != "A,B\n1,2" {
		t.Errorf("export content = %q", data)
	}

	leftovers, _ := filepath.Glob(filepath.Join(dir, ".*"))
	if len(leftovers) != 0 {
		t.Errorf("staging files left behind: %v", leftovers)
	}
}

func TestFileTargetUnavailable(t *testing.T) {
	t.Run("no directory", func(t *testing.T) {
		err := NewFileTarget("").Save("x.csv", "x")
		if !errors.Is(err, ErrDownloadUnavailable) {
			t.Errorf("expected ErrDownloadUnavailable, got %v", err)
		}
	})

	t.Run("directory is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain")
		if err := os.WriteFile(file, nil, 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
		err := NewFileTarget(file).Save("x.csv", "x")
		if !errors.Is(err, ErrDownloadUnavailable) {
			t.Errorf("expected ErrDownloadUnavailable, got %v", err)
		}
	})
}

func TestWriterTarget(t *testing.T) {
	var buf bytes.Buffer
	if err := (WriterTarget{W: &buf}).Save("x.csv", "a,b"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if buf.String() != "a,b\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
	if err := (WriterTarget{}).Save("x.csv", "a"); !errors.Is(err, ErrDownloadUnavailable) {
		t.Errorf("nil writer should be unavailable, got %v", err)
	}
}
