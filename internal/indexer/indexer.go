// Package indexer scans the resources directory and writes the content
// manifest and the full-text search index the browser reads.
package indexer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/davidpaquet/archive-browser/internal/logging"
	"github.com/davidpaquet/archive-browser/internal/model"
)

const (
	WorkLogsDir      = "work_logs"
	PresentationsDir = "presentations"

	ContentFile = "content.json"
	IndexFile   = "search-index.json"

	generatedAtLayout = "2006-01-02T15:04:05.000000Z"
)

// Options controls where the indexer reads and writes
type Options struct {
	ResourcesDir string
	OutputDir    string
	// URLPrefix is prepended to every entry URL, "resources" by default
	URLPrefix string
	Now       func() time.Time
}

// Result summarizes a build
type Result struct {
	Content     model.ContentPayload
	Index       []model.SearchIndexEntry
	ContentPath string
	IndexPath   string
}

type scanned struct {
	entry model.Entry
	text  string
	when  time.Time
	dated bool
	// skipIndex marks work logs whose text could not be read. Unreadable
	// presentations stay in the index with empty text.
	skipIndex bool
}

// Build scans both resource folders and writes content.json and
// search-index.json into the output directory.
func Build(opts Options) (*Result, error) {
	if opts.URLPrefix == "" {
		opts.URLPrefix = "resources"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger := logging.WithPrefix("indexer")

	workLogs, err := scanWorkLogs(opts, logger)
	if err != nil {
		return nil, err
	}
	presentations, err := scanPresentations(opts, logger)
	if err != nil {
		return nil, err
	}

	generatedAt := opts.Now().UTC().Format(generatedAtLayout)
	res := &Result{
		Content: model.ContentPayload{
			GeneratedAt:   &generatedAt,
			WorkLogs:      entriesOf(workLogs),
			Presentations: entriesOf(presentations),
		},
		Index:       append(indexOf(model.KindWorkLog, workLogs), indexOf(model.KindPresentation, presentations)...),
		ContentPath: filepath.Join(opts.OutputDir, ContentFile),
		IndexPath:   filepath.Join(opts.OutputDir, IndexFile),
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := writeJSON(res.ContentPath, res.Content); err != nil {
		return nil, err
	}
	if err := writeJSON(res.IndexPath, res.Index); err != nil {
		return nil, err
	}

	logger.Info("Catalog built",
		"work_logs", len(res.Content.WorkLogs),
		"presentations", len(res.Content.Presentations),
		"index_entries", len(res.Index),
		"output", opts.OutputDir)
	return res, nil
}

// listFiles returns the names in dir with the given extension, sorted by
// name. A missing directory yields no files.
func listFiles(dir, ext string, logger *log.Logger) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("Resource directory not found", "dir", dir)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ext) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func scanWorkLogs(opts Options, logger *log.Logger) ([]scanned, error) {
	dir := filepath.Join(opts.ResourcesDir, WorkLogsDir)
	names, err := listFiles(dir, ".html", logger)
	if err != nil {
		return nil, err
	}

	out := make([]scanned, 0, len(names))
	for _, name := range names {
		s := scanned{entry: model.Entry{
			FileName: name,
			Title:    name,
			URL:      path.Join(opts.URLPrefix, WorkLogsDir, name),
		}}
		if t, ok := WorkLogDate(name); ok {
			s.when, s.dated = t, true
			s.entry.CreatedDate = model.StringPtr(t.Format(outputDateLayout))
		}

		text, err := readHTMLText(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("Failed to extract work log text", "file", name, "error", err)
			s.skipIndex = true
		}
		s.text = text
		out = append(out, s)
	}
	sortNewestFirst(out)
	return out, nil
}

func readHTMLText(p string) (string, error) {
	f, err := os.Open(p)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return ExtractHTMLText(f)
}

func scanPresentations(opts Options, logger *log.Logger) ([]scanned, error) {
	dir := filepath.Join(opts.ResourcesDir, PresentationsDir)
	names, err := listFiles(dir, ".pdf", logger)
	if err != nil {
		return nil, err
	}

	out := make([]scanned, 0, len(names))
	for _, name := range names {
		s := scanned{entry: model.Entry{
			FileName: name,
			Title:    PresentationTitle(name),
			URL:      path.Join(opts.URLPrefix, PresentationsDir, name),
		}}
		if t, ok := PresentationTimestamp(name); ok {
			s.when, s.dated = t, true
			s.entry.CreatedDate = model.StringPtr(t.Format(outputDateLayout))
		} else {
			logger.Warn("Failed to extract date from presentation", "file", name)
		}

		info, err := readPDF(filepath.Join(dir, name))
		if err != nil {
			logger.Warn("Failed to extract presentation text", "file", name, "error", err)
		}
		if info.Pages > 0 {
			s.entry.Slides = model.IntPtr(info.Pages)
		}
		s.text = info.Text
		out = append(out, s)
	}
	sortNewestFirst(out)
	return out, nil
}

func readPDF(p string) (PDFInfo, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return PDFInfo{}, err
	}
	return ReadPDF(data)
}

// sortNewestFirst orders by timestamp descending with undated entries last
func sortNewestFirst(items []scanned) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.dated != b.dated {
			return a.dated
		}
		return a.when.After(b.when)
	})
}

func entriesOf(items []scanned) model.Collection {
	out := make(model.Collection, len(items))
	for i, s := range items {
		out[i] = s.entry
	}
	return out
}

func indexOf(kind model.Kind, items []scanned) []model.SearchIndexEntry {
	out := make([]model.SearchIndexEntry, 0, len(items))
	for _, s := range items {
		if s.skipIndex {
			continue
		}
		out = append(out, model.SearchIndexEntry{
			Kind:        kind,
			FileName:    s.entry.FileName,
			Title:       s.entry.FileName,
			URL:         s.entry.URL,
			CreatedDate: s.entry.CreatedDate,
			Text:        s.text,
			TextLength:  CountWords(s.text),
		})
	}
	return out
}

// writeJSON writes v with two-space indentation and a trailing newline,
// replacing the target atomically.
func writeJSON(p string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(p), err)
	}

	tmp := p + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(p), err)
	}
	if err := os.Rename(tmp, p); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(p), err)
	}
	return nil
}
