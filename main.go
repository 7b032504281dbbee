package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/davidpaquet/archive-browser/internal/catalog"
	"github.com/davidpaquet/archive-browser/internal/config"
	"github.com/davidpaquet/archive-browser/internal/export"
	"github.com/davidpaquet/archive-browser/internal/indexer"
	"github.com/davidpaquet/archive-browser/internal/logging"
	"github.com/davidpaquet/archive-browser/internal/ui"
	"github.com/davidpaquet/archive-browser/internal/view"
)

const version = "v0.3.0"

func main() {
	cfg, err := config.Load(os.Args[1:], io.Discard)
	if errors.Is(err, config.ErrHelp) {
		showHelp()
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\nRun with -h for usage.\n", err)
		os.Exit(2)
	}

	// headless modes also log to stderr; the TUI owns the terminal
	headless := cfg.Build || cfg.Export != ""
	if err := logging.Init(cfg.LogDir, cfg.LogLevel, headless); err != nil {
		log.Fatal("Failed to initialize logging:", err)
	}
	defer logging.Close()

	switch {
	case cfg.Build:
		err = runBuild(cfg)
	case cfg.Export != "":
		err = runExport(cfg, os.Stdout)
	default:
		err = runBrowser(cfg)
	}
	if err != nil {
		logging.Error("Exiting", "error", err)
		logging.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runBuild(cfg *config.Config) error {
	res, err := indexer.Build(indexer.Options{
		ResourcesDir: cfg.ResourcesDir,
		OutputDir:    cfg.DataDir,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d work logs and %d presentations to %s\n",
		len(res.Content.WorkLogs), len(res.Content.Presentations), res.ContentPath)
	fmt.Printf("Wrote %d search entries to %s\n", len(res.Index), res.IndexPath)
	return nil
}

// runExport prints the CSV of one view, filtered and sorted like the browser would
func runExport(cfg *config.Config, w io.Writer) error {
	kind, err := cfg.ExportKind()
	if err != nil {
		return err
	}

	cat, err := catalog.NewLoader().Load(cfg.ContentPath(), cfg.IndexPath())
	if err != nil {
		return err
	}

	v := view.New(kind, cat.Collection(kind), cat.Texts(kind))
	v.SetFilter(cfg.Query)
	if err := v.SetSort(cfg.Sort); err != nil {
		return err
	}

	logging.Info("Exporting", "view", kind, "query", cfg.Query, "sort", cfg.Sort.String(), "rows", len(v.Rows()))
	return v.Export(export.WriterTarget{W: w})
}

func runBrowser(cfg *config.Config) error {
	opts := ui.Options{
		Version:     version,
		ContentPath: cfg.ContentPath(),
		IndexPath:   cfg.IndexPath(),
		ExportDir:   cfg.ExportDir,
		ResolveURL:  cfg.ResolveURL,
	}

	if cfg.Watch {
		w, err := catalog.NewWatcher(filepath.Dir(cfg.ContentPath()),
			filepath.Base(cfg.ContentPath()), filepath.Base(cfg.IndexPath()))
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", cfg.DataDir, err)
		}
		defer w.Close()
		opts.Reloads = w.Reloads()
	}

	logging.Info("Starting browser", "version", version, "data_dir", cfg.DataDir, "watch", cfg.Watch)

	p := tea.NewProgram(
		ui.NewApp(opts),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

func showHelp() {
	fmt.Println(`Archive Browser

A terminal browser for the work log and presentation archive.

Usage:
  archive-browser [options]

Options:
  -d, --data-dir PATH      Directory with content.json and search-index.json (default: data)
  --export-dir PATH        Where [e] saves CSV exports (default: .)
  --resources PATH         Resources scanned by --build (default: resources)
  --base-url URL           Base path prepended to links (default: /)
  --log-dir PATH           Log directory (default: ~/.archive-browser/logs)
  --log-level LEVEL        debug, info, warn or error (default: info)
  -w, --watch              Reload when the catalog files change
  -e, --export VIEW        Print work-logs or presentations as CSV and exit
  -q, --query TEXT         Filter for --export
  --sort COLUMN[:DIR]      Sort for --export, e.g. title:asc (default: createdDate:desc)
  --build                  Rebuild the catalog from the resources directory and exit
  -h, --help               Show this help message

Environment Variables:
  ARCHIVE_DATA_DIR, ARCHIVE_EXPORT_DIR, ARCHIVE_RESOURCES_DIR,
  ARCHIVE_BASE_URL, ARCHIVE_LOG_DIR, ARCHIVE_LOG_LEVEL
  A .env file in the working directory is read first.

Keyboard Shortcuts:
  1/2/3, Tab             Home, Work Logs, Presentations
  ↑/↓, j/k               Navigate
  /                      Filter (Esc clears)
  t / d / s              Sort by title, date, slides (again to flip)
  e                      Save the visible rows as CSV
  y                      Copy the visible rows as CSV
  :                      Command palette
  r                      Reload catalog
  q                      Quit

Examples:
  archive-browser -d ./src/data --watch
  archive-browser --export presentations -q budget --sort slides:desc > decks.csv
  archive-browser --build --resources ./public/resources -d ./src/data`)
}
