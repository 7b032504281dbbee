// Package config resolves settings from flags, the environment and an
// optional .env file, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/davidpaquet/archive-browser/internal/catalog"
	"github.com/davidpaquet/archive-browser/internal/model"
	"github.com/davidpaquet/archive-browser/internal/search"
)

const (
	EnvDataDir      = "ARCHIVE_DATA_DIR"
	EnvExportDir    = "ARCHIVE_EXPORT_DIR"
	EnvLogDir       = "ARCHIVE_LOG_DIR"
	EnvBaseURL      = "ARCHIVE_BASE_URL"
	EnvResourcesDir = "ARCHIVE_RESOURCES_DIR"
	EnvLogLevel     = "ARCHIVE_LOG_LEVEL"
)

// ErrHelp is returned when -h or --help was given
var ErrHelp = flag.ErrHelp

// Config holds everything main needs to pick a mode and run it
type Config struct {
	DataDir      string
	ExportDir    string
	LogDir       string
	BaseURL      string
	ResourcesDir string
	LogLevel     string

	// Export names the collection to print as CSV; empty runs the browser
	Export string
	Query  string
	Sort   search.SortConfig
	Build  bool
	Watch  bool
}

// ContentPath is the location of content.json
func (c *Config) ContentPath() string {
	return filepath.Join(c.DataDir, "content.json")
}

// IndexPath is the location of search-index.json
func (c *Config) IndexPath() string {
	return filepath.Join(c.DataDir, "search-index.json")
}

// ExportKind maps the -export value to a collection
func (c *Config) ExportKind() (model.Kind, error) {
	switch c.Export {
	case "work-logs", "worklogs", string(model.KindWorkLog):
		return model.KindWorkLog, nil
	case "presentations", string(model.KindPresentation):
		return model.KindPresentation, nil
	}
	return "", fmt.Errorf("unknown export view %q (want work-logs or presentations)", c.Export)
}

// ResolveURL prefixes a catalog URL with the configured base
func (c *Config) ResolveURL(u string) string {
	return catalog.WithBasePath(c.BaseURL, u)
}

// Load reads .env if present, then the environment, then args. Output from
// the flag set goes to usage.
func Load(args []string, usage io.Writer) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:      envOrDefault(EnvDataDir, "data"),
		ExportDir:    envOrDefault(EnvExportDir, "."),
		LogDir:       os.Getenv(EnvLogDir),
		BaseURL:      envOrDefault(EnvBaseURL, "/"),
		ResourcesDir: envOrDefault(EnvResourcesDir, "resources"),
		LogLevel:     envOrDefault(EnvLogLevel, "info"),
		Sort:         search.DefaultSortConfig,
	}

	fs := flag.NewFlagSet("archive-browser", flag.ContinueOnError)
	fs.SetOutput(usage)

	fs.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "Directory holding content.json and search-index.json")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "Data directory (shorthand)")
	fs.StringVar(&cfg.ExportDir, "export-dir", cfg.ExportDir, "Directory CSV exports are saved to")
	fs.StringVar(&cfg.ResourcesDir, "resources", cfg.ResourcesDir, "Resources directory scanned by -build")
	fs.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "Base path prepended to document links")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Log directory (default: ~/.archive-browser/logs)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")

	fs.StringVar(&cfg.Export, "export", "", "Print the CSV export of work-logs or presentations and exit")
	fs.StringVar(&cfg.Export, "e", "", "Export view (shorthand)")
	fs.StringVar(&cfg.Query, "query", "", "Filter applied to -export")
	fs.StringVar(&cfg.Query, "q", "", "Filter (shorthand)")
	sortFlag := fs.String("sort", cfg.Sort.String(), "Sort applied to -export as column:direction")
	fs.BoolVar(&cfg.Build, "build", false, "Rebuild the catalog from the resources directory and exit")
	fs.BoolVar(&cfg.Watch, "watch", false, "Reload the catalog when its files change")
	fs.BoolVar(&cfg.Watch, "w", false, "Watch (shorthand)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	sortCfg, err := search.ParseSortConfig(*sortFlag)
	if err != nil {
		return nil, err
	}
	cfg.Sort = sortCfg

	if cfg.Export != "" {
		kind, err := cfg.ExportKind()
		if err != nil {
			return nil, err
		}
		if kind == model.KindWorkLog && cfg.Sort.Column == search.ColumnSlides {
			return nil, errors.New("work logs cannot be sorted by slides")
		}
	}
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
