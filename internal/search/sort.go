package search

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/davidpaquet/archive-browser/internal/model"
)

// Column is a sortable field
type Column int

const (
	ColumnTitle Column = iota
	ColumnCreatedDate
	ColumnSlides
)

func (c Column) String() string {
	switch c {
	case ColumnTitle:
		return "title"
	case ColumnCreatedDate:
		return "createdDate"
	case ColumnSlides:
		return "slides"
	default:
		return fmt.Sprintf("Column(%d)", int(c))
	}
}

// ParseColumn accepts the column names used in content.json
func ParseColumn(s string) (Column, error) {
	switch strings.ToLower(s) {
	case "title":
		return ColumnTitle, nil
	case "createddate", "date":
		return ColumnCreatedDate, nil
	case "slides":
		return ColumnSlides, nil
	}
	return 0, fmt.Errorf("unknown sort column %q", s)
}

// Direction is the sort order
type Direction int

const (
	Asc Direction = iota
	Desc
)

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// ParseDirection accepts "asc" or "desc"
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return 0, fmt.Errorf("unknown sort direction %q", s)
}

// SortConfig is the column and direction applied to a view
type SortConfig struct {
	Column    Column
	Direction Direction
}

// DefaultSortConfig is newest first
var DefaultSortConfig = SortConfig{Column: ColumnCreatedDate, Direction: Desc}

// DefaultDirection is asc for title and desc for every other column
func DefaultDirection(c Column) Direction {
	if c == ColumnTitle {
		return Asc
	}
	return Desc
}

// Toggle returns the config after the user picks col. Picking the active
// column flips direction; a new column starts at its default direction.
func (s SortConfig) Toggle(col Column) SortConfig {
	if s.Column == col {
		if s.Direction == Asc {
			return SortConfig{Column: col, Direction: Desc}
		}
		return SortConfig{Column: col, Direction: Asc}
	}
	return SortConfig{Column: col, Direction: DefaultDirection(col)}
}

func (s SortConfig) String() string {
	return s.Column.String() + ":" + s.Direction.String()
}

// ParseSortConfig parses "column" or "column:direction"
func ParseSortConfig(s string) (SortConfig, error) {
	name, dir, hasDir := strings.Cut(s, ":")
	col, err := ParseColumn(name)
	if err != nil {
		return SortConfig{}, err
	}
	cfg := SortConfig{Column: col, Direction: DefaultDirection(col)}
	if hasDir {
		if cfg.Direction, err = ParseDirection(dir); err != nil {
			return SortConfig{}, err
		}
	}
	return cfg, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate converts a createdDate to epoch milliseconds. Values without a zone
// are read as UTC.
func ParseDate(value *string) (int64, bool) {
	if value == nil {
		return 0, false
	}
	s := strings.TrimSpace(*value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UnixMilli(), true
		}
	}
	return 0, false
}

// dateKey maps missing or unparseable dates to negative infinity
func dateKey(e model.Entry) float64 {
	ms, ok := ParseDate(e.CreatedDate)
	if !ok {
		return math.Inf(-1)
	}
	return float64(ms)
}

func slidesKey(e model.Entry) float64 {
	if e.Slides == nil {
		return math.Inf(-1)
	}
	return float64(*e.Slides)
}

func compareKeys(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Sort returns a new slice ordered by cfg. Equal keys keep their input order.
func Sort(entries model.Collection, cfg SortConfig) model.Collection {
	sorted := append(model.Collection{}, entries...)

	var cmp func(a, b model.Entry) int
	switch cfg.Column {
	case ColumnTitle:
		// root locale keeps the order reproducible across hosts
		coll := collate.New(language.Und)
		cmp = func(a, b model.Entry) int {
			return coll.CompareString(a.Title, b.Title)
		}
	case ColumnSlides:
		cmp = func(a, b model.Entry) int {
			return compareKeys(slidesKey(a), slidesKey(b))
		}
	default:
		keys := make(map[string]float64, len(sorted))
		cmp = func(a, b model.Entry) int {
			return compareKeys(cachedDateKey(keys, a), cachedDateKey(keys, b))
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		c := cmp(sorted[i], sorted[j])
		if cfg.Direction == Desc {
			c = -c
		}
		return c < 0
	})
	return sorted
}

func cachedDateKey(keys map[string]float64, e model.Entry) float64 {
	raw := e.Date()
	if k, ok := keys[raw]; ok {
		return k
	}
	k := dateKey(e)
	keys[raw] = k
	return k
}
