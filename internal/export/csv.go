// Package export turns the rows of a view into CSV and hands the text to a
// download target.
package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davidpaquet/archive-browser/internal/model"
)

const (
	// MIMEType is the content type offered for saved exports
	MIMEType = "text/csv;charset=utf-8;"

	WorkLogsFilename      = "work-logs.csv"
	PresentationsFilename = "presentations.csv"
)

var (
	WorkLogHeaders      = []string{"File Name", "Creation Date", "Link"}
	PresentationHeaders = []string{"File Name", "Slides", "Creation Date", "Link"}
)

// BuildCSV serializes a header row and data rows. Cells may be strings,
// integers, floats or nil. Rows are joined with LF and there is no trailing
// newline.
func BuildCSV(headers []string, rows [][]any) string {
	lines := make([]string, 0, len(rows)+1)

	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = escapeCell(h)
	}
	lines = append(lines, strings.Join(cells, ","))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeCell(formatCell(cell))
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case int:
		return strconv.Itoa(v)
	case *int:
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// escapeCell quotes a cell only when it holds a quote, comma or newline
func escapeCell(s string) string {
	if !strings.ContainsAny(s, "\",\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WorkLogRows builds the export rows of the work logs view
func WorkLogRows(entries model.Collection) [][]any {
	rows := make([][]any, len(entries))
	for i, e := range entries {
		rows[i] = []any{e.Title, e.DisplayDate(), e.URL}
	}
	return rows
}

// PresentationRows builds the export rows of the presentations view
func PresentationRows(entries model.Collection) [][]any {
	rows := make([][]any, len(entries))
	for i, e := range entries {
		var slides any
		if e.Slides != nil {
			slides = *e.Slides
		}
		rows[i] = []any{e.Title, slides, e.DisplayDate(), e.URL}
	}
	return rows
}

// WorkLogsCSV is the full work logs export
func WorkLogsCSV(entries model.Collection) string {
	return BuildCSV(WorkLogHeaders, WorkLogRows(entries))
}

// PresentationsCSV is the full presentations export
func PresentationsCSV(entries model.Collection) string {
	return BuildCSV(PresentationHeaders, PresentationRows(entries))
}
