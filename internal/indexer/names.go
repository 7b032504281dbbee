package indexer

import (
	"regexp"
	"time"
)

const (
	workLogDateLayout      = "02_01_2006"
	presentationTimeLayout = "2006-01-02_15-04-05"
	outputDateLayout       = "2006-01-02"

	// presentation exports end in "_YYYY-MM-DD_HH-MM-SS.pdf"
	timestampSuffixLen = 24
)

var workLogDatePattern = regexp.MustCompile(`(\d{2}_\d{2}_\d{4})`)

// WorkLogDate finds a dd_mm_yyyy date anywhere in a work log filename
func WorkLogDate(name string) (time.Time, bool) {
	m := workLogDatePattern.FindString(name)
	if m == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(workLogDateLayout, m)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PresentationTimestamp reads the export timestamp right before ".pdf"
func PresentationTimestamp(name string) (time.Time, bool) {
	if len(name) < timestampSuffixLen-1 {
		return time.Time{}, false
	}
	candidate := name[len(name)-23 : len(name)-4]
	t, err := time.Parse(presentationTimeLayout, candidate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PresentationTitle drops the trailing export timestamp from a filename
func PresentationTitle(name string) string {
	if len(name) > timestampSuffixLen-1 {
		return name[:len(name)-timestampSuffixLen]
	}
	return name
}
