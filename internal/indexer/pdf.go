package indexer

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFInfo is what the indexer keeps from a presentation file
type PDFInfo struct {
	Pages int
	Text  string
}

// ReadPDF parses a PDF and returns its page count and plain text. Pages
// whose text cannot be decoded contribute nothing but still count.
func ReadPDF(data []byte) (info PDFInfo, err error) {
	// the parser panics on some malformed cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			info, err = PDFInfo{}, fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return PDFInfo{}, fmt.Errorf("failed to parse PDF: %w", err)
	}

	info.Pages = r.NumPage()
	var parts []string
	for i := 1; i <= info.Pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		parts = append(parts, text)
	}
	info.Text = NormalizeText(strings.Join(parts, " "))
	return info, nil
}
