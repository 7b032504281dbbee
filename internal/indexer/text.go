package indexer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// ExtractHTMLText returns the visible text of an HTML document with script
// and style content removed and whitespace collapsed to single spaces.
func ExtractHTMLText(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			parts = append(parts, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return NormalizeText(strings.Join(parts, " ")), nil
}

// NormalizeText collapses runs of whitespace and trims the ends
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CountWords counts word tokens in text
func CountWords(text string) int {
	return len(wordPattern.FindAllStringIndex(text, -1))
}
