package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractHTMLText converts an HTML resume export into raw text suitable for
// NormalizeText. Script, style and navigation chrome are removed; block
// elements become line breaks so the section scanner still sees one logical
// item per line.
func ExtractHTMLText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer, header").Remove()

	var sb strings.Builder
	doc.Find("body").Find("h1, h2, h3, h4, p, li, div, td, br").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; containers repeat their children's text
		if s.Children().Length() > 2 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		// Fallback: whole-body text for documents without block structure
		text = doc.Find("body").Text()
	}

	return dedupeLines(text), nil
}

// dedupeLines removes consecutive duplicate lines that nested block elements
// produce when both parent and child match the selector.
func dedupeLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	prev := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && trimmed == prev {
			continue
		}
		out = append(out, trimmed)
		prev = trimmed
	}
	return strings.Join(out, "\n")
}
