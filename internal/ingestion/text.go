// Package ingestion converts uploaded CV material into raw text suitable
// for LLM extraction. OCR of scanned documents is out of scope; inputs are
// plain text or HTML exports (job boards, profile pages).
package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed before text extraction: they never carry CV
// content and inflate the prompt.
var noiseSelectors = []string{"script", "style", "noscript", "nav", "footer", "header", "iframe", "svg"}

// TextFromHTML extracts readable text from an HTML document.
func TextFromHTML(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var blocks []string
	doc.Find("body").Each(func(_ int, body *goquery.Selection) {
		blocks = append(blocks, body.Text())
	})
	if len(blocks) == 0 {
		blocks = append(blocks, doc.Text())
	}

	return CollapseWhitespace(strings.Join(blocks, "\n")), nil
}

// FromUpload returns the raw text of an uploaded document based on its
// declared content type. Plain text passes through; HTML is stripped.
func FromUpload(contentType string, data []byte) (string, error) {
	switch {
	case strings.Contains(contentType, "html"):
		return TextFromHTML(string(data))
	case strings.HasPrefix(contentType, "text/"), contentType == "":
		return CollapseWhitespace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported content type: %s", contentType)
	}
}

// CollapseWhitespace trims lines and collapses blank runs so the LLM
// prompt stays compact.
func CollapseWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, strings.Join(strings.Fields(line), " "))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
