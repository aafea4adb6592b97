package news

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Extractor pulls the main text out of an article page for summarization
// input. Best effort against arbitrary third-party HTML: any failure
// (network, paywall, unparseable markup) yields an empty string.
type Extractor struct {
	httpClient *http.Client
}

func NewExtractor() *Extractor {
	return &Extractor{httpClient: defaultHTTPClient()}
}

// Extract returns the article body text, or "" when nothing usable could
// be retrieved.
func (e *Extractor) Extract(ctx context.Context, articleURL string) string {
	doc, err := fetchDocument(ctx, e.httpClient, articleURL)
	if err != nil {
		slog.Error("error extracting article content", "url", articleURL, "error", err)
		return ""
	}

	// Prefer paragraphs inside an <article> element; fall back to the
	// whole page when the markup has no semantic container.
	scope := doc.Find("article")
	if scope.Length() == 0 {
		scope = doc.Selection
	}

	var parts []string
	scope.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := strings.TrimSpace(p.Text())
		if len(text) >= 40 {
			parts = append(parts, text)
		}
	})

	return strings.Join(parts, "\n\n")
}
