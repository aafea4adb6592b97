package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SeekingAlphaClient scrapes the news list on a Seeking Alpha symbol page.
// The page exposes no reliable dates, so articles carry a zero Published
// and pass the recency gate by the permissive default.
type SeekingAlphaClient struct {
	baseURL    string
	httpClient *http.Client
	filter     *Filter
}

func NewSeekingAlphaClient() *SeekingAlphaClient {
	return &SeekingAlphaClient{
		baseURL:    "https://seekingalpha.com",
		httpClient: defaultHTTPClient(),
		filter:     NewFilter(DefaultWindowDays),
	}
}

func (c *SeekingAlphaClient) Name() string {
	return "Seeking Alpha"
}

func (c *SeekingAlphaClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	doc, err := fetchDocument(ctx, c.httpClient,
		fmt.Sprintf("%s/symbol/%s/news", c.baseURL, url.PathEscape(ticker)))
	if err != nil {
		return nil, fmt.Errorf("seekingalpha: %w", err)
	}

	var articles []Article
	doc.Find(`a[data-test-id="post-list-item-title"]`).EachWithBreak(func(_ int, link *goquery.Selection) bool {
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}
		if !strings.HasPrefix(href, "http") {
			href = c.baseURL + href
		}

		a := Article{
			Title:     strings.TrimSpace(link.Text()),
			URL:       href,
			Publisher: "Seeking Alpha",
			Source:    c.Name(),
		}

		if c.filter.IsValid(a) {
			articles = append(articles, a)
		}
		return len(articles) < scrapeLimit
	})

	return articles, nil
}
