package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const scrapeLimit = 50

// FinVizClient scrapes the news table on a FinViz quote page.
type FinVizClient struct {
	baseURL    string
	httpClient *http.Client
	filter     *Filter
}

func NewFinVizClient() *FinVizClient {
	return &FinVizClient{
		baseURL:    "https://finviz.com",
		httpClient: defaultHTTPClient(),
		filter:     NewFilter(DefaultWindowDays),
	}
}

func (c *FinVizClient) Name() string {
	return "FinViz"
}

func (c *FinVizClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	doc, err := fetchDocument(ctx, c.httpClient,
		fmt.Sprintf("%s/quote.ashx?t=%s", c.baseURL, url.QueryEscape(ticker)))
	if err != nil {
		return nil, fmt.Errorf("finviz: %w", err)
	}

	var articles []Article
	doc.Find("#news-table tr").EachWithBreak(func(_ int, row *goquery.Selection) bool {
		cols := row.Find("td")
		if cols.Length() < 2 {
			return true
		}

		dateStr := strings.TrimSpace(cols.Eq(0).Text())
		link := cols.Eq(1).Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}

		a := Article{
			Title:     strings.TrimSpace(link.Text()),
			URL:       href,
			Publisher: "FinViz",
			Published: Normalize(dateStr),
			Source:    c.Name(),
		}

		if c.filter.IsValid(a) {
			articles = append(articles, a)
		}
		return len(articles) < scrapeLimit
	})

	return articles, nil
}

func fetchDocument(ctx context.Context, client *http.Client, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}
