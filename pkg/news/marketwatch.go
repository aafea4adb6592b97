package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MarketWatchClient scrapes MarketWatch search results.
type MarketWatchClient struct {
	baseURL    string
	httpClient *http.Client
	filter     *Filter
}

func NewMarketWatchClient() *MarketWatchClient {
	return &MarketWatchClient{
		baseURL:    "https://www.marketwatch.com",
		httpClient: defaultHTTPClient(),
		filter:     NewFilter(DefaultWindowDays),
	}
}

func (c *MarketWatchClient) Name() string {
	return "MarketWatch"
}

func (c *MarketWatchClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	term := companyName
	if term == "" {
		term = ticker
	}

	doc, err := fetchDocument(ctx, c.httpClient,
		fmt.Sprintf("%s/search?q=%s&ts=0&tab=All%%20News", c.baseURL, url.QueryEscape(term)))
	if err != nil {
		return nil, fmt.Errorf("marketwatch: %w", err)
	}

	var articles []Article
	doc.Find("div.article__content").EachWithBreak(func(_ int, result *goquery.Selection) bool {
		link := result.Find("a.link").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		if !strings.HasPrefix(href, "http") {
			href = c.baseURL + href
		}

		dateStr := strings.TrimSpace(result.Find("span.article__timestamp").First().Text())

		a := Article{
			Title:     strings.TrimSpace(link.Text()),
			URL:       href,
			Publisher: "MarketWatch",
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
