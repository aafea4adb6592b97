package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReutersClient scrapes Reuters site search results.
type ReutersClient struct {
	baseURL    string
	httpClient *http.Client
	filter     *Filter
}

func NewReutersClient() *ReutersClient {
	return &ReutersClient{
		baseURL:    "https://www.reuters.com",
		httpClient: defaultHTTPClient(),
		filter:     NewFilter(DefaultWindowDays),
	}
}

func (c *ReutersClient) Name() string {
	return "Reuters"
}

func (c *ReutersClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	term := companyName
	if term == "" {
		term = ticker
	}

	doc, err := fetchDocument(ctx, c.httpClient,
		fmt.Sprintf("%s/site-search/?query=%s", c.baseURL, url.QueryEscape(term)))
	if err != nil {
		return nil, fmt.Errorf("reuters: %w", err)
	}

	var articles []Article
	doc.Find("div.search-result-indiv").EachWithBreak(func(_ int, result *goquery.Selection) bool {
		link := result.Find("a").First()
		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}
		if !strings.HasPrefix(href, "http") {
			href = c.baseURL + href
		}

		dateStr, _ := result.Find("time").First().Attr("datetime")

		a := Article{
			Title:     strings.TrimSpace(link.Text()),
			URL:       href,
			Publisher: "Reuters",
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
