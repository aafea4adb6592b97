package news

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// BenzingaClient scrapes the story blocks on a Benzinga quote page.
type BenzingaClient struct {
	baseURL    string
	httpClient *http.Client
	filter     *Filter
}

func NewBenzingaClient() *BenzingaClient {
	return &BenzingaClient{
		baseURL:    "https://www.benzinga.com",
		httpClient: defaultHTTPClient(),
		filter:     NewFilter(DefaultWindowDays),
	}
}

func (c *BenzingaClient) Name() string {
	return "Benzinga"
}

func (c *BenzingaClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	doc, err := fetchDocument(ctx, c.httpClient,
		fmt.Sprintf("%s/quote/%s", c.baseURL, url.PathEscape(ticker)))
	if err != nil {
		return nil, fmt.Errorf("benzinga: %w", err)
	}

	var articles []Article
	doc.Find("div.story-block").EachWithBreak(func(_ int, item *goquery.Selection) bool {
		link := item.Find("a").First()
		href, ok := link.Attr("href")
		if !ok {
			return true
		}
		if !strings.HasPrefix(href, "http") {
			href = c.baseURL + href
		}

		dateStr, _ := item.Find("time").First().Attr("datetime")

		a := Article{
			Title:     strings.TrimSpace(link.Text()),
			URL:       href,
			Publisher: "Benzinga",
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
