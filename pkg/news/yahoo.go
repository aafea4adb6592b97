package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// YahooClient fetches ticker news from the Yahoo Finance search endpoint.
// Yahoo has shipped both flat and nested item schemas over time, so every
// field is extracted through an ordered list of fallback paths.
type YahooClient struct {
	baseURL    string
	httpClient *http.Client
	filter     *Filter
}

func NewYahooClient() *YahooClient {
	return &YahooClient{
		baseURL:    "https://query1.finance.yahoo.com",
		httpClient: defaultHTTPClient(),
		filter:     NewFilter(DefaultWindowDays),
	}
}

func (c *YahooClient) Name() string {
	return "Yahoo Finance"
}

func (c *YahooClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	endpoint := fmt.Sprintf("%s/v1/finance/search?q=%s&newsCount=20&quotesCount=0",
		c.baseURL, url.QueryEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("yahoo request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("yahoo: unexpected status %d", resp.StatusCode)
	}

	var raw yahooResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("yahoo decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.News))
	for _, item := range raw.News {
		title := firstNonEmpty(item.Title, item.Content.Title)
		link := firstNonEmpty(
			item.Link,
			item.ClickThroughURL.URL,
			item.Content.CanonicalURL.URL,
			item.CanonicalURL.URL,
		)
		if title == "" || link == "" {
			continue
		}

		published := NormalizeEpoch(item.ProviderPublishTime)
		if published.IsZero() {
			published = Normalize(item.Content.PubDate)
		}

		a := Article{
			Title:     title,
			URL:       link,
			Publisher: firstNonEmpty(item.Provider.DisplayName, item.Content.Provider.DisplayName, item.Publisher, "Yahoo Finance"),
			Published: published,
			Source:    c.Name(),
		}

		if c.filter.IsValid(a) {
			articles = append(articles, a)
		}
	}

	return articles, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

type yahooResponse struct {
	News []yahooItem `json:"news"`
}

type yahooItem struct {
	Title               string        `json:"title"`
	Link                string        `json:"link"`
	Publisher           string        `json:"publisher"`
	ProviderPublishTime int64         `json:"providerPublishTime"`
	ClickThroughURL     yahooURL      `json:"clickThroughUrl"`
	CanonicalURL        yahooURL      `json:"canonicalUrl"`
	Provider            yahooProvider `json:"provider"`
	Content             yahooContent  `json:"content"`
}

type yahooContent struct {
	Title        string        `json:"title"`
	PubDate      string        `json:"pubDate"`
	CanonicalURL yahooURL      `json:"canonicalUrl"`
	Provider     yahooProvider `json:"provider"`
}

type yahooURL struct {
	URL string `json:"url"`
}

type yahooProvider struct {
	DisplayName string `json:"displayName"`
}
