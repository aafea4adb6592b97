package news

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// GoogleNewsClient searches the Google News RSS feed. It is the only source
// used for non-equity instruments, and part of the broad set for equities.
type GoogleNewsClient struct {
	baseURL    string
	parser     *gofeed.Parser
	filter     *Filter
	windowDays int
}

// NewGoogleNewsClient builds a client with the given provider-side lookback
// window. General news uses 7 days.
func NewGoogleNewsClient(windowDays int) *GoogleNewsClient {
	if windowDays <= 0 {
		windowDays = 7
	}
	parser := gofeed.NewParser()
	parser.Client = defaultHTTPClient()
	parser.UserAgent = userAgent
	return &GoogleNewsClient{
		baseURL:    "https://news.google.com",
		parser:     parser,
		filter:     NewFilter(DefaultWindowDays),
		windowDays: windowDays,
	}
}

func (c *GoogleNewsClient) Name() string {
	return "Google News"
}

func (c *GoogleNewsClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	term := companyName
	if term == "" {
		term = ticker
	}
	return c.search(ctx, fmt.Sprintf("%s when:%dd", term, c.windowDays))
}

func (c *GoogleNewsClient) search(ctx context.Context, query string) ([]Article, error) {
	feedURL := fmt.Sprintf("%s/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en",
		c.baseURL, url.QueryEscape(query))

	feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("google news fetch: %w", err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		title, publisher := splitHeadline(item.Title)

		var published time.Time
		if item.PublishedParsed != nil {
			published = *item.PublishedParsed
		} else {
			published = Normalize(item.Published)
		}

		a := Article{
			Title:     title,
			URL:       cleanTrackingParams(item.Link),
			Publisher: publisher,
			Published: published,
			Source:    c.Name(),
		}

		if c.filter.IsValid(a) {
			articles = append(articles, a)
		}
	}

	return articles, nil
}

// cleanTrackingParams strips the Google redirect tracking parameters that
// break shared links.
func cleanTrackingParams(link string) string {
	if i := strings.Index(link, "&ved="); i >= 0 {
		link = link[:i]
	}
	if i := strings.Index(link, "&usg="); i >= 0 {
		link = link[:i]
	}
	return link
}

// splitHeadline separates the publisher suffix Google News appends to item
// titles ("Headline - Publisher").
func splitHeadline(title string) (string, string) {
	if i := strings.LastIndex(title, " - "); i > 0 {
		return title[:i], title[i+3:]
	}
	return title, ""
}
