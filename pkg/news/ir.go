package news

import (
	"context"
	"fmt"
)

// IRWindowDays is the lookback the investor-relations search requests from
// its provider. Press releases and earnings coverage stay relevant longer
// than general news, so this is wider than the general 7-day window.
const IRWindowDays = 30

// IRClient surfaces investor-relations material (press releases, earnings)
// through a targeted Google News search. Searching beats scraping arbitrary
// IR sites, which have no stable structure.
type IRClient struct {
	google *GoogleNewsClient
}

func NewIRClient() *IRClient {
	return &IRClient{google: NewGoogleNewsClient(IRWindowDays)}
}

func (c *IRClient) Name() string {
	return "Investor Relations"
}

func (c *IRClient) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	term := companyName
	if term == "" {
		term = ticker
	}

	query := fmt.Sprintf("%s Investor Relations press release earnings when:%dd", term, IRWindowDays)
	articles, err := c.google.search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ir news: %w", err)
	}

	for i := range articles {
		articles[i].Source = c.Name()
		if articles[i].Publisher == "" {
			articles[i].Publisher = "IR Source"
		}
	}

	return articles, nil
}
