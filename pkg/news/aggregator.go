package news

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultConcurrency   = 4
	defaultSourceTimeout = 15 * time.Second
)

// Aggregator fans out to every source applicable to an instrument and
// merges the results. Aggregate is total: source failures are logged and
// contained, metadata failures degrade, and the worst case is an empty
// list.
type Aggregator struct {
	quotes        QuoteService
	stockSources  []Source
	otherSources  []Source
	concurrency   int
	sourceTimeout time.Duration
}

// NewAggregator wires the full provider set. Equities and ETFs get every
// source; crypto, futures, indices and unknowns get only the general web
// news search, where structured-finance providers return noise.
func NewAggregator(quotes QuoteService) *Aggregator {
	google := NewGoogleNewsClient(7)
	return &Aggregator{
		quotes: quotes,
		stockSources: []Source{
			NewYahooClient(),
			google,
			NewFinVizClient(),
			NewMarketWatchClient(),
			NewBenzingaClient(),
			NewReutersClient(),
			NewSeekingAlphaClient(),
			NewIRClient(),
		},
		otherSources:  []Source{google},
		concurrency:   defaultConcurrency,
		sourceTimeout: defaultSourceTimeout,
	}
}

// Aggregate fetches, filters and deduplicates news for a ticker. The
// returned list contains each URL exactly once, ordered by source priority
// and then first occurrence.
func (a *Aggregator) Aggregate(ctx context.Context, ticker string) []Article {
	quote := a.resolveQuote(ctx, ticker)

	sources := a.otherSources
	if quote.Type == TypeEquity || quote.Type == TypeETF {
		sources = a.stockSources
	} else {
		slog.Info("non-stock instrument, restricting to web news search",
			"ticker", ticker, "type", quote.Type)
	}

	slog.Info("fetching news", "ticker", ticker, "name", quote.Name,
		"type", quote.Type, "sources", len(sources))

	results := make([][]Article, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			fctx, cancel := context.WithTimeout(gctx, a.sourceTimeout)
			defer cancel()

			articles, err := src.Fetch(fctx, ticker, quote.Name)
			if err != nil {
				// A failed source must not take its siblings down,
				// so the error stops here.
				slog.Error("error fetching articles", "source", src.Name(), "ticker", ticker, "error", err)
				return nil
			}
			results[i] = articles
			return nil
		})
	}
	g.Wait()

	var all []Article
	for _, r := range results {
		all = append(all, r...)
	}

	unique := dedupeByURL(all)
	slog.Info("aggregation complete", "ticker", ticker, "fetched", len(all), "unique", len(unique))
	return unique
}

func (a *Aggregator) resolveQuote(ctx context.Context, ticker string) Quote {
	quote, err := a.quotes.Lookup(ctx, ticker)
	if err != nil {
		slog.Warn("error resolving instrument metadata", "ticker", ticker, "error", err)
		return Quote{Name: ticker, Type: TypeUnknown}
	}
	if quote.Name == "" {
		quote.Name = ticker
	}
	return quote
}

// dedupeByURL keeps the first occurrence of each URL, preserving order.
func dedupeByURL(articles []Article) []Article {
	seen := make(map[string]bool, len(articles))
	unique := make([]Article, 0, len(articles))
	for _, a := range articles {
		if a.URL == "" || seen[a.URL] {
			continue
		}
		seen[a.URL] = true
		unique = append(unique, a)
	}
	return unique
}
