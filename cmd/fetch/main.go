// Command fetch runs the aggregation pipeline for one or more tickers and
// prints the deduplicated article list. Useful for checking individual
// sources against live provider pages without starting the API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/DevRobi/portfolio-news/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	tickers := os.Args[1:]
	if len(tickers) == 0 {
		fmt.Fprintln(os.Stderr, "usage: fetch TICKER [TICKER...]")
		os.Exit(2)
	}

	quotes := news.NewFinnhubQuotes(os.Getenv("FINNHUB_API_KEY"))
	aggregator := news.NewAggregator(quotes)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	for _, ticker := range tickers {
		articles := aggregator.Aggregate(ctx, ticker)

		fmt.Printf("== %s: %d unique articles\n", ticker, len(articles))
		for i, a := range articles {
			date := "no date"
			if !a.Published.IsZero() {
				date = a.Published.Format(time.RFC3339)
			}
			fmt.Printf("%3d. [%s] %s\n     %s (%s)\n", i+1, a.Source, a.Title, a.URL, date)
		}
	}
}
