package news

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

type stubQuotes struct {
	quote Quote
	err   error
}

func (s *stubQuotes) Lookup(ctx context.Context, ticker string) (Quote, error) {
	return s.quote, s.err
}

type stubSource struct {
	name     string
	articles []Article
	err      error

	mu     sync.Mutex
	calls  int
	gotArg string
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context, ticker, companyName string) ([]Article, error) {
	s.mu.Lock()
	s.calls++
	s.gotArg = companyName
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	return s.articles, nil
}

func (s *stubSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testAggregator(quotes QuoteService, stock, other []Source) *Aggregator {
	return &Aggregator{
		quotes:        quotes,
		stockSources:  stock,
		otherSources:  other,
		concurrency:   defaultConcurrency,
		sourceTimeout: 5 * time.Second,
	}
}

func art(title, url string) Article {
	return Article{Title: title, URL: url, Published: time.Now(), Source: "test"}
}

func TestAggregateDeduplicatesByURL(t *testing.T) {
	first := &stubSource{name: "first", articles: []Article{
		art("A", "https://e.com/1"),
		art("B", "https://e.com/2"),
		art("A again", "https://e.com/1"),
	}}
	second := &stubSource{name: "second", articles: []Article{
		art("B from second", "https://e.com/2"),
		art("C", "https://e.com/3"),
	}}

	agg := testAggregator(
		&stubQuotes{quote: Quote{Name: "Acme Corp", Type: TypeEquity}},
		[]Source{first, second}, nil,
	)

	got := agg.Aggregate(t.Context(), "ACME")

	assert.Equal(t, 3, len(got))
	assert.Equal(t, "https://e.com/1", got[0].URL)
	assert.Equal(t, "https://e.com/2", got[1].URL)
	assert.Equal(t, "https://e.com/3", got[2].URL)
	// First occurrence wins: item 2 keeps the first source's title.
	assert.Equal(t, "B", got[1].Title)
}

func TestAggregateDropsEmptyURLs(t *testing.T) {
	src := &stubSource{name: "src", articles: []Article{
		{Title: "no url", Published: time.Now(), Source: "src"},
		art("ok", "https://e.com/ok"),
	}}

	agg := testAggregator(
		&stubQuotes{quote: Quote{Name: "Acme", Type: TypeEquity}},
		[]Source{src}, nil,
	)

	got := agg.Aggregate(t.Context(), "ACME")

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "https://e.com/ok", got[0].URL)
}

func TestAggregateNonEquityRouting(t *testing.T) {
	cases := []struct {
		ticker string
		qtype  InstrumentType
	}{
		{"GC=F", TypeFuture},
		{"BTC-USD", TypeCrypto},
		{"^TNX", TypeIndex},
		{"CL=F", TypeFuture},
	}

	for _, tc := range cases {
		stock := &stubSource{name: "stock-only", articles: []Article{art("s", "https://e.com/s")}}
		web := &stubSource{name: "web", articles: []Article{art("w", "https://e.com/w")}}

		agg := testAggregator(
			&stubQuotes{quote: Quote{Name: tc.ticker, Type: tc.qtype}},
			[]Source{stock}, []Source{web},
		)

		got := agg.Aggregate(t.Context(), tc.ticker)

		assert.Equal(t, 0, stock.callCount())
		assert.Equal(t, 1, web.callCount())
		assert.Equal(t, 1, len(got))
		assert.Equal(t, "https://e.com/w", got[0].URL)
	}
}

func TestAggregateEquityUsesFullSet(t *testing.T) {
	for _, qtype := range []InstrumentType{TypeEquity, TypeETF} {
		stock := &stubSource{name: "stock", articles: []Article{art("s", "https://e.com/s")}}
		web := &stubSource{name: "web", articles: []Article{art("w", "https://e.com/w")}}

		agg := testAggregator(
			&stubQuotes{quote: Quote{Name: "Acme", Type: qtype}},
			[]Source{stock, web}, []Source{web},
		)

		got := agg.Aggregate(t.Context(), "ACME")

		assert.Equal(t, 1, stock.callCount())
		assert.Equal(t, 2, len(got))
	}
}

func TestAggregateMetadataFailureDegrades(t *testing.T) {
	web := &stubSource{name: "web", articles: []Article{art("w", "https://e.com/w")}}

	agg := testAggregator(
		&stubQuotes{err: errors.New("lookup down")},
		nil, []Source{web},
	)

	got := agg.Aggregate(t.Context(), "MYSTERY")

	// Unknown type routes through the narrow path with the raw ticker
	// as the search term.
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "MYSTERY", web.gotArg)
}

func TestAggregateSourceFailureContained(t *testing.T) {
	failing := &stubSource{name: "broken", err: errors.New("provider 500")}
	healthy := &stubSource{name: "healthy", articles: []Article{art("ok", "https://e.com/ok")}}

	agg := testAggregator(
		&stubQuotes{quote: Quote{Name: "Acme", Type: TypeEquity}},
		[]Source{failing, healthy}, nil,
	)

	got := agg.Aggregate(t.Context(), "ACME")

	assert.Equal(t, 1, len(got))
	assert.Equal(t, "https://e.com/ok", got[0].URL)
}

func TestAggregatePreservesSourcePriorityOrder(t *testing.T) {
	slow := &stubSource{name: "slow", articles: []Article{art("slow", "https://e.com/slow")}}
	fast := &stubSource{name: "fast", articles: []Article{art("fast", "https://e.com/fast")}}

	agg := testAggregator(
		&stubQuotes{quote: Quote{Name: "Acme", Type: TypeEquity}},
		[]Source{slow, fast}, nil,
	)

	// Regardless of completion order, output follows registration order.
	for i := 0; i < 5; i++ {
		got := agg.Aggregate(t.Context(), "ACME")
		assert.Equal(t, "https://e.com/slow", got[0].URL)
		assert.Equal(t, "https://e.com/fast", got[1].URL)
	}
}
