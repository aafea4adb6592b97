package news

import (
	"context"
	"fmt"
	"strings"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

// FinnhubQuotes resolves ticker metadata through the Finnhub symbol lookup.
type FinnhubQuotes struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubQuotes(apiKey string) *FinnhubQuotes {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubQuotes{client: client}
}

// Lookup returns the instrument name and type for a ticker. The first exact
// symbol match wins; otherwise the top result is used as a best effort.
func (q *FinnhubQuotes) Lookup(ctx context.Context, ticker string) (Quote, error) {
	res, _, err := q.client.SymbolSearch(ctx).Q(ticker).Execute()
	if err != nil {
		return Quote{}, fmt.Errorf("finnhub symbol search: %w", err)
	}

	results := res.GetResult()
	if len(results) == 0 {
		return Quote{}, fmt.Errorf("finnhub: no match for %q", ticker)
	}

	best := results[0]
	for _, r := range results {
		if strings.EqualFold(r.GetSymbol(), ticker) || strings.EqualFold(r.GetDisplaySymbol(), ticker) {
			best = r
			break
		}
	}

	name := best.GetDescription()
	if name == "" {
		name = ticker
	}

	return Quote{Name: name, Type: classifyInstrument(best.GetType())}, nil
}

// classifyInstrument maps Finnhub security types onto our enumeration.
// Finnhub uses labels like "Common Stock", "ETP", "Crypto", "Indices".
func classifyInstrument(finnhubType string) InstrumentType {
	t := strings.ToLower(finnhubType)
	switch {
	case strings.Contains(t, "stock") || strings.Contains(t, "equity") || strings.Contains(t, "adr"):
		return TypeEquity
	case strings.Contains(t, "etp") || strings.Contains(t, "etf") || strings.Contains(t, "fund"):
		return TypeETF
	case strings.Contains(t, "crypto"):
		return TypeCrypto
	case strings.Contains(t, "future"):
		return TypeFuture
	case strings.Contains(t, "indice") || strings.Contains(t, "index"):
		return TypeIndex
	default:
		return TypeUnknown
	}
}
