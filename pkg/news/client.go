package news

import (
	"context"
	"net/http"
	"time"
)

// Article is the canonical record every source maps into. A zero Published
// means the provider gave no usable date; that is never a reason to drop
// the article.
type Article struct {
	Title     string
	URL       string
	Publisher string
	Published time.Time
	Source    string
}

// Source fetches articles for one provider. Implementations keep no shared
// mutable state and are safe to call concurrently with each other.
type Source interface {
	Fetch(ctx context.Context, ticker, companyName string) ([]Article, error)
	Name() string
}

// InstrumentType classifies a ticker. Only equities and funds get the full
// provider set; everything else is too noisy for the structured-finance
// sources.
type InstrumentType string

const (
	TypeEquity  InstrumentType = "EQUITY"
	TypeETF     InstrumentType = "ETF"
	TypeCrypto  InstrumentType = "CRYPTO"
	TypeFuture  InstrumentType = "FUTURE"
	TypeIndex   InstrumentType = "INDEX"
	TypeUnknown InstrumentType = "UNKNOWN"
)

// Quote is the descriptive metadata for a ticker.
type Quote struct {
	Name string
	Type InstrumentType
}

// QuoteService resolves ticker metadata. Lookups may fail; callers degrade
// to the raw ticker string and TypeUnknown.
type QuoteService interface {
	Lookup(ctx context.Context, ticker string) (Quote, error)
}

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

func defaultHTTPClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}
