package cache

import (
	"context"
	"sync"
	"time"

	"github.com/DevRobi/portfolio-news/internal/model"
)

// DefaultTTL is how long an aggregation result stays valid.
const DefaultTTL = time.Hour

// Store is the result cache keyed by ticker. Implementations must be safe
// for concurrent use; concurrent misses for the same ticker may recompute
// redundantly, which is acceptable.
type Store interface {
	Get(ctx context.Context, ticker string) (*model.StockSummary, bool)
	Put(ctx context.Context, ticker string, summary *model.StockSummary)
}

type entry struct {
	summary  model.StockSummary
	storedAt time.Time
}

// Memory is the default in-process cache. Entries expire by wall-clock
// comparison on read; nothing evicts them actively.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, ticker string) (*model.StockSummary, bool) {
	m.mu.RLock()
	e, ok := m.entries[ticker]
	m.mu.RUnlock()

	if !ok || m.now().Sub(e.storedAt) >= m.ttl {
		return nil, false
	}

	summary := e.summary
	return &summary, true
}

func (m *Memory) Put(ctx context.Context, ticker string, summary *model.StockSummary) {
	if summary == nil {
		return
	}
	m.mu.Lock()
	m.entries[ticker] = entry{summary: *summary, storedAt: m.now()}
	m.mu.Unlock()
}
