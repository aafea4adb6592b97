package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DevRobi/portfolio-news/internal/model"
)

const redisKeyPrefix = "portfolio-news:summary:"

// Redis stores results in a shared Redis, useful when several API replicas
// should reuse each other's aggregations. Any Redis error degrades to a
// cache miss.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{client: client, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, ticker string) (*model.StockSummary, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+ticker).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Error("error reading summary cache", "ticker", ticker, "error", err)
		}
		return nil, false
	}

	var summary model.StockSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		slog.Error("error decoding cached summary", "ticker", ticker, "error", err)
		return nil, false
	}

	return &summary, true
}

func (r *Redis) Put(ctx context.Context, ticker string, summary *model.StockSummary) {
	if summary == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		slog.Error("error encoding summary for cache", "ticker", ticker, "error", err)
		return
	}

	if err := r.client.Set(ctx, redisKeyPrefix+ticker, raw, r.ttl).Err(); err != nil {
		slog.Error("error writing summary cache", "ticker", ticker, "error", err)
	}
}
