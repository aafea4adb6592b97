package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/DevRobi/portfolio-news/internal/cache"
	"github.com/DevRobi/portfolio-news/internal/model"
	"github.com/DevRobi/portfolio-news/pkg/llm"
	"github.com/DevRobi/portfolio-news/pkg/news"
)

// summaryArticleLimit caps how many article bodies are downloaded for the
// report prompt. Extraction is one network round trip per article.
const summaryArticleLimit = 2

type Aggregator interface {
	Aggregate(ctx context.Context, ticker string) []news.Article
}

type Extractor interface {
	Extract(ctx context.Context, url string) string
}

type Summarizer interface {
	Summarize(ctx context.Context, ticker string, items []llm.SourcedContent) string
}

type NewsHandler struct {
	aggregator Aggregator
	extractor  Extractor
	summarizer Summarizer
	cache      cache.Store
}

func NewNewsHandler(aggregator Aggregator, extractor Extractor, summarizer Summarizer, store cache.Store) *NewsHandler {
	return &NewsHandler{
		aggregator: aggregator,
		extractor:  extractor,
		summarizer: summarizer,
		cache:      store,
	}
}

func (h *NewsHandler) GetNews(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	if cached, ok := h.cache.Get(c.Request.Context(), ticker); ok {
		slog.Info("serving cached news", "ticker", ticker)
		c.JSON(http.StatusOK, cached)
		return
	}

	articles := h.aggregator.Aggregate(c.Request.Context(), ticker)

	if len(articles) == 0 {
		c.JSON(http.StatusOK, model.StockSummary{
			Ticker:   ticker,
			Summary:  "No news found.",
			Articles: []model.Article{},
		})
		return
	}

	var forSummary []llm.SourcedContent
	for _, a := range articles[:min(summaryArticleLimit, len(articles))] {
		content := h.extractor.Extract(c.Request.Context(), a.URL)
		if content == "" {
			continue
		}
		forSummary = append(forSummary, llm.SourcedContent{
			Content: content,
			Source:  a.Source,
			Title:   a.Title,
		})
	}

	summary := &model.StockSummary{
		Ticker:   ticker,
		Summary:  h.summarizer.Summarize(c.Request.Context(), ticker, forSummary),
		Articles: toAPIArticles(articles),
	}

	h.cache.Put(c.Request.Context(), ticker, summary)
	c.JSON(http.StatusOK, summary)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func toAPIArticles(articles []news.Article) []model.Article {
	out := make([]model.Article, 0, len(articles))
	for _, a := range articles {
		title := a.Title
		if title == "" {
			title = "No Title"
		}
		source := a.Source
		if source == "" {
			source = "Unknown"
		}

		published := ""
		if !a.Published.IsZero() {
			published = a.Published.Format(time.RFC3339)
		}

		out = append(out, model.Article{
			Title:     title,
			URL:       a.URL,
			Publisher: a.Publisher,
			Published: published,
			Source:    source,
		})
	}
	return out
}
