package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DevRobi/portfolio-news/pkg/news"
)

type PortfolioStore interface {
	Load() []string
	Add(ticker string) ([]string, bool)
	Remove(ticker string) ([]string, bool)
}

type PortfolioHandler struct {
	repository PortfolioStore
	quotes     news.QuoteService
}

func NewPortfolioHandler(repository PortfolioStore, quotes news.QuoteService) *PortfolioHandler {
	return &PortfolioHandler{repository: repository, quotes: quotes}
}

func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, PortfolioResponse{Portfolio: h.repository.Load()})
}

func (h *PortfolioHandler) AddTicker(c *gin.Context) {
	var req TickerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ticker := h.resolveTicker(c, strings.ToUpper(strings.TrimSpace(req.Ticker)))

	portfolio, added := h.repository.Add(ticker)
	message := ticker + " already in portfolio"
	if added {
		message = "Added " + ticker + " to portfolio"
	}

	c.JSON(http.StatusOK, PortfolioResponse{Message: message, Portfolio: portfolio})
}

func (h *PortfolioHandler) RemoveTicker(c *gin.Context) {
	ticker := strings.ToUpper(c.Param("ticker"))

	portfolio, removed := h.repository.Remove(ticker)
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticker not found"})
		return
	}

	c.JSON(http.StatusOK, PortfolioResponse{
		Message:   "Removed " + ticker + " from portfolio",
		Portfolio: portfolio,
	})
}

// resolveTicker validates a ticker against the quote service, retrying
// with a -USD suffix so users can add crypto by its bare symbol. Keeps the
// original spelling when nothing resolves.
func (h *PortfolioHandler) resolveTicker(c *gin.Context, ticker string) string {
	if _, err := h.quotes.Lookup(c.Request.Context(), ticker); err == nil {
		return ticker
	}

	cryptoTicker := ticker + "-USD"
	if _, err := h.quotes.Lookup(c.Request.Context(), cryptoTicker); err == nil {
		slog.Info("auto-resolved ticker", "from", ticker, "to", cryptoTicker)
		return cryptoTicker
	}

	return ticker
}
