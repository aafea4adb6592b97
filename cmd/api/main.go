package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DevRobi/portfolio-news/db"
	"github.com/DevRobi/portfolio-news/internal/cache"
	"github.com/DevRobi/portfolio-news/internal/handler"
	"github.com/DevRobi/portfolio-news/internal/repository"
	"github.com/DevRobi/portfolio-news/pkg/llm"
	"github.com/DevRobi/portfolio-news/pkg/news"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	quotes := news.NewFinnhubQuotes(os.Getenv("FINNHUB_API_KEY"))
	aggregator := news.NewAggregator(quotes)
	extractor := news.NewExtractor()

	summarizer := llm.NewSummarizer(
		llm.NewOllamaClient(os.Getenv("OLLAMA_HOST"), os.Getenv("OLLAMA_MODEL")),
		llm.NewGeminiClient(os.Getenv("GEMINI_API_KEY")),
		llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY")),
	)

	var store cache.Store = cache.NewMemory(cache.DefaultTTL)
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		client, err := db.ConnectRedis(context.Background(), redisURL)
		if err != nil {
			log.Fatalf("error connecting to Redis: %v", err)
		}
		defer client.Close()
		store = cache.NewRedis(client, cache.DefaultTTL)
		slog.Info("using Redis summary cache")
	}

	portfolioFile := os.Getenv("PORTFOLIO_FILE")
	if portfolioFile == "" {
		portfolioFile = "portfolio.json"
	}
	portfolioRepo := repository.NewPortfolioRepository(portfolioFile)

	newsHandler := handler.NewNewsHandler(aggregator, extractor, summarizer, store)
	portfolioHandler := handler.NewPortfolioHandler(portfolioRepo, quotes)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/api/news/:ticker", newsHandler.GetNews)
	r.GET("/api/portfolio", portfolioHandler.GetPortfolio)
	r.POST("/api/portfolio", portfolioHandler.AddTicker)
	r.DELETE("/api/portfolio/:ticker", portfolioHandler.RemoveTicker)
	r.GET("/health", newsHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
