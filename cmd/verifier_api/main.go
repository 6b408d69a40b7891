package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/DjordjeVuckovic/news-verifier/internal/agent"
	"github.com/DjordjeVuckovic/news-verifier/internal/cache"
	"github.com/DjordjeVuckovic/news-verifier/internal/collector"
	"github.com/DjordjeVuckovic/news-verifier/internal/config"
	"github.com/DjordjeVuckovic/news-verifier/internal/fetch"
	"github.com/DjordjeVuckovic/news-verifier/internal/inference"
	"github.com/DjordjeVuckovic/news-verifier/internal/llm"
	"github.com/DjordjeVuckovic/news-verifier/internal/providers/news"
	"github.com/DjordjeVuckovic/news-verifier/internal/providers/reddit"
	"github.com/DjordjeVuckovic/news-verifier/internal/providers/wikipedia"
	"github.com/DjordjeVuckovic/news-verifier/internal/router"
	"github.com/DjordjeVuckovic/news-verifier/internal/server"
	"github.com/DjordjeVuckovic/news-verifier/internal/storage"
	"github.com/DjordjeVuckovic/news-verifier/pkg/config/env"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)

	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), "cmd/verifier_api/.env"); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	store, err := storage.NewStorer(ctx, cfg.Storage.ConnStr)
	if err != nil {
		slog.Error("Failed to create storage", "error", err)
		os.Exit(1)
	}

	reportCache := cache.NewReportCache(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL)
	defer func() {
		_ = reportCache.Close()
	}()

	var discussionSearcher collector.DiscussionSearcher
	if cfg.Reddit.Enabled {
		redditClient, err := reddit.NewClient(cfg.Reddit)
		if err != nil {
			slog.Error("Failed to create reddit client", "error", err)
			os.Exit(1)
		}
		discussionSearcher = redditClient
	} else {
		slog.Info("Discussion search disabled")
	}

	wikiClient, err := wikipedia.NewClient(cfg.Wikipedia)
	if err != nil {
		slog.Error("Failed to create wikipedia client", "error", err)
		os.Exit(1)
	}

	var newsProviders []news.Provider
	if cfg.News.NewsAPIKey != "" {
		newsProviders = append(newsProviders, news.NewNewsAPIProvider(cfg.News.NewsAPIKey))
	}
	if cfg.News.GNewsAPIKey != "" {
		newsProviders = append(newsProviders, news.NewGNewsProvider(cfg.News.GNewsAPIKey))
	}
	if len(cfg.News.Feeds) > 0 {
		newsProviders = append(newsProviders, news.NewRSSProvider(cfg.News.Feeds))
	}
	slog.Info("News providers configured", "count", len(newsProviders))

	var sentimentClient inference.Client
	if cfg.Sentiment.Enabled && cfg.Sentiment.BaseURL != "" {
		httpClient, err := inference.NewHTTPClient(cfg.Sentiment.BaseURL)
		if err != nil {
			slog.Error("Failed to create inference client", "error", err)
			os.Exit(1)
		}
		sentimentClient = httpClient
	} else {
		slog.Info("Sentiment inference disabled")
	}

	var completer llm.Completer
	if openaiClient := llm.NewOpenAIClient(cfg.LLM); openaiClient != nil {
		completer = openaiClient
	} else {
		slog.Info("OPENAI_API_KEY not set, fact checking degraded")
	}

	verifier := agent.New(
		collector.NewDiscussionCollector(discussionSearcher, cfg.Reddit.SearchLimit),
		collector.NewReferenceCollector(wikiClient, cfg.Wikipedia.MaxResults, cfg.Wikipedia.MaxRetries, cfg.Wikipedia.MaxRedirectHops),
		collector.NewNewsCollector(newsProviders, cfg.News.MaxArticles),
		collector.NewAICollector(sentimentClient, cfg.Sentiment.Model, completer),
		cfg.CollectorTimeout,
	)

	s := server.NewServer(echo.New(), sCfg)

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "News Verifier API is running")
	})

	verifyRouter := router.NewVerifyRouter(s.Echo, verifier, fetch.NewExtractor(), reportCache, store)
	verifyRouter.Bind()

	if err := s.Start(); err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}
