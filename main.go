package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ai-news-digest/internal/ai"
	"ai-news-digest/internal/cache"
	"ai-news-digest/internal/config"
	"ai-news-digest/internal/digest"
	"ai-news-digest/internal/logger"
	"ai-news-digest/internal/news"
	"ai-news-digest/internal/server"
	"ai-news-digest/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	results := cache.New(cfg.CacheTTL, cfg.CacheSize)

	pipeline := digest.New(
		news.NewClient(cfg.NewsAPIKey, cfg.NewsAPIBaseURL),
		ai.NewSummarizer(cfg.SummaryAPIKey, cfg.SummaryBaseURL, cfg.SummaryModel),
		ai.NewTranslator(cfg.TranslateAPIKey, cfg.TranslateBaseURL, cfg.TranslateModel),
		results,
		logg,
	)

	if cfg.BroadcastEnabled() {
		notifier, err := telegram.NewNotifier(cfg.TelegramToken, cfg.TelegramChatID, logg)
		if err != nil {
			log.Fatalf("Failed to create telegram notifier: %v", err)
		}
		go notifier.Broadcast(ctx, pipeline, cfg.BroadcastInterval)
		logg.Info("telegram broadcaster started", "interval", cfg.BroadcastInterval)
	}

	e := server.NewRouter(pipeline, logg)

	go func() {
		logg.Info("starting server", "port", cfg.Port, "cache_ttl", cfg.CacheTTL)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error("shutdown error", "error", err)
	}
	logg.Info("server stopped")
}
