package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"ai-news-digest/internal/models"
)

// DigestService computes the digest the broadcaster delivers.
type DigestService interface {
	Digest(ctx context.Context, req models.DigestRequest) (*models.DigestResult, error)
}

// Notifier pushes digests to a Telegram chat.
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
	logger *slog.Logger
}

// NewNotifier creates a notifier for the given bot token and chat.
func NewNotifier(token string, chatID int64, logger *slog.Logger) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}

	return &Notifier{
		api:    api,
		chatID: chatID,
		logger: logger,
	}, nil
}

// SendDigest delivers one digest to the configured chat.
func (n *Notifier) SendDigest(result *models.DigestResult) error {
	msg := tgbotapi.NewMessage(n.chatID, FormatDigest(result))
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}

// Broadcast periodically computes the daily digest through service and
// delivers it until ctx is cancelled. Delivery failures are logged and the
// loop keeps running.
func (n *Notifier) Broadcast(ctx context.Context, service DigestService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			result, err := service.Digest(ctx, models.DigestRequest{
				Window:   models.WindowToday,
				Language: "en",
			})
			if err != nil {
				n.logger.Error("broadcast digest computation failed", "error", err)
				continue
			}
			if err := n.SendDigest(result); err != nil {
				n.logger.Error("broadcast delivery failed", "error", err)
			}
		}
	}
}

// FormatDigest renders a digest as a Telegram message.
func FormatDigest(result *models.DigestResult) string {
	header := fmt.Sprintf("*AI News Digest* (%s, %d articles)",
		result.GeneratedAt.Format("2006-01-02"), result.ArticleCount)
	return header + "\n\n" + result.Summary
}
