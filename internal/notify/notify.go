// Package notify tells the studio about confirmed orders.
package notify

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/whiteboardproductions/site/go/internal/models"
	"github.com/whiteboardproductions/site/go/internal/summary"
)

type Notifier interface {
	OrderConfirmed(ctx context.Context, order *models.OrderDB) error
}

// Noop is used when no bot token is configured.
type Noop struct{}

func (Noop) OrderConfirmed(context.Context, *models.OrderDB) error { return nil }

type TelegramNotifier struct {
	bot    *bot.Bot
	chatID int64
}

func NewTelegramNotifier(token string, chatID int64, opts ...bot.Option) (*TelegramNotifier, error) {
	opts = append([]bot.Option{bot.WithSkipGetMe()}, opts...)
	b, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating bot: %w", err)
	}
	return &TelegramNotifier{bot: b, chatID: chatID}, nil
}

func (n *TelegramNotifier) OrderConfirmed(ctx context.Context, order *models.OrderDB) error {
	_, err := n.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: n.chatID,
		Text:   studioText(order),
	})
	if err != nil {
		return fmt.Errorf("failed to notify studio of order %s: %w", order.ID, err)
	}
	return nil
}

func studioText(order *models.OrderDB) string {
	return fmt.Sprintf("🧾 New %s order %s (%s)\n\n%s",
		order.Plan,
		order.ID,
		summary.FormatPrice(order.Total, order.Currency),
		order.Message,
	)
}
