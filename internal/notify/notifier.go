// Package notify delivers human-readable event messages to an external sink.
// Delivery is best-effort: a failed notification never affects sync
// correctness.
package notify

import (
	"context"
	"time"

	"t2c/internal/config"
)

// Notifier accepts a single text message per event
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Nop is a Notifier that silently discards every message. It is used when no
// sink is configured.
type Nop struct{}

// Notify implements Notifier
func (Nop) Notify(ctx context.Context, message string) error {
	return nil
}

// New creates the configured notifier: Telegram when a bot token is set,
// otherwise Nop.
func New(cfg config.TelegramConfig, timeout time.Duration) Notifier {
	if cfg.Token == "" {
		return Nop{}
	}
	return NewTelegram(cfg.Token, cfg.ChatID, timeout)
}
