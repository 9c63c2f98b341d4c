// Package notifications is the boundary to the user-facing notification
// collaborator. The core fires notifications and never consumes a result.
package notifications

//go:generate mockgen -destination=mock/mock_notifier.go -package=notificationsmock github.com/KirkDiggler/sheet-api/internal/notifications Notifier

import (
	"context"
	"log/slog"
	"time"
)

// Kind classifies a notification.
type Kind string

// Notification kinds
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Notification is a single user-facing message.
type Notification struct {
	Kind     Kind          `json:"type"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Notifier delivers notifications to the user. Fire-and-forget: delivery
// failures are the collaborator's problem, not the caller's.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// SlogNotifier logs notifications instead of delivering them anywhere.
// It backs development setups with no notification frontend attached.
type SlogNotifier struct{}

// NewSlogNotifier creates a new logging notifier
func NewSlogNotifier() *SlogNotifier {
	return &SlogNotifier{}
}

var _ Notifier = (*SlogNotifier)(nil)

// Notify logs the notification at a level matching its kind.
func (n *SlogNotifier) Notify(ctx context.Context, notification Notification) {
	level := slog.LevelInfo
	switch notification.Kind {
	case KindError:
		level = slog.LevelError
	case KindWarning:
		level = slog.LevelWarn
	}

	slog.Log(ctx, level, "Notification",
		"kind", notification.Kind,
		"message", notification.Message,
	)
}
