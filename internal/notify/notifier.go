// Package notify shows desktop notifications for finished timers.
package notify

import (
	"context"
	"errors"

	"github.com/akyairhashvil/tock/internal/models"
)

var (
	ErrUnavailable   = errors.New("notification service unavailable")
	ErrInvalidHandle = errors.New("invalid notification handle")
)

// Notifier displays and dismisses desktop notifications.
//
//go:generate mockgen -source=notifier.go -destination=notifytest/mock_notifier.go -package=notifytest
type Notifier interface {
	Show(ctx context.Context, n models.Notification) (models.NotificationHandle, error)
	Dismiss(ctx context.Context, h models.NotificationHandle) error
}

var (
	_ Notifier = (*DBusNotifier)(nil)
	_ Notifier = (*Fake)(nil)
)
