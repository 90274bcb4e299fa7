package notify

import (
	"context"

	"github.com/akyairhashvil/tock/internal/models"
)

// Fake records notifications for test assertions.
type Fake struct {
	// Shown contains every notification passed to Show, in order.
	Shown []models.Notification

	// Dismissed contains every handle passed to Dismiss.
	Dismissed []models.NotificationHandle

	// ShowError, if set, is returned by Show and nothing is recorded.
	ShowError error

	// DismissError, if set, is returned by Dismiss.
	DismissError error

	nextID uint32
}

func NewFake() *Fake {
	return &Fake{}
}

// Show records n and returns a fresh handle.
func (f *Fake) Show(_ context.Context, n models.Notification) (models.NotificationHandle, error) {
	if f.ShowError != nil {
		return models.NotificationHandle{}, f.ShowError
	}
	f.Shown = append(f.Shown, n)
	f.nextID++
	return models.NotificationHandle{ID: f.nextID}, nil
}

// Dismiss records h.
func (f *Fake) Dismiss(_ context.Context, h models.NotificationHandle) error {
	if f.DismissError != nil {
		return f.DismissError
	}
	if !h.Valid() {
		return ErrInvalidHandle
	}
	f.Dismissed = append(f.Dismissed, h)
	return nil
}
