package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/akyairhashvil/tock/internal/models"
)

func TestFakeRecordsNotifications(t *testing.T) {
	f := NewFake()
	ctx := context.Background()

	h1, err := f.Show(ctx, models.Notification{Summary: "one"})
	if err != nil {
		t.Fatalf("Show failed: %v", err)
	}
	h2, _ := f.Show(ctx, models.Notification{Summary: "two"})
	if !h1.Valid() || h1 == h2 {
		t.Fatalf("expected distinct valid handles, got %v and %v", h1, h2)
	}
	if len(f.Shown) != 2 || f.Shown[1].Summary != "two" {
		t.Fatalf("unexpected recorded notifications: %+v", f.Shown)
	}

	if err := f.Dismiss(ctx, h1); err != nil {
		t.Fatalf("Dismiss failed: %v", err)
	}
	if len(f.Dismissed) != 1 || f.Dismissed[0] != h1 {
		t.Fatalf("unexpected dismissed handles: %v", f.Dismissed)
	}
	if err := f.Dismiss(ctx, models.NotificationHandle{}); !errors.Is(err, ErrInvalidHandle) {
		t.Fatalf("expected ErrInvalidHandle, got %v", err)
	}
}

func TestFakeShowError(t *testing.T) {
	f := NewFake()
	f.ShowError = ErrUnavailable
	if _, err := f.Show(context.Background(), models.Notification{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(f.Shown) != 0 {
		t.Fatalf("failed Show must not be recorded")
	}
}
