package models

import (
	"math"
	"testing"
	"time"
)

func TestStateKinds(t *testing.T) {
	cases := []struct {
		state TimerState
		kind  StateKind
		name  string
	}{
		{Off{}, KindOff, "off"},
		{Running{Completion: time.Now()}, KindRunning, "running"},
		{Paused{Remaining: time.Second}, KindPaused, "paused"},
		{Finished{Completed: time.Now()}, KindFinished, "finished"},
	}
	for _, tc := range cases {
		if tc.state.Kind() != tc.kind {
			t.Fatalf("%T: expected kind %v, got %v", tc.state, tc.kind, tc.state.Kind())
		}
		if tc.kind.String() != tc.name {
			t.Fatalf("expected %q, got %q", tc.name, tc.kind.String())
		}
	}
	if StateKind(42).String() != "unknown" {
		t.Fatalf("expected unknown for out-of-range kind")
	}
}

func TestTimeoutAfter(t *testing.T) {
	if got := TimeoutAfter(1500 * time.Millisecond); got != 1500 {
		t.Fatalf("expected 1500ms, got %d", got)
	}
	if got := TimeoutAfter(0); got != TimeoutDefault {
		t.Fatalf("expected default timeout for zero duration, got %d", got)
	}
	if got := TimeoutAfter(-time.Second); got != TimeoutDefault {
		t.Fatalf("expected default timeout for negative duration, got %d", got)
	}
	if got := TimeoutAfter(30 * 24 * time.Hour); got != math.MaxInt32 {
		t.Fatalf("expected saturated timeout for a month, got %d", got)
	}
}

func TestNotificationHandleZeroValue(t *testing.T) {
	var h NotificationHandle
	if h.Valid() {
		t.Fatalf("zero handle should not be valid")
	}
	if !(NotificationHandle{ID: 7}).Valid() {
		t.Fatalf("non-zero handle should be valid")
	}
}
