package testutil

import (
	"testing"
	"time"

	"github.com/akyairhashvil/tock/internal/config"
	"github.com/akyairhashvil/tock/internal/notify"
	"github.com/akyairhashvil/tock/internal/timer"
)

// TimerBuilder provides fluent API for creating test timers.
type TimerBuilder struct {
	duration  time.Duration
	label     string
	notifier  notify.Notifier
	startedAt *time.Time
	pausedAt  *time.Time
}

func NewTimer() *TimerBuilder {
	return &TimerBuilder{
		duration: config.DefaultDuration,
		label:    "Test Timer",
	}
}

func (b *TimerBuilder) WithDuration(d time.Duration) *TimerBuilder {
	b.duration = d
	return b
}

func (b *TimerBuilder) WithLabel(l string) *TimerBuilder {
	b.label = l
	return b
}

func (b *TimerBuilder) WithNotifier(n notify.Notifier) *TimerBuilder {
	b.notifier = n
	return b
}

func (b *TimerBuilder) StartedAt(at time.Time) *TimerBuilder {
	b.startedAt = &at
	return b
}

func (b *TimerBuilder) PausedAt(at time.Time) *TimerBuilder {
	b.pausedAt = &at
	return b
}

// Build creates the timer, failing the test on any invalid combination.
// Without a notifier a fresh notify.Fake is used.
func (b *TimerBuilder) Build(tb testing.TB) *timer.Timer {
	tb.Helper()
	n := b.notifier
	if n == nil {
		n = notify.NewFake()
	}
	t, err := timer.New(b.duration, b.label, n)
	if err != nil {
		tb.Fatalf("timer.New failed: %v", err)
	}
	if b.startedAt != nil {
		if err := t.Start(*b.startedAt); err != nil {
			tb.Fatalf("Start failed: %v", err)
		}
	}
	if b.pausedAt != nil {
		if err := t.Pause(*b.pausedAt); err != nil {
			tb.Fatalf("Pause failed: %v", err)
		}
	}
	return t
}
