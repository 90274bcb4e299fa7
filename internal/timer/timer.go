// Package timer implements the countdown state machine. Every operation
// takes the current instant explicitly; nothing in here reads the clock.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/tock/internal/config"
	"github.com/akyairhashvil/tock/internal/models"
	"github.com/akyairhashvil/tock/internal/notify"
	"github.com/akyairhashvil/tock/internal/util"
)

// Timer counts a fixed duration down and raises a notification when it ends.
// It is owned by a single goroutine and does no locking.
type Timer struct {
	duration time.Duration
	label    string
	state    models.TimerState
	notifier notify.Notifier
}

// New returns a stopped timer.
func New(duration time.Duration, label string, notifier notify.Notifier) (*Timer, error) {
	if duration <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Timer{
		duration: duration,
		label:    label,
		state:    models.Off{},
		notifier: notifier,
	}, nil
}

// NewRunning returns a timer already started at now.
func NewRunning(duration time.Duration, label string, notifier notify.Notifier, now time.Time) (*Timer, error) {
	t, err := New(duration, label, notifier)
	if err != nil {
		return nil, err
	}
	if err := t.Start(now); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Timer) Duration() time.Duration  { return t.duration }
func (t *Timer) Label() string            { return t.label }
func (t *Timer) State() models.TimerState { return t.state }

// Start moves a stopped timer to running.
func (t *Timer) Start(now time.Time) error {
	if _, ok := t.state.(models.Off); !ok {
		return invalid("start", t.state.Kind())
	}
	t.state = models.Running{Completion: now.Add(t.duration)}
	return nil
}

// Pause freezes the remaining time of a running timer. A completion instant
// already in the past pauses with zero remaining.
func (t *Timer) Pause(now time.Time) error {
	running, ok := t.state.(models.Running)
	if !ok {
		return invalid("pause", t.state.Kind())
	}
	remaining := running.Completion.Sub(now)
	if remaining < 0 {
		remaining = 0
	}
	t.state = models.Paused{Remaining: remaining}
	return nil
}

// Resume restarts the countdown of a paused timer from now.
func (t *Timer) Resume(now time.Time) error {
	paused, ok := t.state.(models.Paused)
	if !ok {
		return invalid("resume", t.state.Kind())
	}
	t.state = models.Running{Completion: now.Add(paused.Remaining)}
	return nil
}

// TogglePause pauses a running timer or resumes a paused one. It reports
// whether the state changed; other states are left alone.
func (t *Timer) TogglePause(now time.Time) bool {
	switch t.state.(type) {
	case models.Running:
		return t.Pause(now) == nil
	case models.Paused:
		return t.Resume(now) == nil
	default:
		return false
	}
}

// CheckCompletion finishes a running timer whose completion instant is at or
// before now, showing the completion notification. If the notification
// cannot be shown the state is unchanged and the error is returned, so the
// next check retries.
func (t *Timer) CheckCompletion(ctx context.Context, now time.Time) (bool, error) {
	running, ok := t.state.(models.Running)
	if !ok || now.Before(running.Completion) {
		return false, nil
	}
	handle, err := t.notifier.Show(ctx, completionNotification(t.label))
	if err != nil {
		return false, &TransitionError{Op: "finish", From: models.KindRunning, Err: err}
	}
	t.state = models.Finished{Completed: running.Completion, Notification: handle}
	return true, nil
}

// Dismiss closes the notification of a finished timer. The state stays
// finished; other states have nothing to dismiss.
func (t *Timer) Dismiss(ctx context.Context) error {
	finished, ok := t.state.(models.Finished)
	if !ok || !finished.Notification.Valid() {
		return nil
	}
	if err := t.notifier.Dismiss(ctx, finished.Notification); err != nil {
		return err
	}
	finished.Notification = models.NotificationHandle{}
	t.state = finished
	return nil
}

// Remaining is the time left on the countdown, never negative.
func (t *Timer) Remaining(now time.Time) time.Duration {
	switch s := t.state.(type) {
	case models.Off:
		return t.duration
	case models.Running:
		return clamp(s.Completion.Sub(now))
	case models.Paused:
		return s.Remaining
	case models.Finished:
		return 0
	default:
		panic(fmt.Sprintf("timer: unexpected state %T", s))
	}
}

// Progress is the elapsed fraction of the countdown in [0, 1].
func (t *Timer) Progress(now time.Time) float64 {
	return util.Clamp(1-float64(t.Remaining(now))/float64(t.duration), 0, 1)
}

// RenderText describes the timer for display. It never changes state.
func (t *Timer) RenderText(now time.Time) string {
	switch s := t.state.(type) {
	case models.Off:
		return fmt.Sprintf("Stopped (%s)", seconds(t.duration))
	case models.Running:
		return fmt.Sprintf("%s remaining", seconds(clamp(s.Completion.Sub(now))))
	case models.Paused:
		return fmt.Sprintf("%s remaining [Paused]", seconds(s.Remaining))
	case models.Finished:
		return fmt.Sprintf("Finished! (%s ago)", seconds(now.Sub(s.Completed)))
	default:
		panic(fmt.Sprintf("timer: unexpected state %T", s))
	}
}

func completionNotification(label string) models.Notification {
	return models.Notification{
		AppName: config.AppName,
		Summary: config.NotifySummary,
		Body:    fmt.Sprintf(config.NotifyBodyFormat, label),
		Timeout: models.TimeoutNever,
		Actions: []models.Action{{Key: config.NotifyDismissKey, Label: config.NotifyDismissLabel}},
	}
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

func clamp(d time.Duration) time.Duration {
	return max(d, 0)
}
