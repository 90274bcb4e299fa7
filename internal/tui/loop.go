// Package tui drives a countdown timer in the terminal: each tick renders a
// panel, waits briefly for a key and then checks whether the timer finished.
package tui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/akyairhashvil/tock/internal/config"
	"github.com/akyairhashvil/tock/internal/models"
	"github.com/akyairhashvil/tock/internal/notify"
	"github.com/akyairhashvil/tock/internal/timer"
	"github.com/akyairhashvil/tock/internal/util"
)

// Screen is the terminal the loop draws on. Init enters the managed terminal
// mode and Restore leaves it.
type Screen interface {
	Init() error
	Draw(f Frame) error
	Restore() error
}

// InputSource yields at most one key per call, waiting up to timeout.
type InputSource interface {
	Poll(ctx context.Context, timeout time.Duration) (KeyEvent, bool, error)
}

// EventLoop owns one timer and drives it until quit. It runs on a single
// goroutine; nothing else touches the timer.
type EventLoop struct {
	timer    *timer.Timer
	screen   Screen
	input    InputSource
	notifier notify.Notifier
	keys     *KeyRegistry
	clock    util.Clock
	theme    Theme
	poll     time.Duration
	frames   uint64
	quit     bool
}

type Option func(*EventLoop)

func WithClock(c util.Clock) Option {
	return func(l *EventLoop) { l.clock = c }
}

func WithPollInterval(d time.Duration) Option {
	return func(l *EventLoop) { l.poll = d }
}

func WithKeys(r *KeyRegistry) Option {
	return func(l *EventLoop) { l.keys = r }
}

func WithTheme(t Theme) Option {
	return func(l *EventLoop) { l.theme = t }
}

func NewEventLoop(t *timer.Timer, screen Screen, input InputSource, notifier notify.Notifier, opts ...Option) *EventLoop {
	l := &EventLoop{
		timer:    t,
		screen:   screen,
		input:    input,
		notifier: notifier,
		keys:     DefaultKeys(),
		clock:    util.SystemClock{},
		theme:    DefaultTheme,
		poll:     config.PollInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Quit stops the loop once the current tick completes.
func (l *EventLoop) Quit() { l.quit = true }

// Frames is the number of frames drawn so far.
func (l *EventLoop) Frames() uint64 { return l.frames }

// Run enters the terminal, ticks until quit or the first error, and always
// restores the terminal before returning.
func (l *EventLoop) Run(ctx context.Context) (err error) {
	if err := l.screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer func() {
		if rerr := l.screen.Restore(); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", rerr))
		}
		if config.NotifyDismissOnQuit {
			dctx, cancel := context.WithTimeout(context.Background(), config.NotifyCallTimeout)
			util.LogError("dismiss notification", l.timer.Dismiss(dctx))
			cancel()
		}
	}()

	for !l.quit {
		if err := l.Tick(ctx); err != nil {
			if ctx.Err() != nil && errors.Is(err, ctx.Err()) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Tick runs one iteration: render, poll input, check completion.
func (l *EventLoop) Tick(ctx context.Context) error {
	if err := l.screen.Draw(l.frame(l.clock.Now())); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}
	l.frames++

	ev, ok, err := l.input.Poll(ctx, l.poll)
	switch {
	case errors.Is(err, ErrTerminalClosed):
		l.Quit()
	case err != nil:
		return fmt.Errorf("poll input: %w", err)
	case ok && ev.Kind == KeyPress:
		if _, err := l.keys.Handle(ctx, l, ev); err != nil {
			return err
		}
	}

	done, err := l.timer.CheckCompletion(ctx, l.clock.Now())
	if err != nil {
		return fmt.Errorf("check completion: %w", err)
	}
	if done {
		log.Printf("timer %q finished", l.timer.Label())
	}
	return nil
}

func (l *EventLoop) frame(now time.Time) Frame {
	return Frame{
		Title:    config.AppTitle,
		Body:     l.timer.RenderText(now),
		Detail:   l.timer.Label(),
		Progress: l.timer.Progress(now),
		Help:     l.keys.HelpBar(),
		Counter:  l.frames,
		Tone:     l.timer.State().Kind(),
		Theme:    l.theme,
	}
}

func (l *EventLoop) togglePause() {
	now := l.clock.Now()
	if !l.timer.TogglePause(now) {
		return
	}
	switch l.timer.State().(type) {
	case models.Paused:
		log.Printf("timer %q paused with %s left", l.timer.Label(), l.timer.Remaining(now))
	case models.Running:
		log.Printf("timer %q resumed", l.timer.Label())
	}
}

func (l *EventLoop) sendTestNotification(ctx context.Context) error {
	h, err := l.notifier.Show(ctx, models.Notification{
		AppName: config.AppName,
		Summary: config.TestNotifySummary,
		Body:    config.TestNotifyBody,
		Timeout: models.TimeoutAfter(config.TestNotifyTimeout),
	})
	if err != nil {
		return fmt.Errorf("test notification: %w", err)
	}
	log.Printf("test notification shown (id %d)", h.ID)
	return nil
}
