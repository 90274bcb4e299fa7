package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestBackendRequiresInit(t *testing.T) {
	b := NewTerminalBackend()
	if err := b.Draw(testFrame()); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted from Draw, got %v", err)
	}
	if _, _, err := b.Poll(context.Background(), time.Millisecond); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted from Poll, got %v", err)
	}
	if err := b.Restore(); err != nil {
		t.Fatalf("Restore before Init should be a no-op, got %v", err)
	}
}

func TestBackendClosedErr(t *testing.T) {
	b := &TerminalBackend{}
	if err := b.closedErr(); !errors.Is(err, ErrTerminalClosed) {
		t.Fatalf("expected ErrTerminalClosed, got %v", err)
	}
	boom := errors.New("open /dev/tty: no such device")
	b.runErr = boom
	if err := b.closedErr(); !errors.Is(err, boom) || !b.reported {
		t.Fatalf("expected run error to be reported, got %v", err)
	}
}

func TestBackendPollQueuedKey(t *testing.T) {
	keys := make(chan KeyEvent, 1)
	// The program is never run; Poll only reads the channels.
	b := &TerminalBackend{
		program: tea.NewProgram(newPanelModel(keys)),
		keys:    keys,
		done:    make(chan struct{}),
	}
	b.keys <- KeyEvent{Key: "q"}
	ev, ok, err := b.Poll(context.Background(), time.Second)
	if err != nil || !ok || ev.Key != "q" {
		t.Fatalf("expected queued key, got %+v %v %v", ev, ok, err)
	}
	ev, ok, err = b.Poll(context.Background(), time.Millisecond)
	if err != nil || ok {
		t.Fatalf("expected timeout without a key, got %+v %v %v", ev, ok, err)
	}
	close(b.done)
	if _, _, err := b.Poll(context.Background(), time.Second); !errors.Is(err, ErrTerminalClosed) {
		t.Fatalf("expected ErrTerminalClosed once the program ended, got %v", err)
	}
}
