package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/tock/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

// TerminalBackend is a Screen and InputSource backed by a bubbletea program
// on the alternate screen. bubbletea owns raw mode; the program runs on its
// own goroutine and talks to the loop through messages and a key channel.
type TerminalBackend struct {
	opts     []tea.ProgramOption
	program  *tea.Program
	keys     chan KeyEvent
	done     chan struct{}
	runErr   error
	reported bool
}

func NewTerminalBackend(opts ...tea.ProgramOption) *TerminalBackend {
	return &TerminalBackend{opts: opts}
}

func (b *TerminalBackend) Init() error {
	if b.program != nil {
		return fmt.Errorf("terminal already started")
	}
	b.keys = make(chan KeyEvent, config.KeyBufferSize)
	b.done = make(chan struct{})
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, b.opts...)
	b.program = tea.NewProgram(newPanelModel(b.keys), opts...)
	go func() {
		_, err := b.program.Run()
		b.runErr = err
		close(b.done)
	}()
	return nil
}

func (b *TerminalBackend) Draw(f Frame) error {
	if b.program == nil {
		return ErrNotStarted
	}
	select {
	case <-b.done:
		return b.closedErr()
	default:
	}
	b.program.Send(frameMsg(f))
	return nil
}

func (b *TerminalBackend) Poll(ctx context.Context, timeout time.Duration) (KeyEvent, bool, error) {
	if b.program == nil {
		return KeyEvent{}, false, ErrNotStarted
	}
	t := time.NewTimer(timeout)
	defer t.Stop()
	select {
	case ev := <-b.keys:
		return ev, true, nil
	case <-b.done:
		return KeyEvent{}, false, b.closedErr()
	case <-ctx.Done():
		return KeyEvent{}, false, ctx.Err()
	case <-t.C:
		return KeyEvent{}, false, nil
	}
}

// Restore stops the program and waits for bubbletea to leave raw mode. A
// run error already returned from Draw or Poll is not returned again.
func (b *TerminalBackend) Restore() error {
	if b.program == nil {
		return nil
	}
	b.program.Quit()
	<-b.done
	if b.runErr == nil || b.reported {
		return nil
	}
	b.reported = true
	return b.runErr
}

func (b *TerminalBackend) closedErr() error {
	if b.runErr == nil {
		return ErrTerminalClosed
	}
	b.reported = true
	return fmt.Errorf("terminal: %w", b.runErr)
}
