package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestRegistryPriorityOrder(t *testing.T) {
	r := NewKeyRegistry()
	var hit string
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x")),
		Handler:  func(context.Context, *EventLoop) error { hit = "low"; return nil },
		Priority: 1,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("x")),
		Handler:  func(context.Context, *EventLoop) error { hit = "high"; return nil },
		Priority: 5,
	})

	handled, err := r.Handle(context.Background(), nil, KeyEvent{Key: "x"})
	if err != nil || !handled {
		t.Fatalf("expected x to be handled, got %v %v", handled, err)
	}
	if hit != "high" {
		t.Fatalf("expected the higher priority binding, got %q", hit)
	}
	if handled, _ := r.Handle(context.Background(), nil, KeyEvent{Key: "y"}); handled {
		t.Fatalf("unbound key should not be handled")
	}
}

func TestRegistrySkipsDisabledBindings(t *testing.T) {
	r := NewKeyRegistry()
	b := key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "Zap"))
	b.SetEnabled(false)
	r.Register(KeyBinding{Binding: b, Handler: func(context.Context, *EventLoop) error {
		t.Fatalf("disabled binding must not run")
		return nil
	}})
	if handled, _ := r.Handle(context.Background(), nil, KeyEvent{Key: "z"}); handled {
		t.Fatalf("disabled binding should not match")
	}
	if r.HelpBar() != "" {
		t.Fatalf("disabled binding should not appear in help, got %q", r.HelpBar())
	}
}

func TestDefaultKeysHelpBar(t *testing.T) {
	if got := DefaultKeys().HelpBar(); got != "New Timer <N>  Quit <Q>" {
		t.Fatalf("unexpected help bar %q", got)
	}
}
