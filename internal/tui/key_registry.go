package tui

import (
	"context"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyKind distinguishes press, repeat and release events where the input
// source reports them.
type KeyKind int

const (
	KeyPress KeyKind = iota
	KeyRepeat
	KeyRelease
)

// KeyEvent is a single key from the input source. Key uses bubbletea key
// names ("q", " ", "ctrl+c").
type KeyEvent struct {
	Key  string
	Kind KeyKind
}

func (e KeyEvent) String() string { return e.Key }

type KeyHandler func(ctx context.Context, l *EventLoop) error

type KeyBinding struct {
	Binding  key.Binding
	Handler  KeyHandler
	Priority int
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry() *KeyRegistry {
	return &KeyRegistry{}
}

func (r *KeyRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

// Handle runs the first enabled binding matching ev. It reports whether a
// binding matched.
func (r *KeyRegistry) Handle(ctx context.Context, l *EventLoop, ev KeyEvent) (bool, error) {
	for _, b := range r.bindings {
		if key.Matches(ev, b.Binding) {
			return true, b.Handler(ctx, l)
		}
	}
	return false, nil
}

// HelpBar renders bindings that carry help text as "Desc <KEY>" pairs.
func (r *KeyRegistry) HelpBar() string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.bindings {
		h := b.Binding.Help()
		if h.Desc == "" || seen[h.Key] || !b.Binding.Enabled() {
			continue
		}
		seen[h.Key] = true
		parts = append(parts, h.Desc+" <"+strings.ToUpper(h.Key)+">")
	}
	return strings.Join(parts, "  ")
}

// DefaultKeys binds n (test notification), space (pause toggle) and q or
// ctrl+c (quit).
func DefaultKeys() *KeyRegistry {
	r := NewKeyRegistry()
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "New Timer")),
		Handler:  func(ctx context.Context, l *EventLoop) error { return l.sendTestNotification(ctx) },
		Priority: 3,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys(" ", "space")),
		Handler:  func(_ context.Context, l *EventLoop) error { l.togglePause(); return nil },
		Priority: 2,
	})
	r.Register(KeyBinding{
		Binding:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
		Handler:  func(_ context.Context, l *EventLoop) error { l.Quit(); return nil },
		Priority: 1,
	})
	return r
}
