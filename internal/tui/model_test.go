package tui

import (
	"strings"
	"testing"

	"github.com/akyairhashvil/tock/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestPanelModelForwardsKeys(t *testing.T) {
	keys := make(chan KeyEvent, 2)
	m := newPanelModel(keys)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(panelModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = model.(panelModel)

	if ev := <-keys; ev.Key != "q" || ev.Kind != KeyPress {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev := <-keys; ev.Key != "ctrl+c" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestPanelModelDropsKeysWhenFull(t *testing.T) {
	keys := make(chan KeyEvent, 1)
	m := newPanelModel(keys)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
	if len(keys) != 1 {
		t.Fatalf("expected one queued key, got %d", len(keys))
	}
	if ev := <-keys; ev.Key != "a" {
		t.Fatalf("expected the first key to survive, got %q", ev.Key)
	}
}

func TestPanelModelViewUsesLatestFrameAndSize(t *testing.T) {
	m := newPanelModel(make(chan KeyEvent, 1))
	if m.View() != "" {
		t.Fatalf("expected empty view before the first frame")
	}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 44, Height: 9})
	m = model.(panelModel)
	f := testFrame()
	f.Body = "1.50s remaining"
	model, _ = m.Update(frameMsg(f))
	m = model.(panelModel)

	view := m.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 9 || ansi.StringWidth(lines[0]) != 44 {
		t.Fatalf("expected a 44x9 panel, got %d lines of width %d", len(lines), ansi.StringWidth(lines[0]))
	}
	if !strings.Contains(ansi.Strip(view), "1.50s remaining") {
		t.Fatalf("view missing body: %q", ansi.Strip(view))
	}
}

func TestPanelModelDefaultSize(t *testing.T) {
	m := newPanelModel(nil)
	if m.width != config.DefaultPanelWidth || m.height != config.DefaultPanelHeight {
		t.Fatalf("unexpected default size %dx%d", m.width, m.height)
	}
}
