package tui

import (
	"log"

	"github.com/akyairhashvil/tock/internal/config"
	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg Frame

// panelModel is the bubbletea side of the terminal backend. It only shows
// the latest frame and forwards key presses; all timer logic stays in the
// EventLoop.
type panelModel struct {
	keys     chan<- KeyEvent
	frame    Frame
	hasFrame bool
	width    int // Store window dimensions
	height   int
}

func newPanelModel(keys chan<- KeyEvent) panelModel {
	return panelModel{
		keys:   keys,
		width:  config.DefaultPanelWidth,
		height: config.DefaultPanelHeight,
	}
}

func (m panelModel) Init() tea.Cmd {
	return nil
}

func (m panelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = Frame(msg)
		m.hasFrame = true
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		ev := KeyEvent{Key: msg.String(), Kind: KeyPress}
		select {
		case m.keys <- ev:
		default:
			log.Printf("input queue full, dropping key %q", ev.Key)
		}
	}
	return m, nil
}

func (m panelModel) View() string {
	if !m.hasFrame {
		return ""
	}
	return m.frame.Render(Area{Width: m.width, Height: m.height})
}
