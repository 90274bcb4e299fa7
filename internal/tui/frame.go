package tui

import (
	"strconv"
	"strings"

	"github.com/akyairhashvil/tock/internal/config"
	"github.com/akyairhashvil/tock/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Area is the drawable region in terminal cells.
type Area struct {
	Width  int
	Height int
}

// Frame is everything shown for one tick. Render paints it as a single
// bordered panel.
type Frame struct {
	Title    string
	Body     string
	Detail   string
	Progress float64 // negative hides the bar
	Help     string
	Counter  uint64
	Tone     models.StateKind
	Theme    Theme
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func trimLines(s string, max int) string {
	if max <= 0 || s == "" {
		return ""
	}
	lines := splitLines(s)
	if len(lines) <= max {
		return s
	}
	lines = lines[:max]
	return strings.Join(lines, "\n")
}

// Render paints the panel filling area: title centered in the top border,
// help centered and the frame counter right-aligned in the bottom border,
// body centered inside.
func (f Frame) Render(area Area) string {
	width := max(area.Width, config.MinPanelWidth)
	height := max(area.Height, config.MinPanelHeight)
	innerW, innerH := width-2, height-2
	border := lipgloss.RoundedBorder()
	th := f.Theme

	content := []string{th.StateStyle(f.Tone).Render(ansi.Truncate(f.Body, innerW, "…"))}
	if f.Detail != "" {
		content = append(content, th.Dim.Render(ansi.Truncate(f.Detail, innerW, "…")))
	}
	if f.Progress >= 0 {
		bar := progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
			progress.WithWidth(min(config.ProgressWidth, innerW)),
		)
		content = append(content, "", bar.ViewAs(f.Progress))
	}
	body := lipgloss.JoinVertical(lipgloss.Center, content...)
	body = trimLines(body, innerH)
	body = lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, body)

	var b strings.Builder
	b.WriteString(f.topEdge(border, innerW))
	for _, line := range splitLines(body) {
		b.WriteString("\n")
		b.WriteString(th.Border.Render(border.Left))
		b.WriteString(line)
		b.WriteString(th.Border.Render(border.Right))
	}
	b.WriteString("\n")
	b.WriteString(f.bottomEdge(border, innerW))
	return b.String()
}

func (f Frame) topEdge(border lipgloss.Border, width int) string {
	title := ""
	if f.Title != "" {
		title = ansi.Truncate(" "+f.Title+" ", width, "")
	}
	tw := ansi.StringWidth(title)
	left := (width - tw) / 2
	right := width - tw - left
	th := f.Theme
	return th.Border.Render(border.TopLeft+strings.Repeat(border.Top, left)) +
		th.Title.Render(title) +
		th.Border.Render(strings.Repeat(border.Top, right)+border.TopRight)
}

// bottomEdge centers the help text and keeps the counter one cell away
// from the right corner. The counter is dropped when it would overlap.
func (f Frame) bottomEdge(border lipgloss.Border, width int) string {
	help := ""
	if f.Help != "" {
		help = ansi.Truncate(" "+f.Help+" ", width, "")
	}
	counter := " " + strconv.FormatUint(f.Counter, 10) + " "
	hw, cw := ansi.StringWidth(help), ansi.StringWidth(counter)
	left := (width - hw) / 2
	rest := width - hw - left
	th := f.Theme

	var b strings.Builder
	b.WriteString(th.Border.Render(border.BottomLeft + strings.Repeat(border.Bottom, left)))
	b.WriteString(th.Help.Render(help))
	if rest >= cw+1 {
		b.WriteString(th.Border.Render(strings.Repeat(border.Bottom, rest-cw-1)))
		b.WriteString(th.Counter.Render(counter))
		b.WriteString(th.Border.Render(border.Bottom))
	} else {
		b.WriteString(th.Border.Render(strings.Repeat(border.Bottom, rest)))
	}
	b.WriteString(th.Border.Render(border.BottomRight))
	return b.String()
}
