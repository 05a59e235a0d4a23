package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/pranshuparmar/ipcs/internal/config"
)

// Style decorates report titles when color output is enabled. The zero
// Style prints plain text.
type Style struct {
	enabled     bool
	titleStyle  lipgloss.Style
	headerStyle lipgloss.Style
	bannerStyle lipgloss.Style
}

// NewStyle builds the style for writing to w under one of the config color
// modes. In auto mode the renderer inspects w and drops escapes when w is
// not a terminal.
func NewStyle(w io.Writer, mode string) Style {
	if mode != config.ColorAuto && mode != config.ColorAlways {
		return Style{}
	}

	r := lipgloss.NewRenderer(w)
	if mode == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI)
	}

	return Style{
		enabled:     true,
		titleStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		headerStyle: r.NewStyle().Faint(true),
		bannerStyle: r.NewStyle().Foreground(lipgloss.Color("2")),
	}
}

func (s Style) title(text string) ansiString {
	return s.render(s.titleStyle, text)
}

func (s Style) header(text string) ansiString {
	return s.render(s.headerStyle, text)
}

func (s Style) banner(text string) ansiString {
	return s.render(s.bannerStyle, text)
}

func (s Style) render(st lipgloss.Style, text string) ansiString {
	text = SanitizeTerminal(text)
	if !s.enabled {
		return ansiString(text)
	}
	return ansiString(st.Render(text))
}
