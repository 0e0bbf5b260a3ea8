package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/verte-zerg/numeracal/internal/model"
)

var (
	colorBlue       = lipgloss.Color("12")
	colorDarkCyan   = lipgloss.Color("6")
	colorDarkYellow = lipgloss.Color("3")
	colorGreen      = lipgloss.Color("10")
)

type styles struct {
	word   lipgloss.Style
	letter lipgloss.Style
	note   lipgloss.Style
	title  lipgloss.Style
	char   lipgloss.Style
	value  lipgloss.Style
	banner lipgloss.Style
}

// newRenderer binds a lipgloss renderer to w and applies the --color choice.
func newRenderer(w io.Writer, color model.Toggle) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch color {
	case model.ToggleAlways:
		r.SetColorProfile(termenv.ANSI)
	case model.ToggleNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

func newStyles(r *lipgloss.Renderer, decorated bool) styles {
	s := styles{
		word:   r.NewStyle().Foreground(colorBlue),
		letter: r.NewStyle().Foreground(colorDarkCyan),
		note:   r.NewStyle().Foreground(colorDarkYellow),
		title:  r.NewStyle().Foreground(colorGreen),
		char:   r.NewStyle().Foreground(colorDarkCyan),
		value:  r.NewStyle().Foreground(colorBlue),
		banner: r.NewStyle().Foreground(colorGreen),
	}
	if decorated {
		s.word = s.word.Bold(true)
		s.note = s.note.Italic(true)
		s.title = s.title.Bold(true)
		s.char = s.char.Bold(true)
		s.value = s.value.Bold(true)
		s.banner = s.banner.Bold(true)
	}
	return s
}
