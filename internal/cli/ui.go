package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	colorCyan = lipgloss.Color("36")  // Teal - names
	colorGray = lipgloss.Color("245") // Gray - secondary text
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

// ui holds the styles bound to one output renderer.
type ui struct {
	r      *lipgloss.Renderer
	name   lipgloss.Style
	detail lipgloss.Style
	dim    lipgloss.Style
}

// newUI binds styles to r. When color is false the renderer is forced to
// plain ASCII.
func newUI(r *lipgloss.Renderer, color bool) ui {
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return ui{
		r:      r,
		name:   r.NewStyle().Foreground(colorCyan),
		detail: r.NewStyle().Foreground(colorGray),
		dim:    r.NewStyle().Foreground(colorDim),
	}
}
