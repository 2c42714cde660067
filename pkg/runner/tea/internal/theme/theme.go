// Package theme centralizes Lip Gloss styles for the calendar UI. A Theme is
// built once at startup and passed by reference into rendering; nothing here
// is mutated afterward.
package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme groups the styles shared across the month, week, and day views.
type Theme struct {
	Today    lipgloss.Style
	Selected lipgloss.Style
	Header   lipgloss.Style
	Dim      lipgloss.Style
	Border   lipgloss.Style
	Status   lipgloss.Style
	EventDot lipgloss.Style
	Error    lipgloss.Style
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Today:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("14")),
		Header:   lipgloss.NewStyle().Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238")),
		EventDot: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// ForCalendar returns a style tinted with the calendar's hex color, falling
// back to an unstyled render when the color does not parse.
func (t Theme) ForCalendar(hex string) lipgloss.Style {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
}
