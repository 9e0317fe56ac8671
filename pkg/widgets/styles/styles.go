// Package styles centralizes the lipgloss styles shared by the widget
// adapters.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Centralized style definitions for the widgets.
var (
	// Item header styles (tabs, accordion headers, stepper labels).
	ActiveStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	InactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	DisabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Strikethrough(true)
	FocusStyle    = lipgloss.NewStyle().Underline(true)

	// Tab bar.
	TabStyle = lipgloss.NewStyle().Padding(0, 1)

	// Content panels.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
	BodyStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("7"))

	// Range highlighting.
	InRangeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))            // blue
	EndpointStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")) // blue

	// Live and description regions.
	LiveStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("3")) // yellow
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Truncate shortens s to at most width display cells, ending in an
// ellipsis when cut. A non-positive width leaves s unchanged.
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Live renders the announcement line, or nothing when text is empty.
func Live(text string) string {
	if text == "" {
		return ""
	}
	return LiveStyle.Render(text)
}
