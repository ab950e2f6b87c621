package result

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	header   lipgloss.Style
	key      lipgloss.Style
	value    lipgloss.Style
	bullet   lipgloss.Style
	empty    lipgloss.Style
	command  lipgloss.Style
	alias    lipgloss.Style
	summary  lipgloss.Style
	footnote lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		bullet:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		empty:    lipgloss.NewStyle().Faint(true),
		command:  lipgloss.NewStyle().Bold(true),
		alias:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		summary:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		footnote: lipgloss.NewStyle().Faint(true),
	}
}
