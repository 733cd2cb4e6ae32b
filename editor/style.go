package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text      lipgloss.Style
	Link      lipgloss.Style
	Marker    lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Toolbar       lipgloss.Style
	ToolbarButton lipgloss.Style
	Prompt        lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:          lipgloss.NewStyle(),
		Link:          lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
		Marker:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Toolbar:       lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")),
		ToolbarButton: lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("235")).Bold(true),
		Prompt:        lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}
