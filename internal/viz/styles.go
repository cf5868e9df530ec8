package viz

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00cccc"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	Label = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888899"))

	Value = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00ccff")).
		Bold(true)

	Key = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#00aaaa")).
		Bold(true)

	KeyHint = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#555566")).
		Italic(true)
)
