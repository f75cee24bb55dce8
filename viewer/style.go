package viewer

import "github.com/charmbracelet/lipgloss"

// Style controls the viewer's rendering.
type Style struct {
	Address lipgloss.Style
	Hex     lipgloss.Style
	Preview lipgloss.Style
	// Cursor is applied to the cursor cell in both the hex and preview columns.
	Cursor lipgloss.Style

	Scrollbar lipgloss.Style
	Grip      lipgloss.Style

	// Label styles the file line above the grid and the cursor line below it.
	Label lipgloss.Style

	// HelpBox frames the full key help shown over the grid.
	HelpBox lipgloss.Style
}

func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Address:   dim,
		Hex:       lipgloss.NewStyle(),
		Preview:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Scrollbar: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Grip:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		HelpBox:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
