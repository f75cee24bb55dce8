package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hexpage/internal/config"
	"github.com/iw2rmb/hexpage/viewer"
)

// styleFromTheme maps config colors onto viewer.DefaultStyle. Empty colors keep
// the terminal default; an empty cursor color falls back to reverse video.
func styleFromTheme(t config.Theme) viewer.Style {
	st := viewer.DefaultStyle()
	st.Address = fg(t.Address)
	st.Hex = fg(t.Hex)
	st.Preview = fg(t.Preview)
	st.Scrollbar = fg(t.Scrollbar)
	st.Grip = fg(t.Grip)
	st.Label = fg(t.Label).Bold(true)

	if t.Cursor != "" {
		st.Cursor = lipgloss.NewStyle().Background(lipgloss.Color(t.Cursor)).Foreground(lipgloss.Color("0"))
	}
	return st
}

func fg(color string) lipgloss.Style {
	s := lipgloss.NewStyle()
	if color == "" {
		return s
	}
	return s.Foreground(lipgloss.Color(color))
}
