package viewer

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexpage/page"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	km := m.cfg.KeyMap
	if key.Matches(msg, km.Help) {
		m.showHelp = !m.showHelp
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Left):
		m.page.MoveCursor(page.CursorLeft)
	case key.Matches(msg, km.Right):
		m.page.MoveCursor(page.CursorRight)
	case key.Matches(msg, km.Up):
		m.page.MoveCursor(page.CursorUp)
	case key.Matches(msg, km.Down):
		m.page.MoveCursor(page.CursorDown)

	case key.Matches(msg, km.RowStart):
		m.page.MoveCursor(page.CursorRowStart)
	case key.Matches(msg, km.RowEnd):
		m.page.MoveCursor(page.CursorRowEnd)
	case key.Matches(msg, km.FileStart):
		m.page.MoveCursor(page.CursorFileStart)
	case key.Matches(msg, km.FileEnd):
		m.page.MoveCursor(page.CursorFileEnd)

	case key.Matches(msg, km.PageUp):
		m.page.PageUp()
		m.page.DragCursorToPage()
	case key.Matches(msg, km.PageDown):
		m.page.PageDown()
		m.page.DragCursorToPage()
	case key.Matches(msg, km.ScrollUp):
		m.page.ScrollRows(-1)
	case key.Matches(msg, km.ScrollDown):
		m.page.ScrollRows(1)

	case key.Matches(msg, km.Narrow):
		m = m.SetBytesPerRow(m.page.CellsPerRow() - 1)
	case key.Matches(msg, km.Widen):
		m = m.SetBytesPerRow(m.page.CellsPerRow() + 1)
	}
	return m, nil
}
