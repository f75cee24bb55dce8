package viewer

import tea "github.com/charmbracelet/bubbletea"

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if msg.Action == tea.MouseActionRelease {
		m.gripDragging = false
		return m, nil
	}
	if !m.focused || m.page.IsEmpty() {
		return m, nil
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			m.page.ScrollRows(-1)
			m.page.DragCursorToPage()
		case tea.MouseButtonWheelDown:
			m.page.ScrollRows(1)
			m.page.DragCursorToPage()
		case tea.MouseButtonLeft:
			h := m.hitTest(msg.X, msg.Y)
			switch h.zone {
			case zoneHex, zonePreview:
				if p, ok := m.page.OffsetAt(h.row, h.col); ok {
					m.page.SetCursor(p)
				}
			case zoneScrollbar:
				m.gripDragging = true
				m.dragGrip(msg.Y)
			}
		}

	case tea.MouseActionMotion:
		if m.gripDragging {
			m.dragGrip(msg.Y)
		}
	}
	return m, nil
}

// dragGrip moves the page so the scrollbar grip sits at screen row y.
func (m *Model) dragGrip(y int) {
	pos := m.scrollbar().PositionAt(m.page, y-m.headerRows())
	m.page.SetPosition(pos)
	m.page.DragCursorToPage()
}
