package page

type CursorMove int

const (
	CursorLeft CursorMove = iota
	CursorRight
	CursorUp
	CursorDown
	CursorRowStart
	CursorRowEnd
	CursorFileStart
	CursorFileEnd
)

// DragCursorToPage pulls an off-page cursor onto the page, keeping its column.
//
// Two candidates are considered: the cursor's column on the page's top row
// and on its bottom row. The bottom candidate wins only when it is strictly
// closer to the old cursor. Reports whether the cursor was moved.
func (m *Model) DragCursorToPage() bool {
	pr := m.PageRange()
	if pr.Contains(m.cursor) {
		return false
	}

	rowOffset := m.cursor - m.ClosestRowStart(m.cursor)
	top := m.clampByte(m.position + rowOffset)
	bottom := m.clampByte(m.ClosestRowStart(pr.End) + rowOffset)

	next := top
	if absInt(m.cursor-bottom) < absInt(m.cursor-top) {
		next = bottom
	}
	m.log.Debug("drag cursor %d -> %d (page %v, top %d, bottom %d)", m.cursor, next, pr, top, bottom)
	m.SetCursor(next)
	return true
}

// FollowCursor scrolls the smallest number of rows that brings the cursor onto
// the page. Reports whether the position changed.
func (m *Model) FollowCursor() bool {
	if m.IsEmpty() || m.InPage(m.cursor) {
		return false
	}
	prev := m.position
	rowStart := m.ClosestRowStart(m.cursor)
	if m.cursor < m.position {
		m.SetPosition(rowStart)
	} else {
		m.SetPosition(maxInt(0, rowStart-(m.RowsPerPage()-1)*m.CellsPerRow()))
	}
	return m.position != prev
}

// MoveCursor applies a single cursor movement and scrolls to keep the cursor
// visible. Reports whether the cursor moved.
func (m *Model) MoveCursor(mv CursorMove) bool {
	if m.IsEmpty() {
		return false
	}
	prev := m.cursor
	cells := m.CellsPerRow()
	rowStart := m.ClosestRowStart(m.cursor)

	next := m.cursor
	switch mv {
	case CursorLeft:
		next = m.cursor - 1
	case CursorRight:
		next = m.cursor + 1
	case CursorUp:
		if m.cursor-cells >= 0 {
			next = m.cursor - cells
		}
	case CursorDown:
		if m.cursor+cells <= m.LastByteIndex() {
			next = m.cursor + cells
		}
	case CursorRowStart:
		next = rowStart
	case CursorRowEnd:
		next = rowStart + cells - 1
	case CursorFileStart:
		next = 0
	case CursorFileEnd:
		next = m.LastByteIndex()
	}

	m.SetCursor(next)
	m.FollowCursor()
	return m.cursor != prev
}
