package page

// ScrollRows moves the page by delta whole rows, clamped to
// [0, LastRowStart()]. When the cursor falls off the page it moves by the
// same number of bytes.
func (m *Model) ScrollRows(delta int) {
	if m.IsEmpty() || delta == 0 {
		return
	}
	step := delta * m.CellsPerRow()
	m.SetPosition(clampInt(m.position+step, 0, m.LastRowStart()))
	if !m.InPage(m.cursor) {
		m.SetCursor(m.cursor + step)
	}
}

// PageDown advances by one page less one row, so the previous bottom row
// stays visible at the top. Single-row pages advance by one row.
func (m *Model) PageDown() {
	m.pageBy(1)
}

// PageUp is the reverse of PageDown.
func (m *Model) PageUp() {
	m.pageBy(-1)
}

func (m *Model) pageBy(dir int) {
	if m.IsEmpty() {
		return
	}
	rows := maxInt(1, m.RowsPerPage()-1)
	target := m.clampByte(m.position + dir*rows*m.CellsPerRow())
	m.SetPosition(m.ClosestRowStart(target))
}
