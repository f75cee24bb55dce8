package page

// CellsPerRow returns the raw cell count clamped to at least 1.
func (m *Model) CellsPerRow() int { return maxInt(m.cells, 1) }

// RowsPerPage returns the raw row count clamped to at least 1.
func (m *Model) RowsPerPage() int { return maxInt(m.rows, 1) }

// PageSize is the byte capacity of a full page.
func (m *Model) PageSize() int { return m.CellsPerRow() * m.RowsPerPage() }

func (m *Model) LastByteIndex() int { return maxInt(0, len(m.data)-1) }

// IsRowStart reports whether p is a multiple of CellsPerRow().
func (m *Model) IsRowStart(p int) bool {
	return p%m.CellsPerRow() == 0
}

// TotalRows is the number of rows needed for the whole file, counting a
// partial last row.
func (m *Model) TotalRows() int {
	return ceilDiv(len(m.data), m.CellsPerRow())
}

// LastRowStart is the start of the last row of the file, the largest legal
// position.
func (m *Model) LastRowStart() int {
	if len(m.data) < 1 {
		return 0
	}
	return maxInt(0, m.TotalRows()-1) * m.CellsPerRow()
}

// ClosestRowStart rounds p down to the start of its row. Offsets past the
// last row map to LastRowStart().
func (m *Model) ClosestRowStart(p int) int {
	if p > m.LastRowStart() {
		return m.LastRowStart()
	}
	if p < 0 {
		return 0
	}
	cells := m.CellsPerRow()
	rowsNeeded := ceilDiv(p+1, cells)
	return rowsNeeded*cells - cells
}

// PageRange returns the inclusive range of bytes visible at the current
// position, truncated at end of file. An empty file yields [0,0].
func (m *Model) PageRange() Range {
	if m.IsEmpty() {
		return Range{}
	}
	end := m.position + m.PageSize() - 1
	if end > m.LastByteIndex() {
		end = m.LastByteIndex()
	}
	return Range{Start: m.position, End: end}
}

// PageRowCount is the number of rows the current page actually fills, which
// is less than RowsPerPage() near the end of the file.
func (m *Model) PageRowCount() int {
	if m.IsEmpty() {
		return 0
	}
	return ceilDiv(m.PageRange().Len(), m.CellsPerRow())
}

// InPage reports whether byte p is visible on the current page.
func (m *Model) InPage(p int) bool {
	if m.IsEmpty() {
		return false
	}
	return m.PageRange().Contains(p)
}

// RowCol maps a byte offset to its page-relative (row, col). ok is false when
// p is not on the current page.
func (m *Model) RowCol(p int) (row, col int, ok bool) {
	if !m.InPage(p) {
		return 0, 0, false
	}
	cells := m.CellsPerRow()
	rel := p - m.position
	return rel / cells, rel % cells, true
}

// OffsetAt maps a page-relative (row, col) to a byte offset. ok is false when
// the cell is outside the page or past the end of the file.
func (m *Model) OffsetAt(row, col int) (int, bool) {
	if m.IsEmpty() || row < 0 || col < 0 || row >= m.RowsPerPage() || col >= m.CellsPerRow() {
		return 0, false
	}
	p := m.position + row*m.CellsPerRow() + col
	if p > m.LastByteIndex() {
		return 0, false
	}
	return p, true
}
