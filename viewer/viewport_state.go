package viewer

import "github.com/iw2rmb/hexpage/page"

// ViewportState is a stable host-facing snapshot of what the viewer shows.
type ViewportState struct {
	Position int
	Cursor   int
	// Page is the inclusive visible byte range; [0,0] when nothing is loaded.
	Page page.Range
	// Geometry holds the clamped cells per row and rows per page.
	Geometry page.Geometry

	// Grip is the scrollbar grip row on a track of Geometry.Rows cells.
	Grip int
}

func (m Model) ViewportState() ViewportState {
	return ViewportState{
		Position: m.page.Position(),
		Cursor:   m.page.Cursor(),
		Page:     m.page.PageRange(),
		Geometry: page.Geometry{Cells: m.page.CellsPerRow(), Rows: m.page.RowsPerPage()},
		Grip:     m.scrollbar().Grip(m.page),
	}
}

// ScreenToOffset maps component-local screen coordinates to the byte under
// them, in either the hex or the preview column.
//
// ok is false for the labels, the address and scrollbar columns, and cells
// past the end of the file.
func (m Model) ScreenToOffset(x, y int) (offset int, ok bool) {
	h := m.hitTest(x, y)
	if h.zone != zoneHex && h.zone != zonePreview {
		return 0, false
	}
	return m.page.OffsetAt(h.row, h.col)
}

// OffsetToScreen maps a byte offset to the screen position of its first hex
// digit. ok is false when the byte is not on the current page.
func (m Model) OffsetToScreen(offset int) (x, y int, ok bool) {
	row, col, ok := m.page.RowCol(offset)
	if !ok {
		return 0, 0, false
	}
	l := m.layout()
	return l.hexX() + col*3, row + m.headerRows(), true
}
