package viewer

type zone int

const (
	zoneNone zone = iota
	zoneHex
	zonePreview
	zoneScrollbar
)

type hit struct {
	zone     zone
	row, col int // page-relative grid cell; col is unset for zoneScrollbar
}

// hitTest maps component-local screen coordinates to a grid zone.
//
// The space after a hex cell belongs to that cell. Rows past the end of the
// file still hit, OffsetAt rejects them.
func (m Model) hitTest(x, y int) hit {
	l := m.layout()
	row := y - m.headerRows()
	if row < 0 || row >= l.rows || x < 0 {
		return hit{}
	}

	switch {
	case x >= l.hexX() && x < l.hexX()+l.hexWidth()+1:
		col := (x - l.hexX()) / 3
		if col >= l.cells {
			return hit{}
		}
		return hit{zone: zoneHex, row: row, col: col}
	case x >= l.previewX() && x < l.previewX()+l.cells:
		return hit{zone: zonePreview, row: row, col: x - l.previewX()}
	case x == l.scrollbarX():
		return hit{zone: zoneScrollbar, row: row}
	}
	return hit{}
}
