package viewer

// layout holds the column geometry of one grid row:
//
//	0x0000 de ad be ef  ....  │
//	addr   hex cells    prev  scrollbar
type layout struct {
	digits int
	cells  int
	rows   int
}

func (m Model) layout() layout {
	return layout{
		digits: m.addressDigits(),
		cells:  m.page.CellsPerRow(),
		rows:   m.page.RowsPerPage(),
	}
}

func (l layout) addressWidth() int { return 2 + l.digits }

func (l layout) hexX() int { return l.addressWidth() + 1 }

// Two digits per cell, one space between cells.
func (l layout) hexWidth() int { return l.cells*3 - 1 }

func (l layout) previewX() int { return l.hexX() + l.hexWidth() + 2 }

func (l layout) scrollbarX() int { return l.previewX() + l.cells + 1 }

func (l layout) width() int { return l.scrollbarX() + 1 }

// fitCells returns how many cells fit in width next to an address column of
// digits hex digits. Each cell costs four columns (hex, gap, preview).
func fitCells(width, digits int) int {
	fixed := 2 + digits + 4
	n := (width - fixed) / 4
	if n < 1 {
		return 1
	}
	return n
}
