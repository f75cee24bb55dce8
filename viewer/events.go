package viewer

import "github.com/iw2rmb/hexpage/page"

type ChangeEvent struct {
	Version  uint64
	Position int
	Cursor   int
	Page     page.Range
	Geometry page.Geometry // clamped values
}

func buildChangeEvent(p *page.Model) ChangeEvent {
	return ChangeEvent{
		Version:  p.Version(),
		Position: p.Position(),
		Cursor:   p.Cursor(),
		Page:     p.PageRange(),
		Geometry: page.Geometry{Cells: p.CellsPerRow(), Rows: p.RowsPerPage()},
	}
}

// LoadEvent reports a finished load. Err is nil on success; on failure the
// viewer has been cleared.
type LoadEvent struct {
	Name string
	Size int
	Err  error
}
