package page

import "math"

// HandleFraction maps the position to a scrollbar fraction in [0,1):
// the current row index over TotalRows(). Empty files report 0.
func (m *Model) HandleFraction() float64 {
	total := m.TotalRows()
	if total == 0 {
		return 0
	}
	row := m.position / m.CellsPerRow()
	return float64(row) / float64(total)
}

// PositionForFraction is the inverse of HandleFraction: f is clamped to [0,1],
// scaled to a row index, and snapped to a legal row start.
func (m *Model) PositionForFraction(f float64) int {
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	row := int(math.Round(float64(m.TotalRows()) * f))
	return m.ClosestRowStart(row * m.CellsPerRow())
}

// Scrollbar discretizes the fraction mapping onto a track of Track cells with
// a one-cell grip.
type Scrollbar struct {
	Track int
}

// Grip returns the grip cell for the model's position.
func (s Scrollbar) Grip(m *Model) int {
	last := s.Track - 1
	if last <= 0 {
		return 0
	}
	g := int(math.Round(m.HandleFraction() * float64(last)))
	return clampInt(g, 0, last)
}

// PositionAt returns the row-start position for a grip dragged to cell grip.
// The last cell always maps to LastRowStart(); a single-cell track keeps the
// current position.
func (s Scrollbar) PositionAt(m *Model, grip int) int {
	last := s.Track - 1
	if last <= 0 {
		return m.Position()
	}
	grip = clampInt(grip, 0, last)
	if grip == last {
		return m.LastRowStart()
	}
	return m.PositionForFraction(float64(grip) / float64(last))
}
