package page

import "github.com/iw2rmb/hexpage/internal/logging"

type Options struct {
	// Logger receives correction diagnostics. Defaults to logging.Nop().
	Logger logging.Logger
}

// Model is the page/cursor addressing state for one loaded file.
//
// The zero geometry is legal: every addressing computation clamps the cell and
// row counts to at least 1.
type Model struct {
	name string
	data []byte

	position int
	cursor   int

	cells int
	rows  int

	version uint64

	log logging.Logger
}

func New(opt Options) *Model {
	l := opt.Logger
	if l == nil {
		l = logging.Nop()
	}
	return &Model{log: l}
}

// Load replaces the file contents. Position and cursor reset to 0; the raw
// geometry is kept because the layout owns it. The model keeps data as-is and
// never writes to it.
func (m *Model) Load(name string, data []byte) {
	m.name = name
	m.data = data
	m.position = 0
	m.cursor = 0
	m.version++
	m.log.Info("loaded %q (%d bytes)", name, len(data))
}

// Clear returns the model to the Empty state, including the raw geometry.
func (m *Model) Clear() {
	m.name = ""
	m.data = nil
	m.position = 0
	m.cursor = 0
	m.cells = 0
	m.rows = 0
	m.version++
}

func (m *Model) Filename() string { return m.name }

func (m *Model) FileSize() int { return len(m.data) }

func (m *Model) IsEmpty() bool { return len(m.data) < 1 }

// Version increments on every effective state change.
func (m *Model) Version() uint64 { return m.version }

func (m *Model) Position() int { return m.position }

func (m *Model) Cursor() int { return m.cursor }

// Byte returns the byte at index i. Indices outside [0, FileSize()) fail with
// a *RangeError wrapping ErrOutOfRange.
func (m *Model) Byte(i int) (byte, error) {
	if i < 0 || i >= len(m.data) {
		return 0, &RangeError{Index: i, Size: len(m.data)}
	}
	return m.data[i], nil
}

// Slice returns the bytes in r, clamped to the file. The returned slice
// aliases the loaded data and must not be modified.
func (m *Model) Slice(r Range) []byte {
	if m.IsEmpty() {
		return nil
	}
	start := clampInt(r.Start, 0, m.LastByteIndex())
	end := clampInt(r.End, 0, m.LastByteIndex())
	if end < start {
		return nil
	}
	return m.data[start : end+1]
}

// Geometry returns the raw (unclamped) geometry.
func (m *Model) Geometry() Geometry {
	return Geometry{Cells: m.cells, Rows: m.rows}
}

// SetGeometry stores the raw cells-per-row and rows-per-page. Negative values
// are stored as 0. The position is not re-validated here; callers follow up
// with Reflow.
func (m *Model) SetGeometry(cells, rows int) {
	cells = maxInt(cells, 0)
	rows = maxInt(rows, 0)
	if cells == m.cells && rows == m.rows {
		return
	}
	m.cells = cells
	m.rows = rows
	m.version++
}

// SetPosition moves the page start and returns the applied position.
//
// The value is first clamped into [0, LastByteIndex()]. If the clamped value
// is not a row start it is discarded, and the current position is snapped to
// its closest row start instead.
func (m *Model) SetPosition(p int) int {
	next := p
	if next < 0 || next > m.LastByteIndex() {
		m.log.Debug("correcting out-of-bounds position %d", p)
		next = m.clampByte(next)
	}
	if !m.IsRowStart(next) {
		m.log.Debug("correcting non-row-start position %d", p)
		next = m.ClosestRowStart(m.position)
	}
	if next != m.position {
		m.position = next
		m.version++
	}
	return next
}

// SetCursor clamps p into [0, FileSize()-1] (0 when empty) and returns the
// applied cursor.
func (m *Model) SetCursor(p int) int {
	next := m.clampByte(p)
	if next != m.cursor {
		m.cursor = next
		m.version++
	}
	return next
}

// Reflow re-anchors the page on the cursor's row. Call it after every
// geometry change.
func (m *Model) Reflow() {
	m.SetPosition(m.ClosestRowStart(m.cursor))
}

func (m *Model) clampByte(p int) int {
	return clampInt(p, 0, m.LastByteIndex())
}
