package viewer

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexpage/page"
)

// loaded returns a viewer sized to w x h showing data under "t.bin".
func loaded(t *testing.T, cfg Config, data []byte, w, h int) Model {
	t.Helper()
	m := New(cfg)
	m = m.SetSize(w, h)
	m, _ = m.Update(LoadBytes("t.bin", data)())
	if got := m.Page().FileSize(); got != len(data) {
		t.Fatalf("file size after load: got %d, want %d", got, len(data))
	}
	return m
}

func seqBytes(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestNew_AppliesFixedWidthBeforeFirstSize(t *testing.T) {
	m := New(Config{BytesPerRow: 8})
	if got := m.Page().Geometry(); got != (page.Geometry{Cells: 8, Rows: 0}) {
		t.Fatalf("raw geometry: got %+v, want cells 8 rows 0", got)
	}
	if got := m.Page().RowsPerPage(); got != 1 {
		t.Fatalf("clamped rows: got %d, want 1", got)
	}
}

func TestSetSize_RowsExcludeLabels(t *testing.T) {
	m := New(Config{BytesPerRow: 10})
	m = m.SetSize(80, 12)
	if got := m.Page().Geometry(); got != (page.Geometry{Cells: 10, Rows: 10}) {
		t.Fatalf("geometry: got %+v, want cells 10 rows 10", got)
	}

	m = m.SetSize(80, 2)
	if got := m.Page().Geometry().Rows; got != 1 {
		t.Fatalf("rows at height 2: got %d, want 1", got)
	}

	m = m.SetSize(80, 1)
	if got := m.Page().Geometry().Rows; got != 1 {
		t.Fatalf("rows at height 1: got %d, want 1", got)
	}
}

func TestSetSize_FixedWidthClampedToArea(t *testing.T) {
	m := New(Config{BytesPerRow: 32})
	m = m.SetSize(40, 10)
	// 40 columns fit (40-(2+4+4))/4 = 7 cells with a 4-digit address.
	if got := m.Page().CellsPerRow(); got != 7 {
		t.Fatalf("cells at width 40: got %d, want 7", got)
	}

	m = m.SetSize(200, 10)
	if got := m.Page().CellsPerRow(); got != 32 {
		t.Fatalf("cells at width 200: got %d, want 32", got)
	}
}

func TestSetSize_AutoFitsCellsToWidth(t *testing.T) {
	cases := []struct {
		width int
		cells int
	}{
		{width: 0, cells: 1},
		{width: 14, cells: 1},
		{width: 18, cells: 2},
		{width: 80, cells: 17},
		{width: 120, cells: 27},
	}
	for _, tc := range cases {
		m := New(Config{}).SetSize(tc.width, 10)
		if got := m.Page().CellsPerRow(); got != tc.cells {
			t.Fatalf("width %d: got %d cells, want %d", tc.width, got, tc.cells)
		}
		if l := m.layout(); tc.width >= 14 && l.width() > tc.width {
			t.Fatalf("width %d: layout needs %d columns", tc.width, l.width())
		}
	}
}

func TestSetSize_ReflowsOnCursorRow(t *testing.T) {
	m := loaded(t, Config{BytesPerRow: 10}, seqBytes(100), 80, 5)
	m.Page().SetCursor(55)
	m.Page().SetPosition(50)

	m = m.SetBytesPerRow(7)
	if got := m.Page().Position(); got != 49 {
		t.Fatalf("position after width change: got %d, want 49", got)
	}
	if got := m.Page().Cursor(); got != 55 {
		t.Fatalf("cursor after width change: got %d, want 55", got)
	}
}

func TestSetBytesPerRow_MinimumOne(t *testing.T) {
	m := loaded(t, Config{BytesPerRow: 2}, seqBytes(10), 80, 5)
	m = m.SetBytesPerRow(0)
	if got := m.Page().Geometry().Cells; got != 1 {
		t.Fatalf("cells: got %d, want 1", got)
	}
	m = m.SetBytesPerRow(-3)
	if got := m.Page().Geometry().Cells; got != 1 {
		t.Fatalf("cells after negative: got %d, want 1", got)
	}
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := loaded(t, Config{BytesPerRow: 4}, seqBytes(64), 0, 0)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 60, Height: 6})
	if got := m.Page().Geometry(); got != (page.Geometry{Cells: 4, Rows: 4}) {
		t.Fatalf("geometry after resize: got %+v, want cells 4 rows 4", got)
	}
}

func TestModel_NeverWritesToData(t *testing.T) {
	data := seqBytes(300)
	orig := bytes.Clone(data)
	m := loaded(t, Config{BytesPerRow: 16}, data, 80, 10)

	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyDown}, {Type: tea.KeyPgDown}, {Type: tea.KeyRight},
		{Type: tea.KeyRunes, Runes: []rune("]")}, {Type: tea.KeyRunes, Runes: []rune("G")},
	} {
		m, _ = m.Update(k)
		_ = m.View()
	}
	if !bytes.Equal(data, orig) {
		t.Fatalf("viewer modified the loaded bytes")
	}
}
