package viewer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexpage/page"
)

func TestOnChange_FiresOnMovesAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := loaded(t, Config{
		BytesPerRow: 10,
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	}, seqBytes(100), 80, 5)
	if len(events) == 0 {
		t.Fatalf("load should report a change")
	}
	events = nil

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want 1", len(events))
	}
	if got := events[0].Cursor; got != 1 {
		t.Fatalf("event cursor: got %d, want 1", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft}) // no-op at 0
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want 2", len(events))
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if len(events) != 3 {
		t.Fatalf("events after pgdown: got %d, want 3", len(events))
	}
	ev := events[2]
	if ev.Position != 20 || ev.Cursor != 20 {
		t.Fatalf("pgdown event: got position %d cursor %d, want 20/20", ev.Position, ev.Cursor)
	}
	if ev.Page != (page.Range{Start: 20, End: 49}) {
		t.Fatalf("pgdown event page: got %v, want [20,49]", ev.Page)
	}
	if ev.Geometry != (page.Geometry{Cells: 10, Rows: 3}) {
		t.Fatalf("pgdown event geometry: got %+v", ev.Geometry)
	}
	if ev.Version != m.Page().Version() {
		t.Fatalf("event version: got %d, want %d", ev.Version, m.Page().Version())
	}
}

func TestViewportState(t *testing.T) {
	m := loaded(t, Config{BytesPerRow: 10}, seqBytes(100), 80, 5)
	m.Page().SetPosition(90)

	vs := m.ViewportState()
	want := ViewportState{
		Position: 90,
		Cursor:   0,
		Page:     page.Range{Start: 90, End: 99},
		Geometry: page.Geometry{Cells: 10, Rows: 3},
		Grip:     2,
	}
	if vs != want {
		t.Fatalf("viewport state: got %+v, want %+v", vs, want)
	}
}
