package page

import (
	"math"
	"testing"
)

func TestHandleFraction(t *testing.T) {
	m := New(Options{})
	if got := m.HandleFraction(); got != 0 {
		t.Fatalf("HandleFraction on empty: got %v, want 0", got)
	}

	m = newLoaded(100, 10, 3)
	m.SetPosition(30)
	if got := m.HandleFraction(); got != 0.3 {
		t.Fatalf("HandleFraction at 30: got %v, want 0.3", got)
	}
	m.SetPosition(90)
	if got := m.HandleFraction(); got != 0.9 {
		t.Fatalf("HandleFraction at last row: got %v, want 0.9", got)
	}
}

func TestPositionForFraction(t *testing.T) {
	m := newLoaded(100, 10, 3)

	cases := []struct {
		f    float64
		want int
	}{
		{f: 0, want: 0},
		{f: 0.3, want: 30},
		{f: 0.34, want: 30},
		{f: 0.36, want: 40},
		{f: 0.96, want: 90},
		{f: 1, want: 90},
		{f: 7, want: 90},
		{f: -1, want: 0},
		{f: math.NaN(), want: 0},
	}
	for _, tc := range cases {
		got := m.PositionForFraction(tc.f)
		if got != tc.want {
			t.Fatalf("PositionForFraction(%v): got %d, want %d", tc.f, got, tc.want)
		}
		if !m.IsRowStart(got) {
			t.Fatalf("PositionForFraction(%v) = %d is not a row start", tc.f, got)
		}
	}
}

func TestPositionForFraction_RoundTripsEveryRow(t *testing.T) {
	m := newLoaded(1000, 16, 5)
	for p := 0; p <= m.LastRowStart(); p += m.CellsPerRow() {
		m.SetPosition(p)
		if got := m.PositionForFraction(m.HandleFraction()); got != p {
			t.Fatalf("round trip at %d: got %d", p, got)
		}
	}
}

func TestScrollbar_GripAndPositionAt(t *testing.T) {
	m := newLoaded(100, 10, 3)
	sb := Scrollbar{Track: 11}

	m.SetPosition(30)
	if got := sb.Grip(m); got != 3 {
		t.Fatalf("Grip at 30: got %d, want %d", got, 3)
	}
	if got := sb.PositionAt(m, 3); got != 30 {
		t.Fatalf("PositionAt(3): got %d, want %d", got, 30)
	}

	// The last cell always means "last row", even though positions only
	// reach grip 9 on their own.
	if got := sb.PositionAt(m, 10); got != 90 {
		t.Fatalf("PositionAt(last): got %d, want %d", got, 90)
	}
	if got := sb.PositionAt(m, 99); got != 90 {
		t.Fatalf("PositionAt(past last): got %d, want %d", got, 90)
	}
	if got := sb.PositionAt(m, -4); got != 0 {
		t.Fatalf("PositionAt(-4): got %d, want %d", got, 0)
	}

	m.SetPosition(90)
	if got := sb.Grip(m); got != 9 {
		t.Fatalf("Grip at last row: got %d, want %d", got, 9)
	}
}

func TestScrollbar_DegenerateTrack(t *testing.T) {
	m := newLoaded(100, 10, 3)
	m.SetPosition(40)

	for _, track := range []int{-1, 0, 1} {
		sb := Scrollbar{Track: track}
		if got := sb.Grip(m); got != 0 {
			t.Fatalf("Grip with track %d: got %d, want 0", track, got)
		}
		if got := sb.PositionAt(m, 0); got != 40 {
			t.Fatalf("PositionAt with track %d: got %d, want current position 40", track, got)
		}
	}
}
