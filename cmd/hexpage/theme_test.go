package main

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hexpage/internal/config"
)

func TestStyleFromTheme(t *testing.T) {
	st := styleFromTheme(config.Theme{Address: "240", Cursor: "#ff00aa"})

	if got := st.Address.GetForeground(); got != lipgloss.Color("240") {
		t.Fatalf("address color: got %v, want 240", got)
	}
	if _, ok := st.Hex.GetForeground().(lipgloss.NoColor); !ok {
		t.Fatalf("hex color: got %v, want NoColor", st.Hex.GetForeground())
	}
	if got := st.Cursor.GetBackground(); got != lipgloss.Color("#ff00aa") {
		t.Fatalf("cursor background: got %v, want #ff00aa", got)
	}
	if !st.Label.GetBold() {
		t.Fatalf("label should stay bold")
	}

	st = styleFromTheme(config.Theme{})
	if !st.Cursor.GetReverse() {
		t.Fatalf("empty cursor color should fall back to reverse video")
	}
}
