package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/hexpage/internal/hexfmt"
)

const (
	gripGlyph  = "█"
	trackGlyph = "│"
)

func (m Model) renderContent() string {
	st := m.cfg.Style
	p := m.page

	fileLabel := hexfmt.FileLabel(p.Filename(), p.FileSize(), !p.IsEmpty())
	if m.width > 0 {
		fileLabel = hexfmt.Truncate(fileLabel, m.width)
	}
	if p.IsEmpty() {
		return st.Label.Render(fileLabel)
	}

	l := m.layout()
	top, bottom := labelRows(m.height)
	lines := make([]string, 0, l.rows+top+bottom)
	if top > 0 {
		lines = append(lines, st.Label.Render(fileLabel))
	}

	grip := m.scrollbar().Grip(p)
	for r := 0; r < l.rows; r++ {
		lines = append(lines, m.clip(m.renderRow(l, r, r == grip)))
	}

	if bottom > 0 {
		lines = append(lines, m.renderStatus())
	}
	return strings.Join(lines, "\n")
}

// clip cuts a styled line to the model width. Rows only overflow when the area
// is narrower than a one-cell row.
func (m Model) clip(line string) string {
	if m.width <= 0 {
		return line
	}
	return ansi.Truncate(line, m.width, "")
}

func (m Model) renderRow(l layout, row int, grip bool) string {
	st := m.cfg.Style
	start := m.page.Position() + row*l.cells

	var sb strings.Builder
	if start > m.page.LastByteIndex() {
		sb.WriteString(hexfmt.Pad("", l.scrollbarX()))
	} else {
		sb.WriteString(st.Address.Render(hexfmt.Address(start, l.digits)))
		sb.WriteByte(' ')
		m.renderCells(&sb, l, start)
	}

	if grip {
		sb.WriteString(st.Grip.Render(gripGlyph))
	} else {
		sb.WriteString(st.Scrollbar.Render(trackGlyph))
	}
	return sb.String()
}

// renderCells writes the hex cells, the gap, the preview column and the gap
// before the scrollbar for the row starting at start.
func (m Model) renderCells(sb *strings.Builder, l layout, start int) {
	st := m.cfg.Style
	hexCells := make([]string, l.cells)
	preview := make([]string, l.cells)
	cursorCol := -1

	for c := 0; c < l.cells; c++ {
		i := start + c
		b, err := m.page.Byte(i)
		if err != nil {
			hexCells[c] = "  "
			preview[c] = " "
			continue
		}
		hexCells[c] = hexfmt.Byte(b)
		preview[c] = hexfmt.Preview(b, m.placeholder)
		if m.focused && i == m.page.Cursor() {
			cursorCol = c
		}
	}

	sb.WriteString(renderHighlighted(hexCells, " ", cursorCol, st.Hex, st.Cursor))
	sb.WriteString("  ")
	sb.WriteString(renderHighlighted(preview, "", cursorCol, st.Preview, st.Cursor))
	sb.WriteByte(' ')
}

// renderHighlighted joins cells with sep, rendering cell hi with the hi style
// and everything around it with base. hi < 0 means no highlight.
func renderHighlighted(cells []string, sep string, hi int, base, hiStyle lipgloss.Style) string {
	if hi < 0 || hi >= len(cells) {
		return base.Render(strings.Join(cells, sep))
	}

	var sb strings.Builder
	if hi > 0 {
		sb.WriteString(base.Render(strings.Join(cells[:hi], sep) + sep))
	}
	sb.WriteString(hiStyle.Render(cells[hi]))
	if hi < len(cells)-1 {
		sb.WriteString(base.Render(sep + strings.Join(cells[hi+1:], sep)))
	}
	return sb.String()
}

func (m Model) renderStatus() string {
	text := hexfmt.CursorLabel(m.page.Cursor())
	if m.width <= 0 {
		return m.cfg.Style.Label.Render(text)
	}
	label := m.cfg.Style.Label.Render(hexfmt.Truncate(text, m.width))
	short := m.help.ShortHelpView(m.cfg.KeyMap.ShortHelp())
	if lipgloss.Width(label)+2+lipgloss.Width(short) > m.width {
		return label
	}
	return label + "  " + short
}

func (m Model) renderHelpOverlay(base string) string {
	h := m.help
	h.ShowAll = true
	box := m.cfg.Style.HelpBox.Render(h.View(m.cfg.KeyMap))

	x := (m.width - lipgloss.Width(box)) / 2
	if x < 0 {
		x = 0
	}
	y := (lipgloss.Height(base) - lipgloss.Height(box)) / 2
	if y < 0 {
		y = 0
	}
	return overlay.Composite(box, base, overlay.Left, overlay.Top, x, y)
}
