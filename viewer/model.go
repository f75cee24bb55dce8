package viewer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/hexpage/internal/hexfmt"
	"github.com/iw2rmb/hexpage/internal/logging"
	"github.com/iw2rmb/hexpage/page"
)

// Model is a Bubble Tea component that renders and navigates a page.Model.
type Model struct {
	cfg  Config
	page *page.Model
	log  logging.Logger

	placeholder string

	width, height int
	focused       bool

	showHelp bool
	help     help.Model

	gripDragging bool

	// Highest load sequence applied so far.
	loadSeq uint64

	lastVersion uint64
}

func New(cfg Config) Model {
	if cfg.Logger == nil {
		cfg.Logger = logging.Nop()
	}
	if cfg.BytesPerRow < 0 {
		cfg.BytesPerRow = 0
	}
	cfg.KeyMap = normalizeKeyMap(cfg.KeyMap)

	m := Model{
		cfg:         cfg,
		page:        page.New(page.Options{Logger: logging.Scoped(cfg.Logger, "page")}),
		log:         logging.Scoped(cfg.Logger, "viewer"),
		placeholder: hexfmt.Placeholder(cfg.Placeholder),
		focused:     true,
		help:        help.New(),
	}
	m = m.SetSize(0, 0)
	m.lastVersion = m.page.Version()
	return m
}

// Page exposes the addressing model. Hosts that mutate it directly should
// expect the next Update to report the change.
func (m Model) Page() *page.Model { return m.page }

func (m Model) Init() tea.Cmd { return nil }

// SetSize lays the grid out for a width x height cell area and re-anchors the
// page to the resulting geometry.
//
// A fixed BytesPerRow wider than the area is narrowed to what fits. Labels are
// dropped when height is below 3 so the grid keeps at least one row. View
// never returns more lines than height, nor lines wider than width.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.help.Width = width

	fit := fitCells(width, m.addressDigits())
	cells := m.cfg.BytesPerRow
	if cells <= 0 || (width > 0 && cells > fit) {
		cells = fit
	}
	top, bottom := labelRows(height)
	m.page.SetGeometry(cells, height-top-bottom)
	m.page.Reflow()
	m.page.DragCursorToPage()
	return m
}

// SetBytesPerRow fixes the row width (minimum 1) and re-lays the grid out.
func (m Model) SetBytesPerRow(n int) Model {
	if n < 1 {
		n = 1
	}
	m.cfg.BytesPerRow = n
	return m.SetSize(m.width, m.height)
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.gripDragging = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// HelpVisible reports whether the full key help is shown over the grid.
func (m Model) HelpVisible() bool { return m.showHelp }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	case FileLoadedMsg:
		m = m.applyLoaded(msg)
	case FileLoadFailedMsg:
		m = m.applyLoadFailed(msg)
	}
	(&m).emitChange()
	return m, cmd
}

func (m Model) View() string {
	base := m.renderContent()
	if m.showHelp {
		return m.renderHelpOverlay(base)
	}
	return base
}

func (m *Model) emitChange() {
	ver := m.page.Version()
	if ver == m.lastVersion {
		return
	}
	m.lastVersion = ver
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.page))
	}
}

func (m Model) addressDigits() int {
	return hexfmt.AddressDigits(m.page.LastByteIndex())
}

// labelRows returns how many label lines fit above and below the grid. The
// status line goes first, then the file label. A zero height means the model
// was not sized yet and keeps both.
func labelRows(height int) (top, bottom int) {
	switch {
	case height == 0 || height >= 3:
		return 1, 1
	case height == 2:
		return 1, 0
	}
	return 0, 0
}

func (m Model) headerRows() int {
	top, _ := labelRows(m.height)
	return top
}

func (m Model) scrollbar() page.Scrollbar {
	return page.Scrollbar{Track: m.page.RowsPerPage()}
}
