package main

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/hexpage/internal/config"
	"github.com/iw2rmb/hexpage/internal/hexfmt"
	"github.com/iw2rmb/hexpage/internal/logging"
	"github.com/iw2rmb/hexpage/viewer"
)

var quitKey = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))

// loadState is shared with the viewer's OnLoad callback.
type loadState struct {
	err error
}

func (s *loadState) handleLoad(ev viewer.LoadEvent) { s.err = ev.Err }

type app struct {
	viewer viewer.Model
	load   tea.Cmd
	state  *loadState

	width    int
	errStyle lipgloss.Style
}

func newApp(cfg config.Config, logger logging.Logger, load tea.Cmd) app {
	state := &loadState{}
	v := viewer.New(viewer.Config{
		BytesPerRow: cfg.BytesPerRow,
		Placeholder: cfg.Placeholder,
		Style:       styleFromTheme(cfg.Theme),
		Logger:      logger,
		OnLoad:      state.handleLoad,
	})
	return app{
		viewer:   v,
		load:     load,
		state:    state,
		errStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

// setSize gives the viewer every line but the last, which holds load errors.
func (a app) setSize(w, h int) app {
	a.width = w
	a.viewer = a.viewer.SetSize(w, h-1)
	return a
}

func (a app) Init() tea.Cmd { return a.load }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.setSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		if key.Matches(msg, quitKey) {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.viewer, cmd = a.viewer.Update(msg)
	return a, cmd
}

func (a app) View() string {
	if a.state.err == nil {
		return a.viewer.View()
	}
	return a.viewer.View() + "\n" + a.errStyle.Render(hexfmt.Truncate(a.state.err.Error(), a.width))
}
