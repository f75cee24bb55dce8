package viewer

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// loadSeq orders load commands by creation time so a slow, older load can't
// replace a newer one.
var loadSeq atomic.Uint64

// FileLoadedMsg carries the contents produced by a load command. A message
// built by the host carries no load sequence and always applies.
type FileLoadedMsg struct {
	Name string
	Data []byte

	seq uint64
}

// FileLoadFailedMsg reports a load command that could not produce contents.
// Like FileLoadedMsg, a host-built value always applies.
type FileLoadFailedMsg struct {
	Name string
	Err  error

	seq uint64
}

// LoadFile reads path in the command goroutine. The display name is the base
// name of path.
func LoadFile(path string) tea.Cmd {
	seq := loadSeq.Add(1)
	return func() tea.Msg {
		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return FileLoadFailedMsg{Name: name, Err: fmt.Errorf("read %s: %w", path, err), seq: seq}
		}
		return FileLoadedMsg{Name: name, Data: data, seq: seq}
	}
}

// LoadBytes shows data under name. data is not copied and must not be
// modified afterwards.
func LoadBytes(name string, data []byte) tea.Cmd {
	seq := loadSeq.Add(1)
	return func() tea.Msg {
		return FileLoadedMsg{Name: name, Data: data, seq: seq}
	}
}

// LoadBase64 decodes standard base64 text (surrounding whitespace ignored) and
// shows the result under name.
func LoadBase64(name, encoded string) tea.Cmd {
	seq := loadSeq.Add(1)
	return func() tea.Msg {
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
		if err != nil {
			return FileLoadFailedMsg{Name: name, Err: fmt.Errorf("decode %s: %w", name, err), seq: seq}
		}
		return FileLoadedMsg{Name: name, Data: data, seq: seq}
	}
}

// LoadBase64File reads path as base64 text and shows the decoded bytes under
// the base name of path.
func LoadBase64File(path string) tea.Cmd {
	seq := loadSeq.Add(1)
	return func() tea.Msg {
		name := filepath.Base(path)
		text, err := os.ReadFile(path)
		if err != nil {
			return FileLoadFailedMsg{Name: name, Err: fmt.Errorf("read %s: %w", path, err), seq: seq}
		}
		data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(text)))
		if err != nil {
			return FileLoadFailedMsg{Name: name, Err: fmt.Errorf("decode %s: %w", path, err), seq: seq}
		}
		return FileLoadedMsg{Name: name, Data: data, seq: seq}
	}
}

func (m Model) applyLoaded(msg FileLoadedMsg) Model {
	if msg.seq != 0 && msg.seq < m.loadSeq {
		m.log.Debug("dropping superseded load of %q", msg.Name)
		return m
	}
	if msg.seq > m.loadSeq {
		m.loadSeq = msg.seq
	}

	m.page.Load(msg.Name, msg.Data)
	m = m.SetSize(m.width, m.height)
	if m.cfg.OnLoad != nil {
		m.cfg.OnLoad(LoadEvent{Name: msg.Name, Size: len(msg.Data)})
	}
	return m
}

func (m Model) applyLoadFailed(msg FileLoadFailedMsg) Model {
	if msg.seq != 0 && msg.seq < m.loadSeq {
		m.log.Debug("dropping superseded failed load of %q", msg.Name)
		return m
	}
	if msg.seq > m.loadSeq {
		m.loadSeq = msg.seq
	}

	m.log.Error("load %q: %v", msg.Name, msg.Err)
	m.page.Clear()
	m = m.SetSize(m.width, m.height)
	if m.cfg.OnLoad != nil {
		m.cfg.OnLoad(LoadEvent{Name: msg.Name, Err: msg.Err})
	}
	return m
}
