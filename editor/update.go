package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/iw2rmb/unistyle/buffer"
	graphemeutil "github.com/iw2rmb/unistyle/internal/grapheme"
	"github.com/iw2rmb/unistyle/list"
	"github.com/iw2rmb/unistyle/session"
	"github.com/iw2rmb/unistyle/style"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	case key.Matches(msg, km.Backspace):
		if !m.cfg.ReadOnly {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !m.cfg.ReadOnly {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !m.cfg.ReadOnly && !m.runAction(ActionEnter) {
			m.buf.InsertNewline()
		}

	case key.Matches(msg, km.Bold):
		if !m.cfg.ReadOnly {
			m.runAction(ActionBold)
		}
	case key.Matches(msg, km.Italic):
		if !m.cfg.ReadOnly {
			m.runAction(ActionItalic)
		}
	case key.Matches(msg, km.Bullets):
		if !m.cfg.ReadOnly {
			m.runAction(ActionBullets)
		}
	case key.Matches(msg, km.Numbers):
		if !m.cfg.ReadOnly {
			m.runAction(ActionNumbers)
		}

	case key.Matches(msg, km.Copy):
		return m, m.copySelection()
	case key.Matches(msg, km.Cut):
		if !m.cfg.ReadOnly {
			return m, m.cutSelection()
		}
		return m, m.copySelection()
	case key.Matches(msg, km.Paste):
		if !m.cfg.ReadOnly {
			return m, m.pasteClipboard()
		}
	case key.Matches(msg, km.CopyAll):
		return m, m.copyAll()
	case key.Matches(msg, km.Clear):
		if !m.cfg.ReadOnly {
			m.buf.SetText("")
			m.list = list.NewSession()
			m.setStatus("cleared", false)
		}

	default:
		if msg.Type == tea.KeyTab {
			if !m.cfg.ReadOnly {
				m.buf.InsertRune('\t')
			}
			return m, nil
		}

		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			if !m.cfg.ReadOnly {
				m.buf.InsertText(string(msg.Runes))
			}
		}
	}

	return m, nil
}

// runAction routes a formatting action through the session engine and
// reports whether it changed the editing state.
func (m *Model) runAction(kind ActionKind) bool {
	snap := m.Snapshot()

	var (
		next    session.Snapshot
		applied bool
		err     error
	)
	switch kind {
	case ActionBold:
		next, err = session.ToggleStyle(snap, style.Bold)
		applied = next != snap
	case ActionItalic:
		next, err = session.ToggleStyle(snap, style.Italic)
		applied = next != snap
	case ActionBullets:
		next, err = session.ToggleList(snap, list.Bullets)
		applied = next != snap
	case ActionNumbers:
		next, err = session.ToggleList(snap, list.Numbers)
		applied = next != snap
	case ActionEnter:
		next, applied, err = session.HandleEnter(snap)
	}

	if err != nil {
		m.cfg.logf("editor: %s rejected: %v", kind, err)
		m.setStatus(fmt.Sprintf("%s: %v", kind, err), true)
		m.emitAction(ActionEvent{Kind: kind, Err: err, List: m.list})
		return false
	}
	if applied {
		if !m.buf.Reset(next.Text, next.Selection) {
			// Engine output always fits its own text; treat a mismatch as a rejection.
			m.cfg.logf("editor: %s produced span %+v outside text", kind, next.Selection)
			m.emitAction(ActionEvent{Kind: kind, List: m.list})
			return false
		}
		m.list = next.List
	}

	switch {
	case kind == ActionEnter:
		// Enter is too frequent to announce.
	case applied:
		m.setStatus(kind.String(), false)
	default:
		m.setStatus(kind.String()+": nothing to do", false)
	}
	m.cfg.logf("editor: %s applied=%v list=%s", kind, applied, m.list.Mode)
	m.emitAction(ActionEvent{Kind: kind, Applied: applied, List: m.list})
	return applied
}

func (m *Model) emitAction(ev ActionEvent) {
	if m.cfg.OnAction != nil {
		m.cfg.OnAction(ev)
	}
}

func (m *Model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// clipboardWriteMsg reports a finished clipboard write.
type clipboardWriteMsg struct {
	op    string
	chars int
	err   error
}

// clipboardReadMsg carries clipboard text for a paste.
type clipboardReadMsg struct {
	text string
	err  error
}

// writeClipboard returns a command that writes s outside of Update, so
// terminal escape sequences never race a frame being drawn.
func (m *Model) writeClipboard(op, s string) tea.Cmd {
	cb := m.cfg.Clipboard
	return func() tea.Msg {
		return clipboardWriteMsg{op: op, chars: graphemeutil.Count(s), err: cb.WriteText(s)}
	}
}

func (m *Model) copySelection() tea.Cmd {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return nil
	}
	s := m.buf.SelectedText()
	if s == "" {
		return nil
	}
	return m.writeClipboard("copy", s)
}

func (m *Model) cutSelection() tea.Cmd {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return nil
	}
	s := m.buf.SelectedText()
	if s == "" {
		return nil
	}
	m.buf.DeleteSelection()
	return m.writeClipboard("cut", s)
}

func (m *Model) pasteClipboard() tea.Cmd {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return nil
	}
	cb := m.cfg.Clipboard
	return func() tea.Msg {
		s, err := cb.ReadText()
		return clipboardReadMsg{text: s, err: err}
	}
}

func (m *Model) copyAll() tea.Cmd {
	if m.cfg.Clipboard == nil || m.buf == nil {
		return nil
	}
	return m.writeClipboard("copy all", m.buf.Text())
}

func (m *Model) clipboardWritten(msg clipboardWriteMsg) {
	if msg.err != nil {
		m.cfg.logf("editor: %s: %v", msg.op, msg.err)
		m.setStatus(msg.op+" failed", true)
		return
	}
	if msg.op == "copy all" {
		m.setStatus(fmt.Sprintf("copied %s characters", humanize.Comma(int64(msg.chars))), false)
	}
}

func (m *Model) clipboardRead(msg clipboardReadMsg) {
	if msg.err != nil {
		m.cfg.logf("editor: paste: %v", msg.err)
		return
	}
	if msg.text == "" || m.buf == nil || m.cfg.ReadOnly || !m.focused {
		return
	}
	m.buf.InsertText(normalizeNewlines(msg.text))
}

// Normalize newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
