package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/unistyle/buffer"
	"github.com/iw2rmb/unistyle/list"
	"github.com/iw2rmb/unistyle/session"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
//
// The list session lives next to the buffer: it is the part of the editing
// state the buffer itself knows nothing about.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	list list.Session

	focused bool

	viewport viewport.Model
	width    int
	height   int

	status    string
	statusErr bool

	lastBufVersion uint64
	lastCursor     buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.normalized()
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text),
		list:     list.NewSession(),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// ListSession returns the current list continuation state.
func (m Model) ListSession() list.Session { return m.list }

// Snapshot returns the editing state in the form the session package expects.
func (m Model) Snapshot() session.Snapshot {
	return session.Snapshot{
		Text:      m.buf.Text(),
		Selection: m.buf.SelectionSpan(),
		List:      m.list,
	}
}

// Status returns the last status message, if any.
func (m Model) Status() string { return m.status }

// SetText replaces the document, puts the caret at the end and resets the
// list session.
func (m Model) SetText(text string) Model {
	m.buf.SetText(text)
	m.list = list.NewSession()
	m.syncFromBuffer()
	m.followCursor()
	return m
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = m.textHeight()

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) textHeight() int {
	h := m.height
	if m.cfg.ShowStatus && h > 0 {
		h--
	}
	return h
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		// Rebuild content in case the host mutated the buffer outside of the editor.
		m.syncFromBuffer()
		// Don't force-follow cursor here; allow manual scrolling via mouse wheel.
		return m, cmd
	case tea.KeyMsg:
		before := m.buf.Version()
		var cmd tea.Cmd
		m, cmd = m.updateKey(msg)
		if m.buf.Version() != before && m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.buf))
		}
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, cmd
	case clipboardWriteMsg:
		m.clipboardWritten(msg)
		return m, nil
	case clipboardReadMsg:
		before := m.buf.Version()
		m.clipboardRead(msg)
		if m.buf.Version() != before && m.cfg.OnChange != nil {
			m.cfg.OnChange(buildChangeEvent(m.buf))
		}
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	default:
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion = ver
	m.lastCursor = cur
	m.rebuildContent()
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
		return
	}
}
