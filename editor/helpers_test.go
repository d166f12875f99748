package editor

import (
	"regexp"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

type memClipboard struct {
	t *testing.T
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

type failClipboard struct{ err error }

func (c failClipboard) ReadText() (string, error) { return "", c.err }
func (c failClipboard) WriteText(string) error     { return c.err }

// press sends msg and feeds the resulting command's message back in.
func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	m, cmd := m.Update(msg)
	if cmd == nil {
		return m
	}
	m, _ = m.Update(cmd())
	return m
}
