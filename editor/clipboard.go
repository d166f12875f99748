package editor

import (
	"io"

	"github.com/atotto/clipboard"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// ErrClipboardEmpty is returned by ReadText when nothing was copied yet.
var ErrClipboardEmpty = errors.New("clipboard is empty")

// Clipboard provides editor-level clipboard integration.
//
// The editor calls it from tea.Cmds, never from Update. Errors must not crash
// the UI; failures are logged and shown on the status line.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// OSC52Clipboard writes to the terminal's system clipboard with the OSC 52
// escape sequence. Terminals do not reliably answer OSC 52 queries, so reads
// return the last text written through this clipboard.
type OSC52Clipboard struct {
	out  *termenv.Output
	last string
	set  bool
}

// NewOSC52Clipboard returns a clipboard writing escape sequences to w.
func NewOSC52Clipboard(w io.Writer) *OSC52Clipboard {
	return &OSC52Clipboard{out: termenv.NewOutput(w)}
}

func (c *OSC52Clipboard) WriteText(s string) error {
	if c.out == nil {
		return errors.New("osc52: no output")
	}
	c.out.Copy(s)
	c.last = s
	c.set = true
	return nil
}

func (c *OSC52Clipboard) ReadText() (string, error) {
	if !c.set {
		return "", ErrClipboardEmpty
	}
	return c.last, nil
}

// SystemClipboard uses the OS clipboard through pbcopy/pbpaste, xclip, xsel,
// wl-clipboard or the Windows API.
type SystemClipboard struct{}

// SystemClipboardAvailable reports whether a clipboard tool was found.
func SystemClipboardAvailable() bool { return !clipboard.Unsupported }

func (SystemClipboard) WriteText(s string) error {
	return errors.Wrap(clipboard.WriteAll(s), "system clipboard")
}

func (SystemClipboard) ReadText() (string, error) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, "system clipboard")
	}
	return s, nil
}
