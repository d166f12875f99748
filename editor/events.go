package editor

import (
	"github.com/iw2rmb/unistyle/buffer"
	"github.com/iw2rmb/unistyle/list"
)

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Simplest payload; host can diff if needed.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

// ActionKind identifies a formatting action routed through the session engine.
type ActionKind uint8

const (
	ActionBold ActionKind = iota
	ActionItalic
	ActionBullets
	ActionNumbers
	ActionEnter
)

func (k ActionKind) String() string {
	switch k {
	case ActionBold:
		return "bold"
	case ActionItalic:
		return "italic"
	case ActionBullets:
		return "bullets"
	case ActionNumbers:
		return "numbers"
	case ActionEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// ActionEvent reports the outcome of one formatting action.
//
// Applied is false for no-ops (caret outside a word, Enter outside a list).
// Err is set when the engine rejected the current selection; the buffer is
// left untouched in that case.
type ActionEvent struct {
	Kind    ActionKind
	Applied bool
	Err     error
	List    list.Session
}
