// Package session exposes the text-transformation engine to an editing
// collaborator as operations over immutable snapshots.
//
// Each operation receives a complete Snapshot and returns a new one; the input
// is never modified. Offsets are UTF-16 code units.
package session

import (
	"github.com/iw2rmb/unistyle/boundary"
	"github.com/iw2rmb/unistyle/list"
	"github.com/iw2rmb/unistyle/style"
)

// Snapshot is the editing state owned by the collaborator between calls.
type Snapshot struct {
	Text      string
	Selection boundary.Span
	List      list.Session
}

// New returns a snapshot of text with the caret at the end and no list mode.
func New(text string) Snapshot {
	end := boundary.Len(text)
	return Snapshot{
		Text:      text,
		Selection: boundary.Span{Start: end, End: end},
		List:      list.NewSession(),
	}
}

// Caret is the insertion point: the selection end.
func (s Snapshot) Caret() int { return s.Selection.End }

// ToggleStyle toggles axis on the selection, or on the word at the caret.
// A caret outside any word returns s unchanged.
func ToggleStyle(s Snapshot, axis style.Axis) (Snapshot, error) {
	res, err := style.Apply(s.Text, s.Selection, axis)
	if err != nil {
		return s, err
	}
	s.Text = res.Text
	s.Selection = res.Selection
	return s, nil
}

// ToggleList adds or removes kind markers on the lines the selection touches.
func ToggleList(s Snapshot, kind list.Kind) (Snapshot, error) {
	res, err := list.Toggle(s.Text, s.Selection, kind, s.List)
	if err != nil {
		return s, err
	}
	s.Text = res.Text
	s.Selection = res.Selection
	s.List = res.Session
	return s, nil
}

// HandleEnter reports whether the list engine consumed an Enter keypress at
// the caret. When it did not, s is returned unchanged and the collaborator
// inserts its own newline.
//
// A non-empty selection is never continued as a list.
func HandleEnter(s Snapshot) (Snapshot, bool, error) {
	if !s.Selection.IsEmpty() {
		if err := boundary.Validate(boundary.Units(s.Text), s.Selection); err != nil {
			return s, false, err
		}
		return s, false, nil
	}
	res, err := list.HandleEnter(s.Text, s.Caret(), s.List)
	if err != nil {
		return s, false, err
	}
	if !res.Consumed {
		return s, false, nil
	}
	s.Text = res.Text
	s.Selection = boundary.Span{Start: res.Caret, End: res.Caret}
	s.List = res.Session
	return s, true, nil
}
