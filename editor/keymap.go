package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding
	SelectAll                                 key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding

	Copy, Cut, Paste key.Binding
	CopyAll, Clear   key.Binding

	Bold, Italic     key.Binding
	Bullets, Numbers key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart:  key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "doc start")),
		DocEnd:    key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "doc end")),
		SelectAll: key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),

		Copy:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		CopyAll: key.NewBinding(key.WithKeys("alt+c"), key.WithHelp("alt+c", "copy all")),
		Clear:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),

		// ctrl+i is indistinguishable from tab in most terminals.
		Bold:    key.NewBinding(key.WithKeys("ctrl+b", "alt+b"), key.WithHelp("ctrl+b", "bold")),
		Italic:  key.NewBinding(key.WithKeys("alt+i"), key.WithHelp("alt+i", "italic")),
		Bullets: key.NewBinding(key.WithKeys("alt+u"), key.WithHelp("alt+u", "bullets")),
		Numbers: key.NewBinding(key.WithKeys("alt+n"), key.WithHelp("alt+n", "numbers")),
	}
}

// Override rebinds named actions. Unknown names and empty key lists are
// ignored; the returned slice lists the names that were not recognized.
func (km KeyMap) Override(keys map[string][]string) (KeyMap, []string) {
	var unknown []string
	for name, ks := range keys {
		b := km.binding(name)
		if b == nil {
			unknown = append(unknown, name)
			continue
		}
		if len(ks) == 0 {
			continue
		}
		help := b.Help()
		*b = key.NewBinding(key.WithKeys(ks...), key.WithHelp(ks[0], help.Desc))
	}
	return km, unknown
}

func (km *KeyMap) binding(name string) *key.Binding {
	switch name {
	case "bold":
		return &km.Bold
	case "italic":
		return &km.Italic
	case "bullets":
		return &km.Bullets
	case "numbers":
		return &km.Numbers
	case "copy":
		return &km.Copy
	case "cut":
		return &km.Cut
	case "paste":
		return &km.Paste
	case "copy_all":
		return &km.CopyAll
	case "clear":
		return &km.Clear
	case "select_all":
		return &km.SelectAll
	}
	return nil
}

// ShortHelp lists the formatting bindings for a help line.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Bold, km.Italic, km.Bullets, km.Numbers, km.CopyAll, km.Clear}
}

// FullHelp groups every binding for an expanded help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Bold, km.Italic, km.Bullets, km.Numbers},
		{km.Copy, km.Cut, km.Paste, km.CopyAll, km.Clear},
		{km.WordLeft, km.WordRight, km.Home, km.End, km.SelectAll},
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Left.Keys()) == 0 && len(km.Enter.Keys()) == 0
}
