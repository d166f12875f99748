package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	ShowStatus   bool
	Style        Style

	KeyMap KeyMap

	// Clipboard is optional. When nil, copy/cut/paste are no-ops.
	Clipboard Clipboard

	ReadOnly bool

	// OnChange is called after any buffer version change caused by Update.
	OnChange func(ChangeEvent)

	// OnAction is called once per formatting action (style, list, enter),
	// including no-ops and rejected actions.
	OnAction func(ActionEvent)

	// Logf receives diagnostic messages. Optional.
	Logf func(format string, args ...any)
}

func (c Config) normalized() Config {
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

func (c Config) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}
