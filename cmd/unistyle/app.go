package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/unistyle/editor"
	"github.com/iw2rmb/unistyle/internal/logs"
)

type appKeys struct {
	editor.KeyMap
	Quit key.Binding
}

func (k appKeys) ShortHelp() []key.Binding {
	return append(k.KeyMap.ShortHelp(), k.Quit)
}

func (k appKeys) FullHelp() [][]key.Binding {
	return append(k.KeyMap.FullHelp(), []key.Binding{k.Quit})
}

type model struct {
	editor editor.Model
	keys   appKeys
	help   help.Model
	log    *logs.RingBuffer
}

func newModel(cfg editor.Config, keys appKeys, log *logs.RingBuffer) model {
	cfg.KeyMap = keys.KeyMap
	cfg.OnAction = func(ev editor.ActionEvent) {
		if ev.Err != nil {
			log.Warnf("editor", "%s: %v", ev.Kind, ev.Err)
		}
	}
	return model{
		editor: editor.New(cfg),
		keys:   keys,
		help:   help.New(),
		log:    log,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, editorHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.log.Infof("tui", "quit")
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.help.View(m.keys)
}

// editorHeight leaves one row for the help line.
func editorHeight(h int) int {
	if h <= 1 {
		return 0
	}
	return h - 1
}
