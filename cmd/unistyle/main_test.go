package main

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/unistyle/editor"
	"github.com/iw2rmb/unistyle/internal/config"
	"github.com/iw2rmb/unistyle/internal/logs"
)

func run(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unistyle %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestCommands(t *testing.T) {
	cases := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "bold-args", args: []string{"bold", "Hi", "5"}, want: "\U0001D407\U0001D422 \U0001D7D3\n"},
		{name: "bold-toggles-back", args: []string{"bold", "\U0001D407\U0001D422"}, want: "Hi\n"},
		{name: "bold-stdin", stdin: "ab\n", args: []string{"bold"}, want: "\U0001D41A\U0001D41B\n"},
		{name: "italic-force", args: []string{"italic", "--force", "\U0001D41A" + "b"}, want: "\U0001D44E\U0001D44F\n"},
		{name: "bold-force-keeps-bold", args: []string{"bold", "-f", "\U0001D41A" + "b"}, want: "\U0001D41A\U0001D41B\n"},
		{name: "plain", args: []string{"plain", "\U0001D489\u210E!"}, want: "hh!\n"},
		{name: "bullets", stdin: "a\nb\n", args: []string{"list"}, want: "• a\n• b\n"},
		{name: "numbers", stdin: "a\n\nb", args: []string{"list", "--numbers"}, want: "1. a\n\n2. b\n"},
		{name: "kind-numbers", stdin: "a\nb", args: []string{"list", "--kind", "ol"}, want: "1. a\n2. b\n"},
		{name: "style-by-name", args: []string{"style", "Italic", "ab"}, want: "\U0001D44E\U0001D44F\n"},
		{name: "style-by-letter-force", args: []string{"style", "b", "-f", "\U0001D44E"}, want: "\U0001D41A\n"},
		{name: "numbers-off", stdin: "1. a\n2. b", args: []string{"list", "-n"}, want: "a\nb\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := run(t, tc.stdin, tc.args...); got != tc.want {
				t.Fatalf("output: got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestListCommand_RejectsBothKinds(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"list", "-b", "-n"})
	cmd.SetIn(strings.NewReader("a"))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected error for --bullets with --numbers")
	}
}

func TestCommands_RejectUnknownNames(t *testing.T) {
	for _, args := range [][]string{
		{"list", "--kind", "dash"},
		{"style", "underline", "x"},
		{"style"},
	} {
		cmd := newRootCmd()
		cmd.SetArgs(args)
		cmd.SetIn(strings.NewReader("a"))
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("unistyle %v: expected error", args)
		}
	}
}

func TestInspectCommand(t *testing.T) {
	got := run(t, "", "inspect", "\U0001D400a!")

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("inspect lines: got %d\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[1], "0 ") || !strings.Contains(lines[1], "upper") || !strings.Contains(lines[1], "true") {
		t.Fatalf("bold A row: %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "2 ") || !strings.Contains(lines[2], "lower") {
		t.Fatalf("a row: %q", lines[2])
	}
	if !strings.Contains(lines[3], "other") || !strings.Contains(lines[3], " - ") {
		t.Fatalf("! row: %q", lines[3])
	}
	if want := "3 characters, 1 styled, 4 UTF-16 units, 6 B"; lines[4] != want {
		t.Fatalf("summary: got %q, want %q", lines[4], want)
	}
}

func TestInspectCommand_Dump(t *testing.T) {
	got := run(t, "", "inspect", "--dump", "x")
	if !strings.Contains(got, "Kind:") || !strings.Contains(got, `"lower"`) {
		t.Fatalf("dump output: %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	if got := run(t, "", "version"); !strings.HasPrefix(got, "unistyle v") {
		t.Fatalf("version: %q", got)
	}
}

func TestBuildKeys(t *testing.T) {
	keys, err := buildKeys(map[string][]string{"quit": {"ctrl+d"}, "italic": {"f3"}})
	if err != nil {
		t.Fatalf("buildKeys: %v", err)
	}
	if got := keys.Quit.Keys(); len(got) != 1 || got[0] != "ctrl+d" {
		t.Fatalf("quit keys: %v", got)
	}
	if got := keys.Italic.Keys(); len(got) != 1 || got[0] != "f3" {
		t.Fatalf("italic keys: %v", got)
	}

	if _, err := buildKeys(map[string][]string{"bogus": {"x"}}); err == nil {
		t.Fatalf("expected error for unknown binding")
	}
}

func TestPickClipboard(t *testing.T) {
	log := logs.NewRingBuffer(10)
	cfg := config.DefaultConfig()
	cfg.OSC52Clipboard = true
	if _, ok := pickClipboard(cfg, log).(*editor.OSC52Clipboard); !ok {
		t.Fatalf("osc52_clipboard should select OSC 52")
	}

	cfg.OSC52Clipboard = false
	cb := pickClipboard(cfg, log)
	if editor.SystemClipboardAvailable() {
		if _, ok := cb.(editor.SystemClipboard); !ok {
			t.Fatalf("expected system clipboard, got %T", cb)
		}
		return
	}
	if _, ok := cb.(*editor.OSC52Clipboard); !ok {
		t.Fatalf("expected OSC 52 fallback, got %T", cb)
	}
	if entries := log.Snapshot(); len(entries) == 0 {
		t.Fatalf("fallback should be logged")
	}
}

func TestModel_QuitAndEditing(t *testing.T) {
	keys, _ := buildKeys(nil)
	m := newModel(editor.Config{Text: "ab"}, keys, logs.NewRingBuffer(10))

	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 5})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	if got := next.(model).editor.Buffer().Text(); got != "\U0001D41A\U0001D41B" {
		t.Fatalf("text after bold: got %q", got)
	}

	_, cmd := next.Update(tea.KeyMsg{Type: tea.KeyCtrlQ})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
