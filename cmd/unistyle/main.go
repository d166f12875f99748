package main

import (
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/unistyle"
	"github.com/iw2rmb/unistyle/codec"
	"github.com/iw2rmb/unistyle/editor"
	"github.com/iw2rmb/unistyle/internal/config"
	"github.com/iw2rmb/unistyle/internal/logs"
	"github.com/iw2rmb/unistyle/list"
	"github.com/iw2rmb/unistyle/style"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		debugFlag  bool
		configPath string
	)

	loadConfig := func() (config.Config, error) {
		var (
			cfg config.Config
			err error
		)
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return cfg, errors.Wrap(err, "could not load config")
		}
		if debugFlag {
			cfg.Debug = true
		}
		return cfg, nil
	}

	rootCmd := &cobra.Command{
		Use:          "unistyle [file]",
		Short:        "Bold, italic and list formatting with Unicode styled letters",
		Version:      unistyle.Version(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logBuf, err := logs.Open(cfg.LogPath, cfg.LogRetention)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "logging to memory only: %v\n", err)
				logBuf = logs.NewRingBuffer(100)
			}
			defer logBuf.Close()
			logBuf.SetDebug(cfg.Debug)
			if f := logBuf.File(); f != nil {
				log.SetOutput(f)
			}

			text := ""
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return errors.Wrapf(err, "could not read %s", args[0])
				}
				text = string(data)
			}

			keys, err := buildKeys(cfg.Keys)
			if err != nil {
				logBuf.Warnf("config", "%v", err)
			}

			ecfg := editor.Config{
				Text:         text,
				ShowLineNums: cfg.ShowLineNums,
				ShowStatus:   cfg.ShowStatus,
				Style:        editor.DefaultStyle(),
				Logf:         logBuf.Logf("editor"),
			}
			ecfg.Clipboard = pickClipboard(cfg, logBuf)

			logBuf.Infof("tui", "start %s", unistyle.VersionTag())
			p := tea.NewProgram(newModel(ecfg, keys, logBuf), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return errors.Wrap(err, "tui")
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/unistyle/config.json)")

	rootCmd.AddCommand(
		newStyleCmd(style.Bold),
		newStyleCmd(style.Italic),
		newAxisCmd(),
		newPlainCmd(),
		newListCmd(),
		newInspectCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// pickClipboard prefers the system clipboard. OSC 52 is used when asked for,
// which suits remote sessions, or when no clipboard tool is installed.
func pickClipboard(cfg config.Config, logBuf *logs.RingBuffer) editor.Clipboard {
	switch {
	case cfg.OSC52Clipboard:
		return editor.NewOSC52Clipboard(os.Stdout)
	case editor.SystemClipboardAvailable():
		return editor.SystemClipboard{}
	}
	logBuf.Warnf("clipboard", "no system clipboard tool found, using OSC 52")
	return editor.NewOSC52Clipboard(os.Stdout)
}

// buildKeys applies config overrides to the default bindings. "quit" is
// handled here; the rest is forwarded to the editor key map.
func buildKeys(overrides map[string][]string) (appKeys, error) {
	keys := appKeys{
		KeyMap: editor.DefaultKeyMap(),
		Quit:   key.NewBinding(key.WithKeys("ctrl+q", "esc"), key.WithHelp("ctrl+q", "quit")),
	}

	rest := make(map[string][]string, len(overrides))
	for name, ks := range overrides {
		if name == "quit" {
			if len(ks) > 0 {
				keys.Quit = key.NewBinding(key.WithKeys(ks...), key.WithHelp(ks[0], "quit"))
			}
			continue
		}
		rest[name] = ks
	}

	km, unknown := keys.KeyMap.Override(rest)
	keys.KeyMap = km
	if len(unknown) > 0 {
		return keys, errors.Errorf("unknown key bindings: %v", unknown)
	}
	return keys, nil
}

func newStyleCmd(axis style.Axis) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   axis.String() + " [text...]",
		Short: fmt.Sprintf("Toggle %s on text from args or stdin", axis),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleText(text, axis, force))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, fmt.Sprintf("Set every character to %s only instead of toggling", axis))
	return cmd
}

// newAxisCmd takes the axis by name, for scripts that pick it at runtime.
func newAxisCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "style <bold|italic> [text...]",
		Short: "Toggle the named style on text from args or stdin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := style.ParseAxis(args[0])
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), args[1:])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), styleText(text, axis, force))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Set every character to the named style only instead of toggling")
	return cmd
}

func newPlainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plain [text...]",
		Short: "Strip bold and italic styling",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), codec.Plain(text))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	var (
		bullets, numbers bool
		kindName         string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Toggle bullet or number markers on every line of stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := list.ParseKind(kindName)
			if err != nil {
				return err
			}
			switch {
			case bullets && numbers:
				return errors.New("--bullets and --numbers are mutually exclusive")
			case bullets:
				kind = list.Bullets
			case numbers:
				kind = list.Numbers
			}
			text, err := readInput(cmd.InOrStdin(), nil)
			if err != nil {
				return err
			}
			out, err := listText(text, kind)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kindName, "kind", "k", "bullets", "List kind: bullets or numbers")
	cmd.Flags().BoolVarP(&bullets, "bullets", "b", false, "Same as --kind bullets")
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "Same as --kind numbers")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Show how each character decodes",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			return writeInspect(cmd.OutOrStdout(), text, dump)
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "Dump decoded nodes as Go values")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), unistyle.Describe())
		},
	}
}
