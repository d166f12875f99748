package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/iw2rmb/unistyle/internal/logs"
)

type Config struct {
	ShowLineNums   bool                `json:"show_line_nums"`
	ShowStatus     bool                `json:"show_status"`
	OSC52Clipboard bool                `json:"osc52_clipboard"`
	LogPath        string              `json:"log_path"`
	LogRetention   int                 `json:"log_retention"`
	Debug          bool                `json:"debug,omitempty"`
	Keys           map[string][]string `json:"keys,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		ShowLineNums:   true,
		ShowStatus:     true,
		LogPath:        logs.DefaultPath(),
		LogRetention:   20,
	}
}

func ConfigDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "unistyle")
}

// DefaultPath returns the config file location used by Load and Save.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// Load reads the default config file, writing defaults when it does not exist.
func Load() (Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads the config at path. A missing file is created with defaults.
// Fields absent from the file keep their default values.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if saveErr := SaveTo(path, cfg); saveErr != nil {
				return cfg, saveErr
			}
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "could not read config")
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config %s", path)
	}
	if cfg.LogRetention <= 0 {
		cfg.LogRetention = DefaultConfig().LogRetention
	}
	return cfg, nil
}

func Save(cfg Config) error {
	return SaveTo(DefaultPath(), cfg)
}

func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "could not create config dir")
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.Wrap(err, "could not encode config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "could not write config")
	}
	return nil
}
