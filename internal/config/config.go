// Package config loads the demo's TOML configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the entire config structure.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Hints  HintsConfig  `toml:"hints"`
	Popup  PopupConfig  `toml:"popup"`
	Log    LogConfig    `toml:"log"`
}

type EditorConfig struct {
	TabWidth    int    `toml:"tab_width"`
	Wrap        string `toml:"wrap"`
	LineNumbers bool   `toml:"line_numbers"`
}

// HintsConfig selects the candidate list. An empty File uses the built-in
// list; Index switches matching to the prefix trie.
type HintsConfig struct {
	File  string `toml:"file"`
	Index bool   `toml:"index"`
}

type PopupConfig struct {
	MaxRows            int  `toml:"max_rows"`
	Width              int  `toml:"width"`
	RepositionOnScroll bool `toml:"reposition_on_scroll"`
}

// LogConfig configures the debug log. Logs are discarded when File is empty.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns a Config with default values.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			TabWidth:    4,
			Wrap:        "none",
			LineNumbers: true,
		},
		Popup: PopupConfig{
			MaxRows: 10,
			Width:   28,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a TOML file on top of the defaults. Keys missing from the file
// keep their default values; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Default(), fmt.Errorf("load config %s: unknown key %q", path, undec[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Editor.Wrap {
	case "", "none", "word", "grapheme", "char":
	default:
		return fmt.Errorf("editor.wrap: unknown mode %q", c.Editor.Wrap)
	}
	if c.Editor.TabWidth < 0 {
		return fmt.Errorf("editor.tab_width: must not be negative")
	}
	if c.Popup.MaxRows < 0 || c.Popup.Width < 0 {
		return fmt.Errorf("popup: sizes must not be negative")
	}
	return nil
}
