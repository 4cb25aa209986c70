package editor

import "reflect"

const defaultTabWidth = 4

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	WrapMode     WrapMode
	TabWidth     int // default: 4

	// Input.
	KeyMap   KeyMap
	ReadOnly bool

	// Highlighter colors visible lines. Errors fall back to plain text.
	Highlighter Highlighter

	// OnChange fires after every update that changes text or cursor.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
}

func normalizeConfig(cfg Config) Config {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if reflect.DeepEqual(cfg.Style, Style{}) {
		cfg.Style = DefaultStyle()
	}
	return cfg
}
