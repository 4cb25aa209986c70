package hintbox

import (
	"io"
	"reflect"

	"github.com/charmbracelet/log"

	"github.com/iw2rmb/hinter/editor"
	"github.com/iw2rmb/hinter/hint"
)

// Config configures the widget.
type Config struct {
	// Editor configures the embedded editor. Its OnChange is ignored; use
	// Config.OnChange instead.
	Editor editor.Config

	// Hints is the candidate list. Matcher, when set, takes precedence.
	Hints   []string
	Matcher hint.Matcher

	// OnChange receives every editor change after hint detection, and the
	// text produced by confirming a hint.
	OnChange func(editor.ChangeEvent)

	Styles Styles
	KeyMap KeyMap

	// Width is the popup width in cells including its frame (default 28).
	Width int
	// MaxRows is the number of rows shown at once (default 10).
	MaxRows int

	// RepositionOnScroll re-anchors an open popup after the editor scrolls.
	// By default the popup keeps the position computed when it opened.
	RepositionOnScroll bool

	// Logger receives debug events. Nil discards them.
	Logger *log.Logger
}

func normalizeConfig(cfg Config) Config {
	if cfg.Matcher == nil {
		cfg.Matcher = hint.List(cfg.Hints)
	}
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = DefaultMaxRows
	}
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	cfg.Styles = normalizeStyles(cfg.Styles)
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	return cfg
}
