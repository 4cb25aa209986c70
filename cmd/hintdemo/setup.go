package main

import (
	"fmt"
	"os"

	"github.com/iw2rmb/hinter/editor"
	"github.com/iw2rmb/hinter/hint"
	"github.com/iw2rmb/hinter/hintbox"
	"github.com/iw2rmb/hinter/internal/config"
	"github.com/iw2rmb/hinter/internal/logger"
	"github.com/iw2rmb/hinter/internal/wordlist"
)

const sampleText = `// Start typing: try "use", "con" or "get".
import React from "react"

function App() {
	const [value, setValue] = 
}
`

type app struct {
	model model
	close func() error
}

// setup resolves the configuration (file first, then explicitly set flags)
// and builds the program model.
func setup(opts options, changed func(name string) bool) (app, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return app{}, err
		}
	}
	if changed("hints") {
		cfg.Hints.File = opts.hintsPath
	}
	if changed("index") {
		cfg.Hints.Index = opts.index
	}
	if changed("wrap") {
		cfg.Editor.Wrap = opts.wrap
	}
	if changed("log-file") {
		cfg.Log.File = opts.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return app{}, err
	}

	wrap, ok := editor.ParseWrapMode(cfg.Editor.Wrap)
	if !ok {
		return app{}, fmt.Errorf("unknown wrap mode %q", cfg.Editor.Wrap)
	}

	words := wordlist.Default()
	if cfg.Hints.File != "" {
		var err error
		if words, err = wordlist.Load(cfg.Hints.File); err != nil {
			return app{}, err
		}
	}
	var matcher hint.Matcher = hint.List(words)
	if cfg.Hints.Index {
		matcher = hint.NewIndex(words)
	}

	text := sampleText
	if opts.filePath != "" {
		data, err := os.ReadFile(opts.filePath)
		if err != nil {
			return app{}, fmt.Errorf("read %s: %w", opts.filePath, err)
		}
		text = string(data)
	}

	log, closeLog, err := logger.Open(cfg.Log.File, "hintdemo", cfg.Log.Level)
	if err != nil {
		return app{}, err
	}
	log.Info("starting", "hints", len(words), "index", cfg.Hints.Index, "wrap", cfg.Editor.Wrap)

	m := newModel(hintbox.Config{
		Editor: editor.Config{
			Text:         text,
			ShowLineNums: cfg.Editor.LineNumbers,
			WrapMode:     wrap,
			TabWidth:     cfg.Editor.TabWidth,
			Highlighter:  newJSHighlighter(),
		},
		Matcher:            matcher,
		Width:              cfg.Popup.Width,
		MaxRows:            cfg.Popup.MaxRows,
		RepositionOnScroll: cfg.Popup.RepositionOnScroll,
		Logger:             log,
	})
	return app{model: m, close: closeLog}, nil
}
