package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/hinter"
)

type options struct {
	configPath string
	hintsPath  string
	filePath   string
	wrap       string
	index      bool
	logFile    string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "hintdemo [flags]",
		Short: "Edit text with a caret-anchored hint dropdown",
		Long: `Open a terminal editor that suggests words from a hint list as you type.

Keys:
  up/down, pgup/pgdown  move through hints
  enter                 accept the selected hint
  esc                   dismiss the hints
  ctrl+q                quit`,
		Version:       hinter.VersionTag(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := setup(opts, cmd.Flags().Changed)
			if err != nil {
				return err
			}
			defer app.close()

			p := tea.NewProgram(app.model, tea.WithAltScreen(), tea.WithMouseAllMotion())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run: %w", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&opts.hintsPath, "hints", "", "hint list (.txt, .toml or .msgpack); default is the built-in JavaScript list")
	f.StringVarP(&opts.filePath, "file", "f", "", "file to load into the editor")
	f.StringVar(&opts.wrap, "wrap", "none", "wrap mode: none, word or grapheme")
	f.BoolVar(&opts.index, "index", false, "match hints with a prefix trie")
	f.StringVar(&opts.logFile, "log-file", "", "write debug logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hintdemo:", err)
		os.Exit(1)
	}
}
