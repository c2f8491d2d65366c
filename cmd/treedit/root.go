package main

import (
	"fmt"

	"treedit/internal/config"
	"treedit/internal/log"
	"treedit/internal/tui"
	"treedit/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	stylePath string
	debug     bool
	logFile   string
}

// runProgram starts the UI; tests replace it
var runProgram = func(m tea.Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "treedit",
		Short: "A small terminal editor with a file tree",
		Long: `treedit shows the current directory as a tree on the left and
the selected file on the right, highlighted by a guess at its language.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVar(&opts.stylePath, "style", "", "style sheet (default is $HOME/.config/treedit/style.yaml)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log debug messages")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "append log output to this file")

	return cmd
}

func loadStyleSheet(path string) (*config.StyleSheet, error) {
	if path != "" {
		return config.LoadStyleSheetFile(path)
	}
	return config.LoadStyleSheet()
}

func run(opts *rootOptions) error {
	if opts.logFile != "" {
		log.Configure(log.WithFile(opts.logFile))
		defer log.Close()
	}
	log.SetDebug(opts.debug)

	sheet, err := loadStyleSheet(opts.stylePath)
	if err != nil {
		return fmt.Errorf("loading style sheet: %w", err)
	}

	// Without a watcher the tree simply does not refresh itself
	watcher, err := watch.New()
	if err != nil {
		log.LogWithError(err).Warn("file watching disabled")
		watcher = nil
	} else if err := watcher.Start(); err != nil {
		log.LogWithError(err).Warn("file watching disabled")
		watcher = nil
	} else {
		defer watcher.Stop()
	}

	model := tui.New(tui.Options{
		Root:       ".",
		StyleSheet: sheet,
		Watcher:    watcher,
		Profile:    lipgloss.ColorProfile(),
	})

	log.LogWithFields(log.F("theme", sheet.Theme), log.F("style", sheet.Editor.HighlightStyle)).Info("starting")
	return runProgram(model)
}
