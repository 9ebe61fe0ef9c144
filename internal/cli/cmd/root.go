// Package cmd provides Cobra CLI commands for kkc-shortcuts.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/kkc-shortcuts/internal/cli"
	"github.com/bnema/kkc-shortcuts/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "kkc-shortcuts",
		Short: "Edit the keyboard shortcuts of libkkc conversion rules",
		Long: `kkc-shortcuts edits the shortcuts of a libkkc kana-kanji conversion rule.

Shortcuts are stored in a user rule layered over the rule you pick, one
keymap per input mode (Hiragana, Katakana, Half width Katakana, Latin,
Wide latin, Direct input). The rule in use is remembered between runs.

Without a subcommand the interactive editor starts. The subcommands
cover scripted use:
  kkc-shortcuts rules                       # list conversion rules
  kkc-shortcuts use act                     # pick the active rule
  kkc-shortcuts list                        # list shortcuts of the active rule
  kkc-shortcuts add hiragana C-j commit     # bind a key
  kkc-shortcuts remove hiragana C-j         # unbind a key`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{LogToFile: runsEditor(cmd)})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runEdit,
	}
)

// runsEditor reports whether cmd takes over the terminal.
func runsEditor(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "edit"
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
