package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --config ./configs`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	bundle, logger, closeLog, err := environment(false)
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.RunSession(bundle, runtimeConfig(), logger)
}
