package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/launcher"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Games:
  pong         - Classic Pong against the AI or a second player
  snake        - Eat food, grow, avoid walls and yourself
  spacecombat  - Shoot down falling enemies before they ram you
  typing       - Type the falling words before they hit the ground

ESC quits every game; Ctrl+C closes the window.

Examples:
  arcade play pong
  arcade play snake --fps 5
  arcade play typing --seed 42
  arcade play spacecombat --backend tcell`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'arcade list' to see available games", gameID)
	}

	bundle, logger, closeLog, err := environment(false)
	if err != nil {
		return err
	}
	defer closeLog()

	return launcher.Play(cmd.Context(), gameID, launcher.Options{
		Bundle:  bundle,
		Runtime: runtimeConfig(),
		Backend: flagBackend,
		Logger:  logger,
	})
}
