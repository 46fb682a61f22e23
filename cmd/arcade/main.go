// arcade is a terminal arcade for playing classic games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Override the game's tick rate
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <dir>        - Directory with per-game YAML/TOML configs
//	--backend <name>      - Terminal backend: tea or tcell
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/launcher"
	"github.com/vovakirdan/classic-arcade/internal/logging"

	// Import games to register them
	_ "github.com/vovakirdan/classic-arcade/internal/games/pong"
	_ "github.com/vovakirdan/classic-arcade/internal/games/snake"
	_ "github.com/vovakirdan/classic-arcade/internal/games/spacecombat"
	_ "github.com/vovakirdan/classic-arcade/internal/games/typing"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfigDir string
	flagBackend   string
	flagLogFile   string
	flagLogLevel  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Classic Arcade - Pong, Snake, Space Combat and Typing Rain in your terminal",
	Long: `Classic Arcade is a terminal collection of four classic games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play snake
  arcade play pong --backend tcell
  arcade menu --config ./configs
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = the game's own rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config", "", "Directory with game config files")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", launcher.BackendTea, "Terminal backend for play: tea or tcell")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}

// environment loads the game configs and opens the logger shared by the
// subcommands. The caller must run the returned close function.
func environment(stderr bool) (config.Bundle, *log.Logger, func() error, error) {
	logger, closeLog, err := logging.New(logging.Options{
		Level:  flagLogLevel,
		File:   flagLogFile,
		Stderr: stderr,
		Prefix: "arcade",
	})
	if err != nil {
		return config.Bundle{}, nil, nil, err
	}

	bundle, err := config.Load(flagConfigDir)
	if err != nil {
		closeLog()
		return config.Bundle{}, nil, nil, err
	}
	return bundle, logger, closeLog, nil
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig() core.RuntimeConfig {
	w, h := launcher.TerminalSize()
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
