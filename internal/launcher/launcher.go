// Package launcher starts a single game on one of the terminal backends.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/vovakirdan/classic-arcade/internal/config"
	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/loop"
	arcadeterm "github.com/vovakirdan/classic-arcade/internal/platform/term"
	"github.com/vovakirdan/classic-arcade/internal/platform/tui"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Backend names.
const (
	BackendTea   = "tea"
	BackendTcell = "tcell"
)

// Options configures a launch.
type Options struct {
	Bundle  config.Bundle
	Runtime core.RuntimeConfig

	// Backend is BackendTea (default) or BackendTcell.
	Backend string

	// Screen replaces the user's terminal on the tcell backend.
	Screen tcell.Screen

	Logger *log.Logger
}

// Play runs the game id until the player quits or ctx is cancelled.
func Play(ctx context.Context, id string, opts Options) error {
	backend := opts.Backend
	if backend == "" {
		backend = BackendTea
	}
	if backend != BackendTea && backend != BackendTcell {
		return fmt.Errorf("launcher: unknown backend %q (want %s or %s)", backend, BackendTea, BackendTcell)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := registry.Create(id, opts.Bundle)
	if err != nil {
		return err
	}

	runtime := opts.Runtime
	if runtime.ScreenW == 0 || runtime.ScreenH == 0 {
		runtime.ScreenW, runtime.ScreenH = TerminalSize()
	}
	logger = logger.With("backend", backend)

	if backend == BackendTea {
		return tui.Run(game, runtime, logger)
	}
	return playTcell(ctx, game, runtime, opts.Screen, logger)
}

func playTcell(ctx context.Context, game registry.Game, runtime core.RuntimeConfig, screen tcell.Screen, logger *log.Logger) error {
	if runtime.TickRate <= 0 {
		runtime.TickRate = game.TickRate()
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}
	logger = logger.With("game", game.ID())

	var (
		t   *arcadeterm.Terminal
		err error
	)
	if screen != nil {
		t, err = arcadeterm.NewWithScreen(screen, game.KeyLayout(), runtime.TickRate, logger)
	} else {
		t, err = arcadeterm.Open(game.KeyLayout(), runtime.TickRate, logger)
	}
	if err != nil {
		return err
	}
	defer t.Close()

	runtime.ScreenW, runtime.ScreenH = t.Screen().Width(), t.Screen().Height()
	game.Reset(runtime)
	logger.Info("game started", "fps", runtime.TickRate, "seed", runtime.Seed)

	gov := loop.NewTickerGovernor(runtime.TickRate)
	defer gov.Stop()

	driver := loop.NewDriver(game, logger)
	if err := driver.Run(ctx, t, t, gov); err != nil {
		return err
	}
	logger.Info("game finished", "frames", driver.Frames(), "score", game.State().Score)
	return nil
}

// TerminalSize returns the size of stdout, or 80x24 when it is not a
// terminal.
func TerminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// Standalone runs one game with the default settings: configs from the
// implicit search paths, the Bubble Tea backend, the game's own tick rate
// and a time-based seed. It serves the single-game binaries.
func Standalone(id string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundle, err := config.Load("")
	if err != nil {
		return err
	}
	return Play(ctx, id, Options{Bundle: bundle})
}
