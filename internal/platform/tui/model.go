package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/classic-arcade/internal/core"
	"github.com/vovakirdan/classic-arcade/internal/loop"
	"github.com/vovakirdan/classic-arcade/internal/platform/keys"
	"github.com/vovakirdan/classic-arcade/internal/registry"
)

// Model is the Bubble Tea model for running one arcade game. Each tick
// runs one frame of the loop driver; View draws the frame.
type Model struct {
	game     registry.Game
	driver   *loop.Driver
	input    *keys.Queue
	screen   *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger
	closed   bool // ctrl+c, as opposed to the game asking to exit
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = game.TickRate()
	}
	logger = logger.With("game", game.ID())

	return Model{
		game:   game,
		driver: loop.NewDriver(game, logger),
		input:  keys.NewQueue(game.KeyLayout(), cfg.TickRate),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		logger: logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "fps", m.config.TickRate, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, screenshotKey) {
			m.saveScreenshot()
			return m, nil
		}
		pressKey(m.input, msg)
		return m, nil

	case tea.WindowSizeMsg:
		// Games simulate in their own units, so a resize only changes
		// how the frame is mapped onto the terminal.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// pressKey queues a key message. Characters that arrive in one read come
// as a single message and are pressed one by one.
func pressKey(q *keys.Queue, msg tea.KeyMsg) {
	if msg.Type == tea.KeyRunes && !msg.Alt && !msg.Paste {
		for _, r := range msg.Runes {
			q.Press(string(r))
		}
		return
	}
	q.Press(msg.String())
}

// handleTick runs one frame of the loop.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	frame := m.input.Poll()
	if !m.driver.Step(frame) {
		m.closed = frame.Quit()
		m.quitting = true
		state := m.game.State()
		m.logger.Info("game finished", "score", state.Score, "phase", state.Phase, "frames", m.driver.Frames())
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.driver.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.driver.Draw(m.screen)
	return RenderScreen(m.screen)
}

// Done reports whether the game loop has stopped.
func (m Model) Done() bool {
	return m.quitting
}

// Closed reports whether the player closed the window (ctrl+c) rather
// than leaving the game normally.
func (m Model) Closed() bool {
	return m.closed
}

// Run starts the Bubble Tea program with the given game and blocks until
// the game exits.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
