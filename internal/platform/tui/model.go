package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-snake/internal/core"
	"github.com/vovakirdan/grid-snake/internal/registry"
	"github.com/vovakirdan/grid-snake/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// configErrorer is implemented by games that fall back to defaults when
// their config file cannot be used.
type configErrorer interface {
	ConfigError() error
}

// Options configures a game Model.
type Options struct {
	Store  *storage.Store // Round history; nil disables recording
	Logger *log.Logger    // nil discards driver logs
	// Menu enables Back to return to the caller instead of quitting.
	Menu bool
}

// Model is the Bubble Tea model that drives one game at a fixed tick rate.
type Model struct {
	game        registry.Game
	screen      *core.Screen
	store       *storage.Store
	logger      *log.Logger
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	inputFrame  core.InputFrame
	gameState   core.GameState
	celebration Celebration
	inMenu      bool
	loopID      uint64
	rounds      int
	quitting    bool
	backToMenu  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      opts.Store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		inMenu:     opts.Menu,
		loopID:     nextLoopID(),
	}
}

// playHeight leaves the last terminal row for the help bar.
func playHeight(h int) int {
	return max(h-1, 0)
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if cg, ok := m.game.(configErrorer); ok {
		if err := cg.ConfigError(); err != nil {
			m.logger.Warn("config ignored", "game", m.game.ID(), "error", err)
		}
	}
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.loopID, m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.loopID {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick. Keys never step the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		if m.inMenu && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, tea.Quit
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize only changes the drawing surface; the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the simulation exactly once with the input gathered since
// the previous tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended != nil {
		m.recordRound(*result.Ended)
	}
	if wasOver && !m.gameState.GameOver {
		m.logger.Debug("round restarted", "game", m.game.ID(), "high_score", m.gameState.HighScore)
	}

	m.celebration.Update(m.gameState)

	return m, tickCmd(m.loopID, m.config.TickRate)
}

func (m *Model) recordRound(r core.RoundSummary) {
	m.rounds++
	m.logger.Debug("round over",
		"game", m.game.ID(),
		"score", r.Score,
		"length", r.Length,
		"ticks", r.Ticks,
		"cause", r.Cause,
		"high_score", m.gameState.HighScore,
	)

	if m.store == nil {
		return
	}
	_, err := m.store.SaveRound(storage.Round{
		Variant:   m.game.ID(),
		Score:     r.Score,
		Length:    r.Length,
		Ticks:     r.Ticks,
		Collision: r.Cause,
	})
	if err != nil {
		m.logger.Warn("could not record round", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	m.celebration.Draw(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last state reported by the game.
func (m Model) State() core.GameState {
	return m.gameState
}

// Rounds returns how many rounds finished under this model.
func (m Model) Rounds() int {
	return m.rounds
}

// IsQuitting returns true if the user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunGame runs the game like Run and returns the final model, so callers
// driving a menu can tell quitting from going back.
func RunGame(game registry.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, err
	}
	m, _ := final.(Model)
	return m, nil
}
