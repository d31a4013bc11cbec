package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
)

// Model is the Bubble Tea model for one game of Flappy Dragon.
type Model struct {
	ctrl     *game.Controller
	screen   *core.Screen
	palette  Palette
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	pending  core.Action
	lastTick time.Time
	shotDir  string // Empty disables screenshots
	quitting bool
}

// NewModel creates a model on the main menu. A nil logger discards output
// and a nil renderer uses the local terminal.
func NewModel(tuning config.DragonConfig, cfg core.RuntimeConfig, logger *log.Logger, renderer *lipgloss.Renderer) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	ctrl := game.NewController(tuning, game.NewRandRNG(cfg.Seed))
	field := ctrl.Config().Field

	h := help.New()
	h.Width = cfg.ScreenW
	h.Styles.ShortKey = renderer.NewStyle().Foreground(lipgloss.Color("245"))
	h.Styles.ShortDesc = renderer.NewStyle().Foreground(lipgloss.Color("240"))
	h.Styles.ShortSeparator = renderer.NewStyle().Foreground(lipgloss.Color("238"))

	return Model{
		ctrl:    ctrl,
		screen:  core.NewScreen(field.Width, field.Height),
		palette: NewPalette(renderer),
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		config:  cfg,
		shotDir: userScreenshotDir(),
	}
}

// WithoutScreenshots returns a copy of the model that ignores the
// screenshot key.
func (m Model) WithoutScreenshots() Model {
	m.shotDir = ""
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "mode", m.ctrl.Mode())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = m.config.ScreenW
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey buffers the action for the next tick. The latest key wins.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.logger.Info("interrupted", "mode", m.ctrl.Mode())
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if action := m.keys.Action(msg, m.ctrl.Mode()); action != core.ActionNone {
		m.pending = action
	}
	return m, nil
}

// handleTick advances the controller by the wall time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := elapsedMs(m.lastTick, now)
	m.lastTick = now

	action := m.pending
	m.pending = core.ActionNone

	res := m.ctrl.Tick(elapsed, action)
	m.logTick(res)

	if res.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logTick(res game.TickResult) {
	for _, ev := range res.Events {
		switch ev.Kind {
		case game.EventScored:
			m.logger.Debug("obstacle passed", "score", ev.Score)
		case game.EventHordeSpawned:
			m.logger.Debug("horde spawned", "size", ev.Horde)
		case game.EventDied:
			m.logger.Info("dragon died", "cause", ev.Cause, "score", m.ctrl.Score())
		}
	}
	if res.Changed() {
		m.logger.Info("mode changed", "from", res.From, "to", res.To)
	}
	if res.Quit {
		m.logger.Info("quit requested", "score", m.ctrl.Score())
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.ctrl.Frame().Draw(m.screen)
	body := RenderScreen(m.screen, m.palette)
	footer := m.help.View(m.keys.ForMode(m.ctrl.Mode()))

	// Keep the footer visible on short terminals.
	if m.config.ScreenH > 1 {
		lines := strings.Split(body, "\n")
		body = strings.Join(lines[:core.Clamp(m.config.ScreenH-1, 1, len(lines))], "\n")
	}
	return body + "\n" + footer
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.ctrl.Frame().Draw(m.screen)

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	name := fmt.Sprintf("dragon_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// userScreenshotDir returns ~/.flappy-dragon/screenshots, or empty if home is unavailable.
func userScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flappy-dragon", "screenshots")
}

// Controller exposes the game state, mainly for tests.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// Quitting reports whether the program is about to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal.
func Run(tuning config.DragonConfig, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(tuning, cfg, logger, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
