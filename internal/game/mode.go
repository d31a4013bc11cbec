// Package game implements Flappy Dragon: the player's physics, obstacles and
// baddies, the playing session, and the screen state machine.
//
// The package is pure. The host feeds it elapsed time and at most one
// action per tick and draws the Frame it gets back.
package game

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Mode is the active screen.
type Mode int

const (
	ModeMenu Mode = iota
	ModeHighScore
	ModePlaying
	ModeEnd
)

// String returns the screen name.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModeHighScore:
		return "high-score"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}

// TickResult is what the controller hands back to the host each tick.
type TickResult struct {
	Frame  Frame   // Screen of the mode that handled this tick
	From   Mode    // Mode that handled this tick
	To     Mode    // Mode for the next tick
	Quit   bool    // The player asked to exit
	Events []Event // Session events, Playing only
}

// Changed reports whether the tick switched screens.
func (r TickResult) Changed() bool {
	return r.From != r.To
}

// Controller owns the active mode and the current session.
// The session is nil until the first game starts and is kept after a run
// ends so the End and HighScore screens can show its score.
type Controller struct {
	mode    Mode
	session *Session
	quit    bool
	cfg     config.DragonConfig
	rng     RNG
}

// NewController starts on the menu.
func NewController(cfg config.DragonConfig, rng RNG) *Controller {
	return &Controller{
		mode: ModeMenu,
		cfg:  cfg,
		rng:  rng,
	}
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// Session returns the current or last session, or nil before the first game.
func (c *Controller) Session() *Session {
	return c.session
}

// Config returns the tuning the controller was built with.
func (c *Controller) Config() config.DragonConfig {
	return c.cfg
}

// Score returns the current or last run's score.
func (c *Controller) Score() int {
	if c.session == nil {
		return 0
	}
	return c.session.Score
}

// Quitting reports whether an exit was requested.
func (c *Controller) Quitting() bool {
	return c.quit
}

// Frame describes the active screen without advancing anything.
func (c *Controller) Frame() Frame {
	switch c.mode {
	case ModeHighScore:
		return highScoreFrame(c.Score())
	case ModePlaying:
		return playFrame(c.cfg, c.session)
	case ModeEnd:
		return deadFrame(c.Score())
	default:
		return menuFrame()
	}
}

// Tick runs the handler of the active mode.
func (c *Controller) Tick(elapsedMs float64, action core.Action) TickResult {
	res := TickResult{From: c.mode}

	switch c.mode {
	case ModeMenu:
		c.mainMenu(action)
		res.Frame = menuFrame()
	case ModeHighScore:
		c.highScore(action)
		res.Frame = highScoreFrame(c.Score())
	case ModePlaying:
		res.Events = c.play(elapsedMs, action)
		res.Frame = playFrame(c.cfg, c.session)
	case ModeEnd:
		c.dead(action)
		res.Frame = deadFrame(c.Score())
	}

	res.To = c.mode
	res.Quit = c.quit
	return res
}

// restart builds a fresh session and switches to Playing.
func (c *Controller) restart() {
	c.session = NewSession(c.cfg, c.rng)
	c.mode = ModePlaying
}

func (c *Controller) mainMenu(action core.Action) {
	switch action {
	case core.ActionSelectPlay:
		c.restart()
	case core.ActionSelectHighScore:
		c.mode = ModeHighScore
	case core.ActionSelectQuit:
		c.quit = true
	}
}

func (c *Controller) highScore(action core.Action) {
	switch action {
	case core.ActionSelectPlay:
		c.restart()
	case core.ActionSelectQuit:
		c.quit = true
	}
}

func (c *Controller) play(elapsedMs float64, action core.Action) []Event {
	res := c.session.Step(elapsedMs, action)
	if res.Dead {
		c.mode = ModeEnd
	}
	return res.Events
}

func (c *Controller) dead(action core.Action) {
	switch action {
	case core.ActionSelectPlay:
		c.restart()
	case core.ActionSelectHighScore:
		c.mode = ModeHighScore
	case core.ActionSelectQuit:
		c.quit = true
	}
}
