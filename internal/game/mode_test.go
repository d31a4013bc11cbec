package game

import (
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// controllerIn returns a controller that has reached the given mode.
func controllerIn(t *testing.T, mode Mode) *Controller {
	t.Helper()
	c := NewController(defaultCfg(), steady())

	switch mode {
	case ModeMenu:
	case ModeHighScore:
		c.Tick(0, core.ActionSelectHighScore)
	case ModePlaying:
		c.Tick(0, core.ActionSelectPlay)
	case ModeEnd:
		c.Tick(0, core.ActionSelectPlay)
		c.Session().Player.Y = 100
		c.Tick(0, core.ActionNone)
	}

	if c.Mode() != mode {
		t.Fatalf("setup: controller in %v, wanted %v", c.Mode(), mode)
	}
	return c
}

func TestControllerStartsOnMenu(t *testing.T) {
	c := NewController(defaultCfg(), steady())
	if c.Mode() != ModeMenu {
		t.Errorf("initial mode = %v, expected menu", c.Mode())
	}
	if c.Session() != nil {
		t.Error("no session should exist before the first game")
	}
	if c.Score() != 0 {
		t.Error("score should read 0 before the first game")
	}
}

func TestControllerTransitions(t *testing.T) {
	tests := []struct {
		from   Mode
		action core.Action
		to     Mode
		quit   bool
	}{
		{ModeMenu, core.ActionSelectPlay, ModePlaying, false},
		{ModeMenu, core.ActionSelectHighScore, ModeHighScore, false},
		{ModeMenu, core.ActionSelectQuit, ModeMenu, true},
		{ModeMenu, core.ActionNone, ModeMenu, false},
		{ModeMenu, core.ActionThrust, ModeMenu, false},
		{ModeHighScore, core.ActionSelectPlay, ModePlaying, false},
		{ModeHighScore, core.ActionSelectQuit, ModeHighScore, true},
		{ModeHighScore, core.ActionSelectHighScore, ModeHighScore, false},
		{ModeHighScore, core.ActionNone, ModeHighScore, false},
		{ModePlaying, core.ActionNone, ModePlaying, false},
		{ModePlaying, core.ActionSelectQuit, ModePlaying, false},
		{ModePlaying, core.ActionSelectHighScore, ModePlaying, false},
		{ModeEnd, core.ActionSelectPlay, ModePlaying, false},
		{ModeEnd, core.ActionSelectHighScore, ModeHighScore, false},
		{ModeEnd, core.ActionSelectQuit, ModeEnd, true},
		{ModeEnd, core.ActionNone, ModeEnd, false},
	}

	for _, tc := range tests {
		t.Run(tc.from.String()+"/"+tc.action.String(), func(t *testing.T) {
			c := controllerIn(t, tc.from)
			res := c.Tick(0, tc.action)

			if res.From != tc.from {
				t.Errorf("From = %v, expected %v", res.From, tc.from)
			}
			if res.To != tc.to || c.Mode() != tc.to {
				t.Errorf("To = %v (mode %v), expected %v", res.To, c.Mode(), tc.to)
			}
			if res.Quit != tc.quit || c.Quitting() != tc.quit {
				t.Errorf("Quit = %v, expected %v", res.Quit, tc.quit)
			}
			if res.Changed() != (tc.from != tc.to) {
				t.Errorf("Changed() = %v", res.Changed())
			}
		})
	}
}

func TestControllerTransitionSeenNextTick(t *testing.T) {
	c := NewController(defaultCfg(), steady())

	res := c.Tick(0, core.ActionSelectPlay)
	if res.Frame.Mode != ModeMenu {
		t.Errorf("the tick that picks Play should still draw the menu, drew %v", res.Frame.Mode)
	}
	if c.Session().Player.X != 5 {
		t.Error("no physics should run on the tick that starts the game")
	}

	res = c.Tick(0, core.ActionNone)
	if res.Frame.Mode != ModePlaying {
		t.Errorf("next tick should draw the game, drew %v", res.Frame.Mode)
	}
}

func TestControllerFallsToDeath(t *testing.T) {
	c := NewController(defaultCfg(), steady())
	c.Tick(0, core.ActionSelectPlay)

	var last TickResult
	for i := 0; i < 100 && c.Mode() == ModePlaying; i++ {
		last = c.Tick(physicsTick, core.ActionNone)
	}

	if c.Mode() != ModeEnd {
		t.Fatalf("player should fall out of the field, still %v at y=%d", c.Mode(), c.Session().Player.Y)
	}
	if c.Session().Player.Y <= 50 {
		t.Errorf("death should happen below the field, y = %d", c.Session().Player.Y)
	}
	if last.From != ModePlaying || last.To != ModeEnd {
		t.Errorf("last tick %v -> %v, expected playing -> end", last.From, last.To)
	}

	var cause DeathCause
	for _, ev := range last.Events {
		if ev.Kind == EventDied {
			cause = ev.Cause
		}
	}
	if cause != CauseFell {
		t.Errorf("death cause = %v, expected fell", cause)
	}

	res := c.Tick(physicsTick, core.ActionNone)
	if res.Frame.Mode != ModeEnd {
		t.Errorf("end screen should be drawn after death, drew %v", res.Frame.Mode)
	}
}

func TestControllerRestartResets(t *testing.T) {
	for _, from := range []Mode{ModeMenu, ModeHighScore, ModeEnd} {
		t.Run(from.String(), func(t *testing.T) {
			c := controllerIn(t, from)
			if s := c.Session(); s != nil {
				s.Score = 7
				s.Player.X = 40
				s.Player.Velocity = 1.4
				s.FrameTime = 60
			}

			c.Tick(0, core.ActionSelectPlay)

			s := c.Session()
			if s == nil {
				t.Fatal("Play should create a session")
			}
			if s.Score != 0 {
				t.Errorf("score = %d, expected 0", s.Score)
			}
			if s.Player.X != 5 || s.Player.Y != 25 || s.Player.Velocity != 0 {
				t.Errorf("player = %+v, expected at rest at (5, 25)", s.Player)
			}
			if s.FrameTime != 0 {
				t.Errorf("frame time = %v, expected 0", s.FrameTime)
			}
		})
	}
}

func TestControllerQuitIgnoresState(t *testing.T) {
	for _, from := range []Mode{ModeMenu, ModeHighScore, ModeEnd} {
		c := controllerIn(t, from)
		if s := c.Session(); s != nil {
			s.Score = 42
			s.Player.Y = 3
		}
		res := c.Tick(0, core.ActionSelectQuit)
		if !res.Quit {
			t.Errorf("%v: quit should be requested", from)
		}
	}
}

func TestControllerHighScoreShowsLastRun(t *testing.T) {
	c := controllerIn(t, ModeEnd)
	c.Session().Score = 12

	c.Tick(0, core.ActionSelectHighScore)
	res := c.Tick(0, core.ActionNone)

	if res.Frame.Mode != ModeHighScore {
		t.Fatalf("expected high-score frame, got %v", res.Frame.Mode)
	}
	found := false
	for _, line := range res.Frame.Text {
		if line.Text == "You reached 12 points!" {
			found = true
		}
	}
	if !found {
		t.Errorf("high-score screen should echo the last score, got %+v", res.Frame.Text)
	}
}

func TestControllerDeterminism(t *testing.T) {
	run := func() (int, int, int) {
		c := NewController(defaultCfg(), NewRandRNG(12345))
		c.Tick(0, core.ActionSelectPlay)
		for i := 0; i < 400 && c.Mode() == ModePlaying; i++ {
			action := core.ActionNone
			if i%4 == 0 {
				action = core.ActionThrust
			}
			c.Tick(physicsTick, action)
		}
		s := c.Session()
		return s.Score, s.Player.X, s.Obstacle.GapY
	}

	s1, x1, g1 := run()
	s2, x2, g2 := run()
	if s1 != s2 || x1 != x2 || g1 != g2 {
		t.Errorf("same seed and inputs diverged: (%d,%d,%d) vs (%d,%d,%d)", s1, x1, g1, s2, x2, g2)
	}
}

func TestControllerFrameHasNoSideEffects(t *testing.T) {
	c := controllerIn(t, ModePlaying)
	before := *c.Session()

	for i := 0; i < 3; i++ {
		if f := c.Frame(); f.Mode != ModePlaying {
			t.Fatalf("Frame().Mode = %v, expected playing", f.Mode)
		}
	}
	if *c.Session() != before {
		t.Error("Frame() should not advance the session")
	}
}
