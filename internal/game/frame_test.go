package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestMenuFrameDraw(t *testing.T) {
	c := NewController(defaultCfg(), steady())
	res := c.Tick(0, core.ActionNone)

	screen := core.NewScreen(80, 50)
	res.Frame.Draw(screen)

	if !strings.Contains(screen.Row(5), "Welcome to Flappy Dragon") {
		t.Errorf("row 5 should hold the title, got %q", screen.Row(5))
	}
	for row, text := range map[int]string{10: "(P) Play Game", 15: "(H) High Scores", 20: "(Q) Quit Game"} {
		if !strings.Contains(screen.Row(row), text) {
			t.Errorf("row %d should hold %q, got %q", row, text, screen.Row(row))
		}
	}
}

func TestEndFrameShowsScore(t *testing.T) {
	c := controllerIn(t, ModeEnd)
	c.Session().Score = 3
	res := c.Tick(0, core.ActionNone)

	screen := core.NewScreen(80, 50)
	res.Frame.Draw(screen)

	if !strings.Contains(screen.Row(6), "You reached 3 points!") {
		t.Errorf("row 6 should hold the score, got %q", screen.Row(6))
	}
}

func TestPlayFrameDraw(t *testing.T) {
	cfg := defaultCfg()
	s := NewSession(cfg, steady())
	f := playFrame(cfg, s)

	screen := core.NewScreen(cfg.Field.Width, cfg.Field.Height)
	f.Draw(screen)

	col := cfg.Player.ScreenColumn
	if c := screen.GetCell(col, 25); c.Rune != DragonHead || c.Color != core.ColorDragon {
		t.Errorf("dragon head missing at (%d, 25), got %+v", col, c)
	}
	if screen.Get(col, 26) != DragonTail {
		t.Error("dragon tail missing")
	}
	if !strings.HasPrefix(screen.Row(0), "Press SPACE to flap") {
		t.Errorf("hint row = %q", screen.Row(0))
	}
	if !strings.HasPrefix(screen.Row(1), "Score: 0") {
		t.Errorf("score row = %q", screen.Row(1))
	}
}

func TestPlayFrameWallMatchesCollision(t *testing.T) {
	cfg := defaultCfg()
	s := NewSession(cfg, steady())
	s.Obstacle = Obstacle{X: s.Player.X + 20, GapY: 22, Size: 7}

	screen := core.NewScreen(cfg.Field.Width, cfg.Field.Height)
	playFrame(cfg, s).Draw(screen)

	wallX := 20 + cfg.Player.ScreenColumn
	for y := 2; y < cfg.Field.Height; y++ { // rows 0-1 hold the HUD on the left only
		drawn := screen.Get(wallX, y) == WallChar
		hit := s.Obstacle.HitObstacle(Player{X: s.Obstacle.X, Y: y})
		if drawn != hit {
			t.Errorf("row %d: wall drawn=%v but collision=%v", y, drawn, hit)
		}
	}
}

func TestPlayFrameBaddieRelativeToPlayer(t *testing.T) {
	cfg := defaultCfg()
	s := NewSession(cfg, steady())
	s.Baddie = NewBaddie(s.Player.X+30, 12)

	f := playFrame(cfg, s)
	if f.Adversary == nil {
		t.Fatal("play frame should include the baddie")
	}
	if f.Adversary.X != 30+cfg.Player.ScreenColumn || f.Adversary.Y != 12 {
		t.Errorf("baddie glyph at (%d, %d), expected (%d, 12)", f.Adversary.X, f.Adversary.Y, 30+cfg.Player.ScreenColumn)
	}
	if f.Adversary.Rune != BaddieChar {
		t.Errorf("baddie rune = %q", f.Adversary.Rune)
	}
}

func TestFrameTextColors(t *testing.T) {
	c := NewController(defaultCfg(), steady())
	screen := core.NewScreen(80, 50)
	c.Frame().Draw(screen)

	title := "Welcome to Flappy Dragon"
	tx := screen.CenterX(title)
	if cell := screen.GetCell(tx, 5); cell.Rune != 'W' || cell.Color != core.ColorTitle {
		t.Errorf("title cell = %+v, want 'W' in title color", cell)
	}

	play := "(P) Play Game"
	px := screen.CenterX(play)
	if cell := screen.GetCell(px, 10); cell.Rune != '(' || cell.Color != core.ColorDefault {
		t.Errorf("menu item cell = %+v, want '(' uncolored", cell)
	}

	c.Tick(0, core.ActionSelectPlay)
	c.Frame().Draw(screen)
	if cell := screen.GetCell(0, 1); cell.Rune != 'S' || cell.Color != core.ColorHUD {
		t.Errorf("score cell = %+v, want 'S' in HUD color", cell)
	}
}
