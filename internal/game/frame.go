package game

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters for rendering
const (
	DragonHead  = '☻'
	DragonWingL = '∟'
	DragonWingR = '┘'
	DragonTail  = '║'
	WallChar    = '|'
	BaddieChar  = '#'
)

// Glyph is one colored character at a screen position.
type Glyph struct {
	X, Y  int
	Rune  rune
	Color core.Color
}

// Span is a vertical run of wall cells in column X covering rows [Y0, Y1).
type Span struct {
	X, Y0, Y1 int
}

// TextLine is a line of text. Centered lines ignore X.
type TextLine struct {
	X, Y     int
	Centered bool
	Text     string
	Color    core.Color
}

// Frame describes what to draw for one tick.
type Frame struct {
	Mode      Mode
	Actor     []Glyph
	Obstacle  []Span
	Adversary *Glyph
	Text      []TextLine
}

// Draw clears dst and paints the frame. Text is drawn last so it stays
// readable over walls.
func (f Frame) Draw(dst *core.Screen) {
	dst.Clear()

	for _, s := range f.Obstacle {
		dst.DrawVLine(s.X, s.Y0, s.Y1-s.Y0, WallChar, core.ColorWall)
	}
	if f.Adversary != nil {
		dst.SetColored(f.Adversary.X, f.Adversary.Y, f.Adversary.Rune, f.Adversary.Color)
	}
	for _, g := range f.Actor {
		dst.SetColored(g.X, g.Y, g.Rune, g.Color)
	}
	for _, t := range f.Text {
		switch {
		case t.Color != core.ColorDefault:
			x := t.X
			if t.Centered {
				x = dst.CenterX(t.Text)
			}
			dst.DrawTextColored(x, t.Y, t.Text, t.Color)
		case t.Centered:
			dst.DrawTextCentered(t.Y, t.Text)
		default:
			dst.DrawText(t.X, t.Y, t.Text)
		}
	}
}

func centered(y int, text string) TextLine {
	return TextLine{Y: y, Centered: true, Text: text}
}

func title(y int, text string) TextLine {
	return TextLine{Y: y, Centered: true, Text: text, Color: core.ColorTitle}
}

func reachedLine(score int) string {
	return fmt.Sprintf("You reached %d points!", score)
}

func menuFrame() Frame {
	return Frame{
		Mode: ModeMenu,
		Text: []TextLine{
			title(5, "Welcome to Flappy Dragon"),
			centered(10, "(P) Play Game"),
			centered(15, "(H) High Scores"),
			centered(20, "(Q) Quit Game"),
		},
	}
}

func highScoreFrame(score int) Frame {
	return Frame{
		Mode: ModeHighScore,
		Text: []TextLine{
			title(5, "High Scores"),
			centered(7, "Last run only, nothing is saved"),
			centered(9, reachedLine(score)),
			centered(12, "(P) Play Again"),
			centered(15, "(Q) Quit"),
		},
	}
}

func deadFrame(score int) Frame {
	return Frame{
		Mode: ModeEnd,
		Text: []TextLine{
			title(5, "You're dead!"),
			centered(6, reachedLine(score)),
			centered(10, "(P) Play Again"),
			centered(15, "(H) High Scores"),
			centered(20, "(Q) Quit"),
		},
	}
}

// playFrame draws the world relative to the player. The player is pinned
// to cfg.Player.ScreenColumn and everything else is shifted by the same
// amount, so a wall is drawn over the dragon exactly when it can hit it.
func playFrame(cfg config.DragonConfig, s *Session) Frame {
	col := cfg.Player.ScreenColumn
	p := s.Player

	f := Frame{
		Mode: ModePlaying,
		Actor: []Glyph{
			{X: col, Y: p.Y, Rune: DragonHead, Color: core.ColorDragon},
			{X: col - 1, Y: p.Y, Rune: DragonWingL, Color: core.ColorDragon},
			{X: col + 1, Y: p.Y, Rune: DragonWingR, Color: core.ColorDragon},
			{X: col, Y: p.Y + 1, Rune: DragonTail, Color: core.ColorDragon},
		},
		Text: []TextLine{
			{X: 0, Y: 0, Text: "Press SPACE to flap", Color: core.ColorHUD},
			{X: 0, Y: 1, Text: fmt.Sprintf("Score: %d", s.Score), Color: core.ColorHUD},
		},
	}

	o := s.Obstacle
	wallX := o.X - p.X + col
	half := o.HalfSize()
	if top := o.GapY - half; top > 0 {
		f.Obstacle = append(f.Obstacle, Span{X: wallX, Y0: 0, Y1: top})
	}
	// Rows above GapY-half and below GapY+half collide
	if bottom := o.GapY + half + 1; bottom < cfg.Field.Height {
		f.Obstacle = append(f.Obstacle, Span{X: wallX, Y0: bottom, Y1: cfg.Field.Height})
	}

	f.Adversary = &Glyph{
		X:     s.Baddie.X - p.X + col,
		Y:     s.Baddie.Y,
		Rune:  BaddieChar,
		Color: core.ColorBaddie,
	}

	return f
}
