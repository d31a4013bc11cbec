package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func spaceKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		mode game.Mode
		want core.Action
	}{
		{"space flaps", spaceKey(), game.ModePlaying, core.ActionThrust},
		{"w nudges forward", runeKey('w'), game.ModePlaying, core.ActionNudgeForward},
		{"W nudges forward", runeKey('W'), game.ModePlaying, core.ActionNudgeForward},
		{"q nudges back while playing", runeKey('q'), game.ModePlaying, core.ActionNudgeBackward},
		{"p ignored while playing", runeKey('p'), game.ModePlaying, core.ActionNone},
		{"p plays from menu", runeKey('p'), game.ModeMenu, core.ActionSelectPlay},
		{"h opens scores from menu", runeKey('h'), game.ModeMenu, core.ActionSelectHighScore},
		{"q quits from menu", runeKey('q'), game.ModeMenu, core.ActionSelectQuit},
		{"Q quits from end", runeKey('Q'), game.ModeEnd, core.ActionSelectQuit},
		{"h opens scores from end", runeKey('h'), game.ModeEnd, core.ActionSelectHighScore},
		{"h ignored on scores", runeKey('h'), game.ModeHighScore, core.ActionNone},
		{"p plays from scores", runeKey('P'), game.ModeHighScore, core.ActionSelectPlay},
		{"space ignored on menu", spaceKey(), game.ModeMenu, core.ActionNone},
		{"unbound key", runeKey('x'), game.ModeMenu, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg, tt.mode); got != tt.want {
				t.Errorf("Action(%q, %s) = %s, want %s", tt.msg.String(), tt.mode, got, tt.want)
			}
		})
	}
}

func TestKeyMapForMode(t *testing.T) {
	keys := DefaultKeyMap()

	playing := keys.ForMode(game.ModePlaying).ShortHelp()
	if len(playing) == 0 || playing[0].Help().Desc != "flap" {
		t.Errorf("playing help should start with flap, got %+v", playing)
	}

	menu := keys.ForMode(game.ModeMenu).ShortHelp()
	if len(menu) != 3 {
		t.Errorf("menu help has %d bindings, want 3", len(menu))
	}

	full := keys.ForMode(game.ModeHighScore).FullHelp()
	if len(full) != 1 || len(full[0]) != 2 {
		t.Errorf("high score full help = %+v, want one column of two", full)
	}
}
