package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/game"
)

// KeyMap holds the key bindings. Q means "nudge back" while playing and
// "quit" on every other screen.
type KeyMap struct {
	Flap       key.Binding
	Forward    key.Binding
	Backward   key.Binding
	Play       key.Binding
	Scores     key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "flap"),
		),
		Forward: key.NewBinding(
			key.WithKeys("w", "W"),
			key.WithHelp("w", "forward"),
		),
		Backward: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "back"),
		),
		Play: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("h", "H"),
			key.WithHelp("h", "high scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key press to a game action for the given screen.
// Keys that mean nothing on that screen map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg, mode game.Mode) core.Action {
	if mode == game.ModePlaying {
		switch {
		case key.Matches(msg, k.Flap):
			return core.ActionThrust
		case key.Matches(msg, k.Forward):
			return core.ActionNudgeForward
		case key.Matches(msg, k.Backward):
			return core.ActionNudgeBackward
		}
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Play):
		return core.ActionSelectPlay
	case key.Matches(msg, k.Scores) && mode != game.ModeHighScore:
		return core.ActionSelectHighScore
	case key.Matches(msg, k.Quit):
		return core.ActionSelectQuit
	}
	return core.ActionNone
}

// ForMode returns the bindings to show in the help footer for a screen.
func (k KeyMap) ForMode(mode game.Mode) help.KeyMap {
	switch mode {
	case game.ModePlaying:
		return modeKeys{k.Flap, k.Forward, k.Backward, k.ForceQuit}
	case game.ModeHighScore:
		return modeKeys{k.Play, k.Quit}
	default:
		return modeKeys{k.Play, k.Scores, k.Quit}
	}
}

// modeKeys implements help.KeyMap for one screen.
type modeKeys []key.Binding

// ShortHelp returns key bindings for the short help view.
func (m modeKeys) ShortHelp() []key.Binding {
	return m
}

// FullHelp returns key bindings for the full help view.
func (m modeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{m}
}
