package core

// Action is one discrete input event delivered to the game in a tick.
// The host decides which physical key produces which action; the same key
// may map to different actions depending on the current screen.
type Action int

const (
	ActionNone            Action = iota
	ActionThrust                 // Space while playing - flap
	ActionNudgeForward           // W while playing
	ActionNudgeBackward          // Q while playing
	ActionSelectPlay             // P on menu screens
	ActionSelectHighScore        // H on menu screens
	ActionSelectQuit             // Q on menu screens
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionNudgeForward:
		return "NudgeForward"
	case ActionNudgeBackward:
		return "NudgeBackward"
	case ActionSelectPlay:
		return "SelectPlay"
	case ActionSelectHighScore:
		return "SelectHighScore"
	case ActionSelectQuit:
		return "SelectQuit"
	default:
		return "Unknown"
	}
}
