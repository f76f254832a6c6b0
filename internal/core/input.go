package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionType           // Printable character, carried in InputEvent.Rune
	ActionAbility        // Tab - trigger the game's special ability
	ActionRestart        // Space - restart after the game has ended
	ActionQuit           // Esc, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionType:
		return "Type"
	case ActionAbility:
		return "Ability"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputEvent is a single input delivered by the host loop.
// Events are handed to the game one at a time, in arrival order.
type InputEvent struct {
	Action Action
	Rune   rune // Only meaningful for ActionType
}

// TypeEvent creates an event for a typed character.
func TypeEvent(r rune) InputEvent {
	return InputEvent{Action: ActionType, Rune: r}
}

// ActionEvent creates an event for a non-character action.
func ActionEvent(a Action) InputEvent {
	return InputEvent{Action: a}
}
