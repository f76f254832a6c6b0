package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/word-zombies/internal/core"
)

// KeyMap defines the non-typing key bindings. Every printable key that is not
// bound here is delivered to the game as a typed character.
type KeyMap struct {
	Quit       key.Binding
	Ability    key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Ability, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Ability, k.Restart},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
// Letters are never bound: they all belong to typing.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
		Ability: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "attract"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game input events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper over the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to input events. A paste yields one
// event per character. Returns whether the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (events []core.InputEvent, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return nil, true
	case key.Matches(msg, km.keys.Ability):
		return []core.InputEvent{core.ActionEvent(core.ActionAbility)}, false
	case key.Matches(msg, km.keys.Restart):
		return []core.InputEvent{core.ActionEvent(core.ActionRestart)}, false
	}

	if msg.Type != tea.KeyRunes || msg.Alt {
		return nil, false
	}
	for _, r := range msg.Runes {
		if unicode.IsPrint(r) && !unicode.IsSpace(r) {
			events = append(events, core.TypeEvent(r))
		}
	}
	return events, false
}
