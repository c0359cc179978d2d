package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pallasting/ICE-Climber/internal/core"
)

// playerKeys holds the movement bindings of one local player.
type playerKeys struct {
	Left   key.Binding
	Right  key.Binding
	Jump   key.Binding
	Attack key.Binding
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	P1 playerKeys
	P2 playerKeys

	// coop enables the second player's bindings
	coop bool

	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Help       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// NewKeyMapper creates a key mapper for the given number of local players.
// Solo play accepts both the letter and arrow layouts for one climber;
// co-op splits them between two.
func NewKeyMapper(players int) *KeyMapper {
	km := &KeyMapper{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	if players < 2 {
		km.P1 = playerKeys{
			Left:   key.NewBinding(key.WithKeys("a", "left"), key.WithHelp("a/←", "left")),
			Right:  key.NewBinding(key.WithKeys("d", "right"), key.WithHelp("d/→", "right")),
			Jump:   key.NewBinding(key.WithKeys("w", "up", " "), key.WithHelp("w/↑/space", "jump")),
			Attack: key.NewBinding(key.WithKeys("f", "x"), key.WithHelp("f/x", "hammer")),
		}
		return km
	}

	km.coop = true
	km.P1 = playerKeys{
		Left:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "P1 left")),
		Right:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "P1 right")),
		Jump:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "P1 jump")),
		Attack: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "P1 hammer")),
	}
	km.P2 = playerKeys{
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "P2 left")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "P2 right")),
		Jump:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "P2 jump")),
		Attack: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "P2 hammer")),
	}
	return km
}

// ShortHelp returns key bindings for the short help view.
func (km *KeyMapper) ShortHelp() []key.Binding {
	return []key.Binding{km.P1.Left, km.P1.Right, km.P1.Jump, km.P1.Attack, km.Pause, km.Help, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km *KeyMapper) FullHelp() [][]key.Binding {
	groups := [][]key.Binding{
		{km.P1.Left, km.P1.Right, km.P1.Jump, km.P1.Attack},
	}
	if km.coop {
		groups = append(groups, []key.Binding{km.P2.Left, km.P2.Right, km.P2.Jump, km.P2.Attack})
	}
	return append(groups,
		[]key.Binding{km.Confirm, km.Pause, km.Restart},
		[]key.Binding{km.Back, km.Screenshot, km.Help, km.Quit},
	)
}

// MapKey translates a key message to a player action.
// Returns the player, the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (id core.PlayerID, action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.Quit):
		return core.Player1, core.ActionQuit, true
	case key.Matches(msg, km.Confirm):
		return core.Player1, core.ActionConfirm, false
	case key.Matches(msg, km.Pause):
		return core.Player1, core.ActionPause, false
	case key.Matches(msg, km.Restart):
		return core.Player1, core.ActionRestart, false
	case key.Matches(msg, km.Back):
		return core.Player1, core.ActionBack, false
	}

	if a := km.P1.action(msg); a != core.ActionNone {
		return core.Player1, a, false
	}
	if km.coop {
		if a := km.P2.action(msg); a != core.ActionNone {
			return core.Player2, a, false
		}
	}
	return core.Player1, core.ActionNone, false
}

func (pk playerKeys) action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, pk.Left):
		return core.ActionLeft
	case key.Matches(msg, pk.Right):
		return core.ActionRight
	case key.Matches(msg, pk.Jump):
		return core.ActionJump
	case key.Matches(msg, pk.Attack):
		return core.ActionAttack
	}
	return core.ActionNone
}

// MapKeyToMultiFrame records a key message in a multi-input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	id, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Press(id, action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
