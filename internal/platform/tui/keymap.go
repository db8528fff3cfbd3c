package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to session commands.
// A key may carry several commands; the session ignores those not valid
// in its current state.
type KeyMapper struct {
	bindings map[string][]core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{bindings: map[string][]core.Action{
		"ctrl+c": {core.ActionQuit},
		"q":      {core.ActionQuit},

		"enter": {core.ActionStart},
		"b":     {core.ActionBack},
		"esc":   {core.ActionBack},
		"p":     {core.ActionPause},
		"r":     {core.ActionRestart, core.ActionResume},

		"left":  {core.ActionThrustLeft},
		"a":     {core.ActionThrustLeft},
		"right": {core.ActionThrustRight},
		"d":     {core.ActionThrustRight},
		"up":    {core.ActionThrustUp},
		"w":     {core.ActionThrustUp},
		" ":     {core.ActionFire},

		"1": {core.ActionUseShip},
		"2": {core.ActionUseToken},
		"3": {core.ActionUsePill},
	}}
}

// MapKey returns the commands bound to a key, or nil.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	return km.bindings[msg.String()]
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	quit := false
	for _, a := range km.MapKey(msg) {
		if a == core.ActionQuit {
			quit = true
		}
		frame.Set(a)
	}
	return quit
}
