// Package controls defines the logical actions the game reacts to, separate
// from any physical key binding.
package controls

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Action is a logical input.
type Action int

// Actions.
const (
	ActionNone Action = iota
	TurnLeft
	TurnRight
	MoveForward
	MoveBackward
	OpenDoor
	Quit
	ProfileLow
	ProfileMedium
	ProfileHigh
	Screenshot
)

var actionNames = map[Action]string{
	TurnLeft:      "turn_left",
	TurnRight:     "turn_right",
	MoveForward:   "move_forward",
	MoveBackward:  "move_backward",
	OpenDoor:      "open_door",
	Quit:          "quit",
	ProfileLow:    "profile_low",
	ProfileMedium: "profile_medium",
	ProfileHigh:   "profile_high",
	Screenshot:    "screenshot",
}

// String returns the config name of the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// ParseAction returns the action with the given config name.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// EventType identifies a discrete input event.
type EventType int

// Event types.
const (
	EventNone EventType = iota
	EventQuit
	EventKeyDown
)

// Event is one discrete input event. Key repeats are not reported.
type Event struct {
	Type   EventType
	Action Action
}

// Held is the set of actions whose keys are currently pressed.
type Held struct {
	set mapset.Set[Action]
}

// NewHeld returns a set holding the given actions.
func NewHeld(actions ...Action) Held {
	h := Held{set: mapset.New[Action]()}
	for _, a := range actions {
		h.set.Put(a)
	}
	return h
}

// Press marks an action as held.
func (h Held) Press(a Action) {
	h.set.Put(a)
}

// Has reports whether an action is held.
func (h Held) Has(a Action) bool {
	return h.set.Has(a)
}

// Len returns the number of held actions.
func (h Held) Len() int {
	return h.set.Size()
}

// Reset releases every action.
func (h Held) Reset() {
	h.set.Clear()
}
