// Package input handles SDL2 input events and keyboard state.
package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/raycaster/internal/game/controls"
	"github.com/Faultbox/raycaster/internal/logger"
)

// Input translates SDL events and key state into logical actions.
type Input struct {
	bindings map[sdl.Scancode]controls.Action
	events   []controls.Event
	held     controls.Held
}

// New creates an input handler from action name -> SDL key names, e.g.
// "move_forward": ["Up", "W"].
func New(bindings map[string][]string) (*Input, error) {
	i := &Input{
		bindings: make(map[sdl.Scancode]controls.Action),
		events:   make([]controls.Event, 0, 16),
		held:     controls.NewHeld(),
	}

	for name, keys := range bindings {
		action, err := controls.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("controls: %w", err)
		}
		for _, key := range keys {
			sc := sdl.GetScancodeFromName(key)
			if sc == sdl.SCANCODE_UNKNOWN {
				return nil, fmt.Errorf("controls: unknown key %q for %s", key, name)
			}
			if prev, ok := i.bindings[sc]; ok && prev != action {
				return nil, fmt.Errorf("controls: key %q bound to both %s and %s", key, prev, action)
			}
			i.bindings[sc] = action
		}
	}

	logger.Debug("input bindings loaded", zap.Int("keys", len(i.bindings)))
	return i, nil
}

// Update drains pending SDL events. It returns true if the window was
// closed.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, controls.Event{Type: controls.EventQuit})
			return true

		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			if action, ok := i.bindings[e.Keysym.Scancode]; ok {
				i.events = append(i.events, controls.Event{
					Type:   controls.EventKeyDown,
					Action: action,
				})
			}
		}
	}

	return false
}

// Events returns the events from the last Update.
func (i *Input) Events() []controls.Event {
	return i.events
}

// Held returns the actions whose keys are pressed right now.
func (i *Input) Held() controls.Held {
	i.held.Reset()
	state := sdl.GetKeyboardState()
	for sc, action := range i.bindings {
		if int(sc) < len(state) && state[sc] == 1 {
			i.held.Press(action)
		}
	}
	return i.held
}
