// Package input handles SDL2 input events and tracks the key and mouse state
// the controls read each frame.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-water/internal/controls"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventFocusGained
	EventFocusLost
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Mouse buttons as reported in Event.Button.
const (
	ButtonLeft  = uint8(sdl.BUTTON_LEFT)
	ButtonRight = uint8(sdl.BUTTON_RIGHT)
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    controls.Key
	Repeat bool
	Width  int32
	Height int32
	MouseX int32
	MouseY int32
	Button uint8
}

// Input polls SDL and keeps the per-frame state.
type Input struct {
	State
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		State:  State{Focused: true},
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events, converts them and applies them to the state.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.BeginFrame()

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := convert(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		i.Apply(e)
		if e.Type == EventQuit {
			quit = true
		}
	}

	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

func convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			return Event{Type: EventWindowResize, Width: e.Data1, Height: e.Data2}, true
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return Event{Type: EventFocusGained}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return Event{Type: EventFocusLost}, true
		}

	case *sdl.KeyboardEvent:
		key := KeyFromScancode(e.Keysym.Scancode)
		if key == controls.KeyUnknown {
			return Event{}, false
		}
		t := EventKeyUp
		if e.Type == sdl.KEYDOWN {
			t = EventKeyDown
		}
		return Event{Type: t, Key: key, Repeat: e.Repeat != 0}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: e.X, MouseY: e.Y}, true

	case *sdl.MouseButtonEvent:
		t := EventMouseUp
		if e.Type == sdl.MOUSEBUTTONDOWN {
			t = EventMouseDown
		}
		return Event{Type: t, MouseX: e.X, MouseY: e.Y, Button: e.Button}, true
	}

	return Event{}, false
}
