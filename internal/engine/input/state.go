package input

import "github.com/Faultbox/midgard-water/internal/controls"

// State is the keyboard and mouse state of the current frame. It implements
// controls.KeyState.
type State struct {
	down    [controls.KeyCount]bool
	pressed [controls.KeyCount]bool

	MouseX      int32
	MouseY      int32
	RightButton bool
	Focused     bool
}

// BeginFrame forgets the presses of the previous frame.
func (s *State) BeginFrame() {
	s.pressed = [controls.KeyCount]bool{}
}

// Apply folds one event into the state.
func (s *State) Apply(e Event) {
	switch e.Type {
	case EventKeyDown:
		if !valid(e.Key) {
			return
		}
		if !e.Repeat && !s.down[e.Key] {
			s.pressed[e.Key] = true
		}
		s.down[e.Key] = true

	case EventKeyUp:
		if valid(e.Key) {
			s.down[e.Key] = false
		}

	case EventMouseMove:
		s.MouseX, s.MouseY = e.MouseX, e.MouseY

	case EventMouseDown, EventMouseUp:
		s.MouseX, s.MouseY = e.MouseX, e.MouseY
		if e.Button == ButtonRight {
			s.RightButton = e.Type == EventMouseDown
		}

	case EventFocusGained:
		s.Focused = true

	case EventFocusLost:
		// Key ups are not delivered while unfocused.
		s.Focused = false
		s.down = [controls.KeyCount]bool{}
		s.RightButton = false
	}
}

// Down reports whether k is held.
func (s *State) Down(k controls.Key) bool {
	return valid(k) && s.down[k]
}

// Pressed reports whether k went down this frame.
func (s *State) Pressed(k controls.Key) bool {
	return valid(k) && s.pressed[k]
}

func valid(k controls.Key) bool {
	return k > controls.KeyUnknown && int(k) < controls.KeyCount
}

// MousePosition returns the last known cursor position in window pixels.
func (s *State) MousePosition() (x, y int32) {
	return s.MouseX, s.MouseY
}

// RightButtonHeld reports whether the right mouse button is down.
func (s *State) RightButtonHeld() bool {
	return s.RightButton
}
