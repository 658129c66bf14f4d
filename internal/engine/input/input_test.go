package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/midgard-water/internal/controls"
)

var _ controls.KeyState = (*State)(nil)

func TestPressIsEdgeTriggered(t *testing.T) {
	var s State

	s.BeginFrame()
	s.Apply(Event{Type: EventKeyDown, Key: controls.KeyF4})
	if !s.Pressed(controls.KeyF4) || !s.Down(controls.KeyF4) {
		t.Fatal("first frame: want pressed and down")
	}

	s.BeginFrame()
	s.Apply(Event{Type: EventKeyDown, Key: controls.KeyF4, Repeat: true})
	if s.Pressed(controls.KeyF4) {
		t.Error("auto-repeat must not count as a press")
	}
	if !s.Down(controls.KeyF4) {
		t.Error("key should still be down")
	}

	s.BeginFrame()
	s.Apply(Event{Type: EventKeyUp, Key: controls.KeyF4})
	if s.Down(controls.KeyF4) || s.Pressed(controls.KeyF4) {
		t.Error("released key should be neither down nor pressed")
	}
}

func TestRightButtonTracking(t *testing.T) {
	var s State
	s.Apply(Event{Type: EventMouseDown, Button: ButtonLeft, MouseX: 1, MouseY: 2})
	if s.RightButton {
		t.Error("left button must not set RightButton")
	}
	s.Apply(Event{Type: EventMouseDown, Button: ButtonRight, MouseX: 3, MouseY: 4})
	if !s.RightButton || s.MouseX != 3 || s.MouseY != 4 {
		t.Errorf("state after right down = %+v", s)
	}
	s.Apply(Event{Type: EventMouseMove, MouseX: 10, MouseY: 20})
	if s.MouseX != 10 || s.MouseY != 20 {
		t.Errorf("mouse = %d,%d", s.MouseX, s.MouseY)
	}
	s.Apply(Event{Type: EventMouseUp, Button: ButtonRight})
	if s.RightButton {
		t.Error("right button should be released")
	}
}

func TestFocusLostReleasesKeys(t *testing.T) {
	s := State{Focused: true}
	s.Apply(Event{Type: EventKeyDown, Key: controls.KeyW})
	s.Apply(Event{Type: EventMouseDown, Button: ButtonRight})
	s.Apply(Event{Type: EventFocusLost})

	if s.Focused || s.Down(controls.KeyW) || s.RightButton {
		t.Errorf("state after focus loss = %+v", s)
	}

	s.Apply(Event{Type: EventFocusGained})
	if !s.Focused {
		t.Error("focus should be restored")
	}
}

func TestUnknownKeyIgnored(t *testing.T) {
	var s State
	s.Apply(Event{Type: EventKeyDown, Key: controls.KeyUnknown})
	s.Apply(Event{Type: EventKeyDown, Key: controls.Key(controls.KeyCount + 5)})
	if s.Down(controls.KeyUnknown) || s.Down(controls.Key(controls.KeyCount+5)) {
		t.Error("invalid keys must never read as down")
	}
}

func TestKeyFromScancode(t *testing.T) {
	tests := []struct {
		sc   sdl.Scancode
		want controls.Key
	}{
		{sdl.SCANCODE_F11, controls.KeyF11},
		{sdl.SCANCODE_F12, controls.KeyF12},
		{sdl.SCANCODE_KP_8, controls.KeyKeypad8},
		{sdl.SCANCODE_PAGEDOWN, controls.KeyPageDown},
		{sdl.SCANCODE_Q, controls.KeyUnknown},
	}
	for _, tt := range tests {
		if got := KeyFromScancode(tt.sc); got != tt.want {
			t.Errorf("KeyFromScancode(%d) = %d, want %d", tt.sc, got, tt.want)
		}
	}
}

func TestEveryBoundKeyHasScancode(t *testing.T) {
	bound := make(map[controls.Key]bool)
	for _, k := range scancodes {
		bound[k] = true
	}
	for k := controls.KeyUnknown + 1; int(k) < controls.KeyCount; k++ {
		if !bound[k] {
			t.Errorf("key %d has no scancode", k)
		}
	}
}
